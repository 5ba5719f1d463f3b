package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	lotteryerrors "emprende/contexts/evaluation/lottery-engine/domain/errors"
	lotteryhttp "emprende/contexts/evaluation/lottery-engine/transport/http"
	"emprende/internal/platform/metrics"
)

func (s *Server) registerLotteryRoutes() {
	s.mux.HandleFunc("POST /api/v1/lotteries", s.handleExecuteLottery)
	s.mux.HandleFunc("GET /api/v1/lotteries", s.handleListLotteries)
	s.mux.HandleFunc("GET /api/v1/lotteries/{record_id}", s.handleGetLottery)
	s.mux.HandleFunc("PATCH /api/v1/lotteries/{record_id}/notes", s.handleAmendLotteryNotes)
	s.mux.HandleFunc("GET /api/v1/lotteries/{record_id}/acta", s.handleDownloadActa)
}

func (s *Server) handleExecuteLottery(w http.ResponseWriter, r *http.Request) {
	var req lotteryhttp.ExecuteLotteryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLotteryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.lottery.Handler.ExecuteLotteryHandler(r.Context(), req)
	if err != nil {
		writeLotteryDomainError(w, err)
		return
	}
	metrics.LotteriesExecuted.Inc()
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListLotteries(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitRaw := r.URL.Query().Get("limit"); limitRaw != "" {
		parsed, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeLotteryError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = parsed
	}

	resp, err := s.lottery.Handler.ListRecordsHandler(r.Context(), limit)
	if err != nil {
		writeLotteryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetLottery(w http.ResponseWriter, r *http.Request) {
	resp, err := s.lottery.Handler.GetRecordHandler(r.Context(), r.PathValue("record_id"))
	if err != nil {
		writeLotteryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAmendLotteryNotes(w http.ResponseWriter, r *http.Request) {
	var req lotteryhttp.AmendNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLotteryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.lottery.Handler.AmendNotesHandler(r.Context(), r.PathValue("record_id"), req)
	if err != nil {
		writeLotteryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDownloadActa(w http.ResponseWriter, r *http.Request) {
	content, name, err := s.lottery.Handler.DownloadActaHandler(r.Context(), r.PathValue("record_id"))
	if err != nil {
		writeLotteryDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func writeLotteryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lotteryerrors.ErrInvalidInput):
		writeLotteryError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, lotteryerrors.ErrNotEnoughParticipants):
		writeLotteryError(w, http.StatusBadRequest, "not_enough_participants", err.Error())
	case errors.Is(err, lotteryerrors.ErrRecordNotFound):
		writeLotteryError(w, http.StatusNotFound, "record_not_found", err.Error())
	case errors.Is(err, lotteryerrors.ErrRecordImmutable):
		writeLotteryError(w, http.StatusConflict, "record_immutable", err.Error())
	default:
		writeLotteryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeLotteryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, lotteryhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

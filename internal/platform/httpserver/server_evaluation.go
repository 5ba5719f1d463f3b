package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	scoringerrors "emprende/contexts/evaluation/scoring-service/domain/errors"
	scoringhttp "emprende/contexts/evaluation/scoring-service/transport/http"
	"emprende/internal/platform/metrics"
)

func (s *Server) registerEvaluationRoutes() {
	s.mux.HandleFunc("GET /api/v1/admin/criteria", s.handleListCriteria)
	s.mux.HandleFunc("PUT /api/v1/admin/criteria", s.handleUpsertCriterion)
	s.mux.HandleFunc("GET /api/v1/admin/criteria/weights", s.handleValidateWeights)

	s.mux.HandleFunc("POST /api/v1/evaluations", s.handleRecordEvaluation)
	s.mux.HandleFunc("DELETE /api/v1/evaluations/{applicant_id}/{criterion_id}", s.handleDeleteEvaluation)

	s.mux.HandleFunc("GET /api/v1/rankings", s.handleRankings)
	s.mux.HandleFunc("GET /api/v1/ties", s.handleTies)
}

func (s *Server) handleListCriteria(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	resp, err := s.scoring.Handler.ListCriteriaHandler(r.Context(), activeOnly)
	if err != nil {
		writeScoringDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpsertCriterion(w http.ResponseWriter, r *http.Request) {
	var req scoringhttp.UpsertCriterionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeScoringError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.scoring.Handler.UpsertCriterionHandler(r.Context(), req)
	if err != nil {
		writeScoringDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleValidateWeights(w http.ResponseWriter, r *http.Request) {
	resp, err := s.scoring.Handler.ValidateWeightsHandler(r.Context())
	if err != nil {
		writeScoringDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecordEvaluation(w http.ResponseWriter, r *http.Request) {
	var req scoringhttp.RecordEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeScoringError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.scoring.Handler.RecordEvaluationHandler(r.Context(), req)
	if err != nil {
		writeScoringDomainError(w, err)
		return
	}
	metrics.EvaluationsRecorded.Inc()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteEvaluation(w http.ResponseWriter, r *http.Request) {
	err := s.scoring.Handler.DeleteEvaluationHandler(
		r.Context(),
		r.PathValue("applicant_id"),
		r.PathValue("criterion_id"),
	)
	if err != nil {
		writeScoringDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	resp, err := s.scoring.Handler.RankingsHandler(r.Context(), r.URL.Query().Get("convocation_id"))
	if err != nil {
		writeScoringDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTies(w http.ResponseWriter, r *http.Request) {
	resp, err := s.scoring.Handler.TiesHandler(r.Context(), r.URL.Query().Get("convocation_id"))
	if err != nil {
		writeScoringDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeScoringDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scoringerrors.ErrInvalidInput):
		writeScoringError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, scoringerrors.ErrScoreOutOfRange):
		writeScoringError(w, http.StatusBadRequest, "score_out_of_range", err.Error())
	case errors.Is(err, scoringerrors.ErrCriterionNotFound):
		writeScoringError(w, http.StatusNotFound, "criterion_not_found", err.Error())
	case errors.Is(err, scoringerrors.ErrEvaluationNotFound):
		writeScoringError(w, http.StatusNotFound, "evaluation_not_found", err.Error())
	case errors.Is(err, scoringerrors.ErrDuplicateOrder):
		writeScoringError(w, http.StatusConflict, "duplicate_order", err.Error())
	default:
		writeScoringError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeScoringError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, scoringhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

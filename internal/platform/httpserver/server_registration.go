package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	quotaerrors "emprende/contexts/admissions/quota-service/domain/errors"
	quotahttp "emprende/contexts/admissions/quota-service/transport/http"
	"emprende/internal/platform/metrics"
)

func (s *Server) registerRegistrationRoutes() {
	s.mux.HandleFunc("POST /api/v1/registrations", s.handleRegisterApplicant)
	s.mux.HandleFunc("GET /api/v1/registrations/preview", s.handlePreviewAdmission)

	s.mux.HandleFunc("GET /api/v1/admin/quotas/config", s.handleGetQuotaConfig)
	s.mux.HandleFunc("PUT /api/v1/admin/quotas/config", s.handleSetQuotaConfig)
	s.mux.HandleFunc("GET /api/v1/admin/quotas/capacities", s.handleListCapacities)
	s.mux.HandleFunc("PUT /api/v1/admin/quotas/capacities", s.handleSetCapacities)
	s.mux.HandleFunc("GET /api/v1/admin/quotas/occupancy", s.handleOccupancy)
}

func (s *Server) handleRegisterApplicant(w http.ResponseWriter, r *http.Request) {
	var req quotahttp.RegisterApplicantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeQuotaError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.quotas.Handler.RegisterApplicantHandler(r.Context(), req)
	if err != nil {
		writeQuotaDomainError(w, err)
		return
	}
	metrics.AdmissionsDecided.WithLabelValues(resp.Admission.Status).Inc()
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handlePreviewAdmission(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.quotas.Handler.PreviewAdmissionHandler(
		r.Context(),
		query.Get("municipality"),
		query.Get("convocation_id"),
	)
	if err != nil {
		writeQuotaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetQuotaConfig(w http.ResponseWriter, r *http.Request) {
	resp, err := s.quotas.Handler.GetQuotaConfigHandler(r.Context(), r.URL.Query().Get("convocation_id"))
	if err != nil {
		writeQuotaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetQuotaConfig(w http.ResponseWriter, r *http.Request) {
	var req quotahttp.SetQuotaConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeQuotaError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.quotas.Handler.SetQuotaConfigHandler(r.Context(), req)
	if err != nil {
		writeQuotaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListCapacities(w http.ResponseWriter, r *http.Request) {
	resp, err := s.quotas.Handler.ListCapacitiesHandler(r.Context())
	if err != nil {
		writeQuotaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetCapacities(w http.ResponseWriter, r *http.Request) {
	var req quotahttp.SetCapacitiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeQuotaError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.quotas.Handler.SetCapacitiesHandler(r.Context(), req)
	if err != nil {
		writeQuotaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleOccupancy(w http.ResponseWriter, r *http.Request) {
	resp, err := s.quotas.Handler.OccupancyHandler(r.Context(), r.URL.Query().Get("convocation_id"))
	if err != nil {
		writeQuotaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeQuotaDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quotaerrors.ErrInvalidInput):
		writeQuotaError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, quotaerrors.ErrMunicipalityNotFound):
		writeQuotaError(w, http.StatusNotFound, "municipality_not_found", err.Error())
	case errors.Is(err, quotaerrors.ErrApplicantNotFound):
		writeQuotaError(w, http.StatusNotFound, "applicant_not_found", err.Error())
	case errors.Is(err, quotaerrors.ErrDuplicateApplicant):
		writeQuotaError(w, http.StatusConflict, "duplicate_applicant", err.Error())
	case errors.Is(err, quotaerrors.ErrAdmissionConflict):
		writeQuotaError(w, http.StatusConflict, "admission_conflict", err.Error())
	default:
		writeQuotaError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeQuotaError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, quotahttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

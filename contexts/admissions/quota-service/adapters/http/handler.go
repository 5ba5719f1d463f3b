package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"emprende/contexts/admissions/quota-service/application"
	"emprende/contexts/admissions/quota-service/domain/entities"
	"emprende/contexts/admissions/quota-service/ports"
	httptransport "emprende/contexts/admissions/quota-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterApplicantHandler(
	ctx context.Context,
	req httptransport.RegisterApplicantRequest,
) (httptransport.RegisterApplicantResponse, error) {
	applicant, outcome, err := h.Service.RegisterApplicant(ctx, ports.RegisterApplicantInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Municipality:  req.Municipality,
		VentureName:   req.VentureName,
		ConvocationID: req.ConvocationID,
	})
	if err != nil {
		return httptransport.RegisterApplicantResponse{}, err
	}
	return httptransport.RegisterApplicantResponse{
		Status:    "success",
		Applicant: applicantToDTO(applicant),
		Admission: admissionToDTO(outcome),
	}, nil
}

func (h Handler) PreviewAdmissionHandler(
	ctx context.Context,
	municipality string,
	convocationID string,
) (httptransport.AdmissionPreviewResponse, error) {
	outcome, err := h.Service.DecideAdmission(ctx, municipality, convocationID)
	if err != nil {
		return httptransport.AdmissionPreviewResponse{}, err
	}
	return httptransport.AdmissionPreviewResponse{
		Status:    "success",
		Admission: admissionToDTO(outcome),
	}, nil
}

func (h Handler) GetQuotaConfigHandler(
	ctx context.Context,
	convocationID string,
) (httptransport.QuotaConfigResponse, error) {
	config, err := h.Service.ActiveConfig(ctx, convocationID)
	if err != nil {
		return httptransport.QuotaConfigResponse{}, err
	}
	return httptransport.QuotaConfigResponse{
		Status: "success",
		Data:   configToDTO(config),
	}, nil
}

func (h Handler) SetQuotaConfigHandler(
	ctx context.Context,
	req httptransport.SetQuotaConfigRequest,
) (httptransport.QuotaConfigResponse, error) {
	config, err := h.Service.SetActiveConfig(ctx, ports.SetQuotaConfigInput{
		ConvocationID: req.ConvocationID,
		Mode:          req.Mode,
		GlobalMax:     req.GlobalMax,
	})
	if err != nil {
		return httptransport.QuotaConfigResponse{}, err
	}
	return httptransport.QuotaConfigResponse{
		Status: "success",
		Data:   configToDTO(config),
	}, nil
}

func (h Handler) ListCapacitiesHandler(ctx context.Context) (httptransport.ListCapacitiesResponse, error) {
	items, err := h.Service.ListCapacities(ctx)
	if err != nil {
		return httptransport.ListCapacitiesResponse{}, err
	}
	resp := httptransport.ListCapacitiesResponse{
		Status: "success",
		Data:   make([]httptransport.MunicipalityQuotaDTO, 0, len(items)),
	}
	for _, item := range items {
		resp.Data = append(resp.Data, httptransport.MunicipalityQuotaDTO{
			Slug:        item.Slug,
			Subregion:   item.Subregion,
			MaxCapacity: item.MaxCapacity,
		})
	}
	return resp, nil
}

func (h Handler) SetCapacitiesHandler(
	ctx context.Context,
	req httptransport.SetCapacitiesRequest,
) (httptransport.SetCapacitiesResponse, error) {
	items := make([]ports.CapacityInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ports.CapacityInput{
			Slug:        item.Slug,
			Subregion:   item.Subregion,
			MaxCapacity: item.MaxCapacity,
		})
	}
	if err := h.Service.SetCapacities(ctx, items); err != nil {
		return httptransport.SetCapacitiesResponse{}, err
	}
	return httptransport.SetCapacitiesResponse{
		Status: "success",
		Count:  len(items),
	}, nil
}

func (h Handler) OccupancyHandler(
	ctx context.Context,
	convocationID string,
) (httptransport.OccupancyResponse, error) {
	counts, err := h.Service.Occupancy(ctx, convocationID)
	if err != nil {
		return httptransport.OccupancyResponse{}, err
	}
	return httptransport.OccupancyResponse{
		Status: "success",
		Total:  counts.Total,
		Data:   counts.ByMunicipality,
	}, nil
}

func applicantToDTO(applicant entities.Applicant) httptransport.ApplicantDTO {
	return httptransport.ApplicantDTO{
		ApplicantID:   applicant.ApplicantID,
		FirstName:     applicant.FirstName,
		LastName:      applicant.LastName,
		Email:         applicant.Email,
		Municipality:  applicant.Municipality,
		VentureName:   applicant.VentureName,
		ConvocationID: applicant.ConvocationID,
		AccountStatus: applicant.AccountStatus,
		RegisteredAt:  applicant.RegisteredAt.UTC().Format(time.RFC3339),
	}
}

func admissionToDTO(outcome entities.AdmissionOutcome) httptransport.AdmissionDTO {
	return httptransport.AdmissionDTO{
		Status:                  outcome.Status,
		MunicipalityFull:        outcome.MunicipalityFull,
		GlobalFull:              outcome.GlobalFull,
		ConfirmedInMunicipality: outcome.ConfirmedInMunicipality,
		ConfirmedTotal:          outcome.ConfirmedTotal,
	}
}

func configToDTO(config entities.QuotaConfig) httptransport.QuotaConfigDTO {
	dto := httptransport.QuotaConfigDTO{
		ConfigID:      config.ConfigID,
		ConvocationID: config.ConvocationID,
		Mode:          config.Mode,
		GlobalMax:     config.GlobalMax,
	}
	if !config.CreatedAt.IsZero() {
		dto.CreatedAt = config.CreatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}

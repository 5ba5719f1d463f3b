package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"emprende/contexts/evaluation/scoring-service/application"
	"emprende/contexts/evaluation/scoring-service/domain/entities"
	"emprende/contexts/evaluation/scoring-service/ports"
	httptransport "emprende/contexts/evaluation/scoring-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListCriteriaHandler(ctx context.Context, activeOnly bool) (httptransport.ListCriteriaResponse, error) {
	criteria, err := h.Service.ListCriteria(ctx, activeOnly)
	if err != nil {
		return httptransport.ListCriteriaResponse{}, err
	}
	resp := httptransport.ListCriteriaResponse{
		Status: "success",
		Data:   make([]httptransport.CriterionDTO, 0, len(criteria)),
	}
	for _, criterion := range criteria {
		resp.Data = append(resp.Data, criterionToDTO(criterion))
	}
	return resp, nil
}

func (h Handler) UpsertCriterionHandler(
	ctx context.Context,
	req httptransport.UpsertCriterionRequest,
) (httptransport.UpsertCriterionResponse, error) {
	criterion, err := h.Service.UpsertCriterion(ctx, ports.UpsertCriterionInput{
		Code:        req.Code,
		Description: req.Description,
		Weight:      req.Weight,
		MaxScore:    req.MaxScore,
		Order:       req.Order,
		Active:      req.Active,
	})
	if err != nil {
		return httptransport.UpsertCriterionResponse{}, err
	}
	return httptransport.UpsertCriterionResponse{
		Status: "success",
		Data:   criterionToDTO(criterion),
	}, nil
}

func (h Handler) ValidateWeightsHandler(ctx context.Context) (httptransport.WeightsReportResponse, error) {
	report, err := h.Service.ValidateWeights(ctx)
	if err != nil {
		return httptransport.WeightsReportResponse{}, err
	}
	return httptransport.WeightsReportResponse{
		Status: "success",
		Total:  report.Total,
		Valid:  report.Valid,
	}, nil
}

func (h Handler) RecordEvaluationHandler(
	ctx context.Context,
	req httptransport.RecordEvaluationRequest,
) (httptransport.RecordEvaluationResponse, error) {
	evaluation, err := h.Service.RecordEvaluation(ctx, ports.RecordEvaluationInput{
		EvaluatorID: req.EvaluatorID,
		ApplicantID: req.ApplicantID,
		CriterionID: req.CriterionID,
		Score:       req.Score,
		Notes:       req.Notes,
	})
	if err != nil {
		return httptransport.RecordEvaluationResponse{}, err
	}
	total, err := h.Service.TotalScore(ctx, evaluation.ApplicantID)
	if err != nil {
		return httptransport.RecordEvaluationResponse{}, err
	}
	return httptransport.RecordEvaluationResponse{
		Status:     "success",
		TotalScore: total,
	}, nil
}

func (h Handler) DeleteEvaluationHandler(ctx context.Context, applicantID string, criterionID string) error {
	return h.Service.DeleteEvaluation(ctx, applicantID, criterionID)
}

func (h Handler) RankingsHandler(ctx context.Context, convocationID string) (httptransport.RankingsResponse, error) {
	ranked, err := h.Service.Rank(ctx, convocationID)
	if err != nil {
		return httptransport.RankingsResponse{}, err
	}
	resp := httptransport.RankingsResponse{
		Status: "success",
		Data:   make([]httptransport.RankedApplicantDTO, 0, len(ranked)),
	}
	for _, applicant := range ranked {
		resp.Data = append(resp.Data, rankedToDTO(applicant))
	}
	return resp, nil
}

func (h Handler) TiesHandler(ctx context.Context, convocationID string) (httptransport.TiesResponse, error) {
	groups, err := h.Service.FindTies(ctx, convocationID)
	if err != nil {
		return httptransport.TiesResponse{}, err
	}
	resp := httptransport.TiesResponse{
		Status: "success",
		Data:   make([]httptransport.TieGroupDTO, 0, len(groups)),
		Count:  len(groups),
	}
	for _, group := range groups {
		dto := httptransport.TieGroupDTO{
			Score:   group.Score,
			Members: make([]httptransport.RankedApplicantDTO, 0, len(group.Members)),
		}
		for _, member := range group.Members {
			dto.Members = append(dto.Members, rankedToDTO(member))
		}
		resp.Data = append(resp.Data, dto)
	}
	return resp, nil
}

func criterionToDTO(criterion entities.Criterion) httptransport.CriterionDTO {
	return httptransport.CriterionDTO{
		CriterionID: criterion.CriterionID,
		Code:        criterion.Code,
		Description: criterion.Description,
		Weight:      criterion.Weight,
		MaxScore:    criterion.MaxScore,
		Order:       criterion.Order,
		Active:      criterion.Active,
	}
}

func rankedToDTO(applicant entities.RankedApplicant) httptransport.RankedApplicantDTO {
	return httptransport.RankedApplicantDTO{
		Position:           applicant.Position,
		ApplicantID:        applicant.ApplicantID,
		FirstName:          applicant.FirstName,
		LastName:           applicant.LastName,
		Email:              applicant.Email,
		Municipality:       applicant.Municipality,
		VentureName:        applicant.VentureName,
		TotalScore:         applicant.TotalScore,
		EvaluationComplete: applicant.EvaluationComplete,
		RegisteredAt:       applicant.RegisteredAt.UTC().Format(time.RFC3339),
	}
}

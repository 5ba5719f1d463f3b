package application

import (
	"context"
	"log/slog"
	"strings"

	"emprende/contexts/evaluation/scoring-service/domain/entities"
	domainerrors "emprende/contexts/evaluation/scoring-service/domain/errors"
	"emprende/contexts/evaluation/scoring-service/ports"
)

type Service struct {
	Criteria    ports.CriterionRepository
	Evaluations ports.EvaluationRepository
	Applicants  ports.ApplicantDirectory
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func (s Service) ListCriteria(ctx context.Context, activeOnly bool) ([]entities.Criterion, error) {
	return s.Criteria.ListCriteria(ctx, activeOnly)
}

func (s Service) UpsertCriterion(ctx context.Context, input ports.UpsertCriterionInput) (entities.Criterion, error) {
	code := strings.TrimSpace(input.Code)
	if code == "" || input.MaxScore <= 0 || input.Weight <= 0 || input.Weight > 100 {
		return entities.Criterion{}, domainerrors.ErrInvalidInput
	}

	criterionID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Criterion{}, err
	}
	now := s.Clock.Now().UTC()
	criterion := entities.Criterion{
		CriterionID: criterionID,
		Code:        code,
		Description: strings.TrimSpace(input.Description),
		Weight:      input.Weight,
		MaxScore:    input.MaxScore,
		Order:       input.Order,
		Active:      input.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	stored, err := s.Criteria.UpsertCriterion(ctx, criterion)
	if err != nil {
		return entities.Criterion{}, err
	}

	resolveLogger(s.Logger).Info("evaluation criterion upserted",
		"event", "criterion_upserted",
		"module", "evaluation/scoring-service",
		"layer", "application",
		"criterion_id", stored.CriterionID,
		"code", stored.Code,
		"weight", stored.Weight,
	)
	return stored, nil
}

// ValidateWeights is advisory: the sum of active weights should be 100, but
// a drifting sum never blocks criterion writes.
func (s Service) ValidateWeights(ctx context.Context) (ports.WeightsReport, error) {
	criteria, err := s.Criteria.ListCriteria(ctx, true)
	if err != nil {
		return ports.WeightsReport{}, err
	}
	total := 0.0
	for _, criterion := range criteria {
		total += criterion.Weight
	}
	total = entities.Round2(total)
	return ports.WeightsReport{
		Total: total,
		Valid: total == 100.0,
	}, nil
}

func (s Service) RecordEvaluation(ctx context.Context, input ports.RecordEvaluationInput) (entities.Evaluation, error) {
	if strings.TrimSpace(input.ApplicantID) == "" ||
		strings.TrimSpace(input.CriterionID) == "" ||
		strings.TrimSpace(input.EvaluatorID) == "" {
		return entities.Evaluation{}, domainerrors.ErrInvalidInput
	}

	criterion, err := s.Criteria.GetCriterion(ctx, strings.TrimSpace(input.CriterionID))
	if err != nil {
		return entities.Evaluation{}, err
	}
	if input.Score < 0 || input.Score > criterion.MaxScore {
		return entities.Evaluation{}, domainerrors.ErrScoreOutOfRange
	}

	evaluationID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Evaluation{}, err
	}
	evaluation := entities.Evaluation{
		EvaluationID: evaluationID,
		EvaluatorID:  strings.TrimSpace(input.EvaluatorID),
		ApplicantID:  strings.TrimSpace(input.ApplicantID),
		CriterionID:  criterion.CriterionID,
		Score:        input.Score,
		Notes:        strings.TrimSpace(input.Notes),
		EvaluatedAt:  s.Clock.Now().UTC(),
	}
	if err := s.Evaluations.UpsertEvaluation(ctx, evaluation); err != nil {
		return entities.Evaluation{}, err
	}

	resolveLogger(s.Logger).Info("evaluation recorded",
		"event", "evaluation_recorded",
		"module", "evaluation/scoring-service",
		"layer", "application",
		"applicant_id", evaluation.ApplicantID,
		"criterion_id", evaluation.CriterionID,
		"score", evaluation.Score,
	)
	return evaluation, nil
}

func (s Service) DeleteEvaluation(ctx context.Context, applicantID string, criterionID string) error {
	applicantID = strings.TrimSpace(applicantID)
	criterionID = strings.TrimSpace(criterionID)
	if applicantID == "" || criterionID == "" {
		return domainerrors.ErrInvalidInput
	}
	return s.Evaluations.DeleteEvaluation(ctx, applicantID, criterionID)
}

// TotalScore is a pure function of the stored entries: identical entries
// always produce the identical value.
func (s Service) TotalScore(ctx context.Context, applicantID string) (float64, error) {
	applicantID = strings.TrimSpace(applicantID)
	if applicantID == "" {
		return 0, domainerrors.ErrInvalidInput
	}
	evaluations, err := s.Evaluations.ListEvaluationsByApplicant(ctx, applicantID)
	if err != nil {
		return 0, err
	}
	criteria, err := s.criteriaByID(ctx)
	if err != nil {
		return 0, err
	}
	return entities.WeightedTotal(evaluations, criteria), nil
}

// IsEvaluationComplete compares the set of scored criterion ids against the
// set of active criterion ids, not just the counts, so a stale entry for a
// deactivated criterion cannot fake completeness.
func (s Service) IsEvaluationComplete(ctx context.Context, applicantID string) (bool, error) {
	applicantID = strings.TrimSpace(applicantID)
	if applicantID == "" {
		return false, domainerrors.ErrInvalidInput
	}
	active, err := s.Criteria.ListCriteria(ctx, true)
	if err != nil {
		return false, err
	}
	evaluations, err := s.Evaluations.ListEvaluationsByApplicant(ctx, applicantID)
	if err != nil {
		return false, err
	}

	scored := make(map[string]bool, len(evaluations))
	for _, evaluation := range evaluations {
		scored[evaluation.CriterionID] = true
	}
	for _, criterion := range active {
		if !scored[criterion.CriterionID] {
			return false, nil
		}
	}
	return len(active) > 0, nil
}

// Rank orders every applicant in the convocation by total score descending
// with registration time as the display tie-break.
func (s Service) Rank(ctx context.Context, convocationID string) ([]entities.RankedApplicant, error) {
	applicants, err := s.Applicants.ListApplicants(ctx, strings.TrimSpace(convocationID))
	if err != nil {
		return nil, err
	}
	criteria, err := s.criteriaByID(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.Criteria.ListCriteria(ctx, true)
	if err != nil {
		return nil, err
	}

	ranked := make([]entities.RankedApplicant, 0, len(applicants))
	for _, applicant := range applicants {
		evaluations, err := s.Evaluations.ListEvaluationsByApplicant(ctx, applicant.ApplicantID)
		if err != nil {
			return nil, err
		}
		complete := len(active) > 0
		scored := make(map[string]bool, len(evaluations))
		for _, evaluation := range evaluations {
			scored[evaluation.CriterionID] = true
		}
		for _, criterion := range active {
			if !scored[criterion.CriterionID] {
				complete = false
				break
			}
		}
		ranked = append(ranked, entities.RankedApplicant{
			ApplicantID:        applicant.ApplicantID,
			FirstName:          applicant.FirstName,
			LastName:           applicant.LastName,
			Email:              applicant.Email,
			Municipality:       applicant.Municipality,
			VentureName:        applicant.VentureName,
			TotalScore:         entities.WeightedTotal(evaluations, criteria),
			EvaluationComplete: complete,
			RegisteredAt:       applicant.RegisteredAt,
		})
	}
	return entities.SortRanking(ranked), nil
}

// FindTies returns the lottery-eligible tie groups from the current ranking.
func (s Service) FindTies(ctx context.Context, convocationID string) ([]entities.TieGroup, error) {
	ranked, err := s.Rank(ctx, convocationID)
	if err != nil {
		return nil, err
	}
	return entities.FindTies(ranked), nil
}

func (s Service) criteriaByID(ctx context.Context) (map[string]entities.Criterion, error) {
	criteria, err := s.Criteria.ListCriteria(ctx, false)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Criterion, len(criteria))
	for _, criterion := range criteria {
		byID[criterion.CriterionID] = criterion
	}
	return byID, nil
}

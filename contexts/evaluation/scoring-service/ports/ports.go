package ports

import (
	"context"
	"time"

	"emprende/contexts/evaluation/scoring-service/domain/entities"
)

type UpsertCriterionInput struct {
	Code        string
	Description string
	Weight      float64
	MaxScore    int
	Order       int
	Active      bool
}

type RecordEvaluationInput struct {
	EvaluatorID string
	ApplicantID string
	CriterionID string
	Score       int
	Notes       string
}

// WeightsReport is the advisory weight-sum check; it never blocks writes.
type WeightsReport struct {
	Total float64
	Valid bool
}

// ApplicantSummary is the slice of applicant data rankings need; the
// directory is a read-only projection of the admissions context.
type ApplicantSummary struct {
	ApplicantID   string
	FirstName     string
	LastName      string
	Email         string
	Municipality  string
	VentureName   string
	ConvocationID string
	RegisteredAt  time.Time
}

type CriterionRepository interface {
	ListCriteria(ctx context.Context, activeOnly bool) ([]entities.Criterion, error)
	GetCriterion(ctx context.Context, criterionID string) (entities.Criterion, error)
	// UpsertCriterion inserts or, when the code exists, updates the stored
	// row in place. It returns the persisted row; on an update that row
	// keeps its original CriterionID, not the one the caller passed in.
	UpsertCriterion(ctx context.Context, criterion entities.Criterion) (entities.Criterion, error)
}

type EvaluationRepository interface {
	// UpsertEvaluation replaces any existing entry for the same
	// (applicant, criterion) pair.
	UpsertEvaluation(ctx context.Context, evaluation entities.Evaluation) error
	DeleteEvaluation(ctx context.Context, applicantID string, criterionID string) error
	ListEvaluationsByApplicant(ctx context.Context, applicantID string) ([]entities.Evaluation, error)
}

type ApplicantDirectory interface {
	ListApplicants(ctx context.Context, convocationID string) ([]ApplicantSummary, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

package ports

import (
	"context"
	"time"

	"emprende/contexts/admissions/quota-service/domain/entities"
)

type SetQuotaConfigInput struct {
	ConvocationID string
	Mode          string
	GlobalMax     *int
}

type CapacityInput struct {
	Slug        string
	Subregion   string
	MaxCapacity int
}

type RegisterApplicantInput struct {
	FirstName     string
	LastName      string
	Email         string
	Municipality  string
	VentureName   string
	ConvocationID string
}

type ConfirmedCounts struct {
	Total          int
	ByMunicipality map[string]int
}

type ConfigRepository interface {
	// GetActiveConfig returns the latest config row for the convocation.
	GetActiveConfig(ctx context.Context, convocationID string) (entities.QuotaConfig, bool, error)
	AppendConfig(ctx context.Context, config entities.QuotaConfig) error
}

type CapacityRepository interface {
	GetMunicipalityCapacity(ctx context.Context, slug string) (entities.MunicipalityQuota, error)
	ListMunicipalityCapacities(ctx context.Context) ([]entities.MunicipalityQuota, error)
	// UpsertMunicipalityCapacities applies the whole batch atomically.
	UpsertMunicipalityCapacities(ctx context.Context, items []entities.MunicipalityQuota) error
}

type AdmissionRepository interface {
	// DecideAndRegister serializes the count-then-decide sequence for the
	// applicant's municipality, persists the applicant with the decided
	// status, and returns the outcome. The lock, the counts, and the insert
	// share one transaction.
	DecideAndRegister(ctx context.Context, applicant entities.Applicant, config entities.QuotaConfig) (entities.AdmissionOutcome, error)
	// PreviewAdmission runs the same counting without persisting anything.
	PreviewAdmission(ctx context.Context, municipality string, config entities.QuotaConfig) (entities.AdmissionOutcome, error)
	GetApplicant(ctx context.Context, applicantID string) (entities.Applicant, error)
	CountConfirmed(ctx context.Context, convocationID string) (ConfirmedCounts, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

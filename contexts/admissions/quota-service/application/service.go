package application

import (
	"context"
	"log/slog"
	"strings"

	"emprende/contexts/admissions/quota-service/domain/entities"
	domainerrors "emprende/contexts/admissions/quota-service/domain/errors"
	"emprende/contexts/admissions/quota-service/ports"
)

type Service struct {
	Configs            ports.ConfigRepository
	Capacities         ports.CapacityRepository
	Admissions         ports.AdmissionRepository
	Clock              ports.Clock
	IDGen              ports.IDGenerator
	DefaultConvocation string
	Logger             *slog.Logger
}

// ActiveConfig returns the latest quota config for the convocation, or the
// open-mode default when none has been created yet.
func (s Service) ActiveConfig(ctx context.Context, convocationID string) (entities.QuotaConfig, error) {
	convocationID = s.resolveConvocation(convocationID)
	config, found, err := s.Configs.GetActiveConfig(ctx, convocationID)
	if err != nil {
		return entities.QuotaConfig{}, err
	}
	if !found {
		return entities.DefaultQuotaConfig(convocationID), nil
	}
	return config, nil
}

// SetActiveConfig appends a new config row; earlier rows stay as history.
func (s Service) SetActiveConfig(ctx context.Context, input ports.SetQuotaConfigInput) (entities.QuotaConfig, error) {
	mode := strings.TrimSpace(input.Mode)
	if mode != entities.QuotaModeOpen && mode != entities.QuotaModeBlocked {
		return entities.QuotaConfig{}, domainerrors.ErrInvalidInput
	}
	if input.GlobalMax != nil && *input.GlobalMax < 0 {
		return entities.QuotaConfig{}, domainerrors.ErrInvalidInput
	}

	configID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.QuotaConfig{}, err
	}
	config := entities.QuotaConfig{
		ConfigID:      configID,
		ConvocationID: s.resolveConvocation(input.ConvocationID),
		Mode:          mode,
		GlobalMax:     input.GlobalMax,
		CreatedAt:     s.Clock.Now().UTC(),
	}
	if err := s.Configs.AppendConfig(ctx, config); err != nil {
		return entities.QuotaConfig{}, err
	}

	resolveLogger(s.Logger).Info("quota config updated",
		"event", "quota_config_updated",
		"module", "admissions/quota-service",
		"layer", "application",
		"convocation_id", config.ConvocationID,
		"mode", config.Mode,
	)
	return config, nil
}

func (s Service) MunicipalityCapacity(ctx context.Context, slug string) (entities.MunicipalityQuota, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.MunicipalityQuota{}, domainerrors.ErrInvalidInput
	}
	return s.Capacities.GetMunicipalityCapacity(ctx, slug)
}

func (s Service) ListCapacities(ctx context.Context) ([]entities.MunicipalityQuota, error) {
	return s.Capacities.ListMunicipalityCapacities(ctx)
}

// SetCapacities validates the whole batch before touching storage so a bad
// row never leaves a partial update behind.
func (s Service) SetCapacities(ctx context.Context, items []ports.CapacityInput) error {
	if len(items) == 0 {
		return domainerrors.ErrInvalidInput
	}
	now := s.Clock.Now().UTC()
	rows := make([]entities.MunicipalityQuota, 0, len(items))
	for _, item := range items {
		slug := strings.TrimSpace(item.Slug)
		if slug == "" || item.MaxCapacity < 0 {
			return domainerrors.ErrInvalidInput
		}
		rows = append(rows, entities.MunicipalityQuota{
			Slug:        slug,
			Subregion:   strings.TrimSpace(item.Subregion),
			MaxCapacity: item.MaxCapacity,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	if err := s.Capacities.UpsertMunicipalityCapacities(ctx, rows); err != nil {
		return err
	}

	resolveLogger(s.Logger).Info("municipality capacities updated",
		"event", "municipality_capacities_updated",
		"module", "admissions/quota-service",
		"layer", "application",
		"count", len(rows),
	)
	return nil
}

// RegisterApplicant decides admission and persists the applicant in one
// serialized unit. The repository owns the critical section; this layer owns
// validation and the snapshot of the active config (fetched once, passed
// explicitly, never re-read mid-decision).
func (s Service) RegisterApplicant(ctx context.Context, input ports.RegisterApplicantInput) (entities.Applicant, entities.AdmissionOutcome, error) {
	if !isValidRegistration(input) {
		return entities.Applicant{}, entities.AdmissionOutcome{}, domainerrors.ErrInvalidInput
	}

	convocationID := s.resolveConvocation(input.ConvocationID)
	config, err := s.ActiveConfig(ctx, convocationID)
	if err != nil {
		return entities.Applicant{}, entities.AdmissionOutcome{}, err
	}

	applicantID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Applicant{}, entities.AdmissionOutcome{}, err
	}
	applicant := entities.Applicant{
		ApplicantID:   applicantID,
		FirstName:     strings.TrimSpace(input.FirstName),
		LastName:      strings.TrimSpace(input.LastName),
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		Municipality:  strings.TrimSpace(input.Municipality),
		VentureName:   strings.TrimSpace(input.VentureName),
		ConvocationID: convocationID,
		RegisteredAt:  s.Clock.Now().UTC(),
	}

	outcome, err := s.Admissions.DecideAndRegister(ctx, applicant, config)
	if err != nil {
		return entities.Applicant{}, entities.AdmissionOutcome{}, err
	}
	applicant.AccountStatus = entities.AccountStatusForAdmission(outcome.Status)

	resolveLogger(s.Logger).Info("admission decided",
		"event", "admission_decided",
		"module", "admissions/quota-service",
		"layer", "application",
		"applicant_id", applicant.ApplicantID,
		"municipality", applicant.Municipality,
		"convocation_id", applicant.ConvocationID,
		"status", outcome.Status,
		"municipality_full", outcome.MunicipalityFull,
		"global_full", outcome.GlobalFull,
	)
	return applicant, outcome, nil
}

// DecideAdmission previews the decision for a municipality without
// registering anyone.
func (s Service) DecideAdmission(ctx context.Context, municipality string, convocationID string) (entities.AdmissionOutcome, error) {
	municipality = strings.TrimSpace(municipality)
	if municipality == "" {
		return entities.AdmissionOutcome{}, domainerrors.ErrInvalidInput
	}
	config, err := s.ActiveConfig(ctx, s.resolveConvocation(convocationID))
	if err != nil {
		return entities.AdmissionOutcome{}, err
	}
	return s.Admissions.PreviewAdmission(ctx, municipality, config)
}

func (s Service) Applicant(ctx context.Context, applicantID string) (entities.Applicant, error) {
	applicantID = strings.TrimSpace(applicantID)
	if applicantID == "" {
		return entities.Applicant{}, domainerrors.ErrInvalidInput
	}
	return s.Admissions.GetApplicant(ctx, applicantID)
}

// Occupancy reports confirmed counts for the admin dashboard.
func (s Service) Occupancy(ctx context.Context, convocationID string) (ports.ConfirmedCounts, error) {
	return s.Admissions.CountConfirmed(ctx, s.resolveConvocation(convocationID))
}

func (s Service) resolveConvocation(convocationID string) string {
	convocationID = strings.TrimSpace(convocationID)
	if convocationID != "" {
		return convocationID
	}
	return s.DefaultConvocation
}

func isValidRegistration(input ports.RegisterApplicantInput) bool {
	return strings.TrimSpace(input.FirstName) != "" &&
		strings.TrimSpace(input.LastName) != "" &&
		strings.TrimSpace(input.Email) != "" &&
		strings.TrimSpace(input.Municipality) != ""
}

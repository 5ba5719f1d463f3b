package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"emprende/contexts/admissions/quota-service/domain/entities"
	domainerrors "emprende/contexts/admissions/quota-service/domain/errors"
	"emprende/contexts/admissions/quota-service/ports"

	"github.com/google/uuid"
)

// Store is the in-memory adapter used by tests and local runs. One mutex
// covers configs, capacities, and applicants, so every admission decision is
// a serialized count-then-decide unit, same guarantee the postgres adapter
// gets from its row lock.
type Store struct {
	mu sync.Mutex

	configs    []entities.QuotaConfig
	capacities map[string]entities.MunicipalityQuota
	applicants map[string]entities.Applicant

	now time.Time
}

func NewStore() *Store {
	return &Store{
		capacities: make(map[string]entities.MunicipalityQuota),
		applicants: make(map[string]entities.Applicant),
	}
}

// SetNow pins the clock for deterministic tests; zero means wall clock.
func (s *Store) SetNow(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SeedApplicant inserts an applicant row directly, bypassing admission.
func (s *Store) SeedApplicant(applicant entities.Applicant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applicants[applicant.ApplicantID] = applicant
}

func (s *Store) GetActiveConfig(_ context.Context, convocationID string) (entities.QuotaConfig, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.configs) - 1; i >= 0; i-- {
		if s.configs[i].ConvocationID == convocationID {
			return s.configs[i], true, nil
		}
	}
	return entities.QuotaConfig{}, false, nil
}

func (s *Store) AppendConfig(_ context.Context, config entities.QuotaConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if config.ConfigID == "" {
		config.ConfigID = uuid.NewString()
	}
	s.configs = append(s.configs, config)
	return nil
}

func (s *Store) GetMunicipalityCapacity(_ context.Context, slug string) (entities.MunicipalityQuota, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.capacities[strings.TrimSpace(slug)]
	if !ok {
		return entities.MunicipalityQuota{}, domainerrors.ErrMunicipalityNotFound
	}
	return item, nil
}

func (s *Store) ListMunicipalityCapacities(_ context.Context) ([]entities.MunicipalityQuota, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]entities.MunicipalityQuota, 0, len(s.capacities))
	for _, item := range s.capacities {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Slug < items[j].Slug
	})
	return items, nil
}

func (s *Store) UpsertMunicipalityCapacities(_ context.Context, items []entities.MunicipalityQuota) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		if item.MaxCapacity < 0 || strings.TrimSpace(item.Slug) == "" {
			return domainerrors.ErrInvalidInput
		}
	}
	for _, item := range items {
		existing, ok := s.capacities[item.Slug]
		if ok {
			item.CreatedAt = existing.CreatedAt
		}
		s.capacities[item.Slug] = item
	}
	return nil
}

func (s *Store) DecideAndRegister(_ context.Context, applicant entities.Applicant, config entities.QuotaConfig) (entities.AdmissionOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.applicants {
		if existing.Email == applicant.Email && existing.ConvocationID == applicant.ConvocationID {
			return entities.AdmissionOutcome{}, domainerrors.ErrDuplicateApplicant
		}
	}

	outcome := entities.DecideAdmission(s.snapshotLocked(applicant.Municipality, config))
	applicant.AccountStatus = entities.AccountStatusForAdmission(outcome.Status)
	s.applicants[applicant.ApplicantID] = applicant
	return outcome, nil
}

func (s *Store) PreviewAdmission(_ context.Context, municipality string, config entities.QuotaConfig) (entities.AdmissionOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entities.DecideAdmission(s.snapshotLocked(municipality, config)), nil
}

func (s *Store) GetApplicant(_ context.Context, applicantID string) (entities.Applicant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applicant, ok := s.applicants[strings.TrimSpace(applicantID)]
	if !ok {
		return entities.Applicant{}, domainerrors.ErrApplicantNotFound
	}
	return applicant, nil
}

func (s *Store) CountConfirmed(_ context.Context, convocationID string) (ports.ConfirmedCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := ports.ConfirmedCounts{ByMunicipality: make(map[string]int)}
	for _, applicant := range s.applicants {
		if applicant.ConvocationID != convocationID || !entities.ConfirmedStatus(applicant.AccountStatus) {
			continue
		}
		counts.Total++
		counts.ByMunicipality[applicant.Municipality]++
	}
	return counts, nil
}

// snapshotLocked builds the decision inputs; callers hold s.mu.
func (s *Store) snapshotLocked(municipality string, config entities.QuotaConfig) entities.AdmissionSnapshot {
	snapshot := entities.AdmissionSnapshot{Config: config}
	if capacity, ok := s.capacities[municipality]; ok {
		snapshot.Capacity = capacity
		snapshot.CapacityConfigured = true
	}
	for _, applicant := range s.applicants {
		if applicant.ConvocationID != config.ConvocationID || !entities.ConfirmedStatus(applicant.AccountStatus) {
			continue
		}
		snapshot.ConfirmedTotal++
		if applicant.Municipality == municipality {
			snapshot.ConfirmedInMunicipality++
		}
	}
	return snapshot
}

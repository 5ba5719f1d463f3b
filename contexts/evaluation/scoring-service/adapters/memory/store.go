package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"emprende/contexts/evaluation/scoring-service/domain/entities"
	domainerrors "emprende/contexts/evaluation/scoring-service/domain/errors"
	"emprende/contexts/evaluation/scoring-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	criteria    map[string]entities.Criterion
	evaluations map[string]entities.Evaluation // keyed applicantID + "|" + criterionID
	applicants  map[string]ports.ApplicantSummary

	now time.Time
}

func NewStore() *Store {
	return &Store{
		criteria:    make(map[string]entities.Criterion),
		evaluations: make(map[string]entities.Evaluation),
		applicants:  make(map[string]ports.ApplicantSummary),
	}
}

func (s *Store) SetNow(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SetApplicant seeds the directory projection used by rankings.
func (s *Store) SetApplicant(applicant ports.ApplicantSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applicants[applicant.ApplicantID] = applicant
}

func (s *Store) ListCriteria(_ context.Context, activeOnly bool) ([]entities.Criterion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Criterion, 0, len(s.criteria))
	for _, criterion := range s.criteria {
		if activeOnly && !criterion.Active {
			continue
		}
		items = append(items, criterion)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})
	return items, nil
}

func (s *Store) GetCriterion(_ context.Context, criterionID string) (entities.Criterion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	criterion, ok := s.criteria[strings.TrimSpace(criterionID)]
	if !ok {
		return entities.Criterion{}, domainerrors.ErrCriterionNotFound
	}
	return criterion, nil
}

func (s *Store) UpsertCriterion(_ context.Context, criterion entities.Criterion) (entities.Criterion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.criteria {
		if existing.Code == criterion.Code {
			// Same code replaces the row, keeping its identity and creation time.
			criterion.CriterionID = id
			criterion.CreatedAt = existing.CreatedAt
			continue
		}
		// Order is unique across all criteria, active or not, matching the
		// display_order unique index in the postgres adapter.
		if existing.Order == criterion.Order {
			return entities.Criterion{}, domainerrors.ErrDuplicateOrder
		}
	}
	s.criteria[criterion.CriterionID] = criterion
	return criterion, nil
}

func (s *Store) UpsertEvaluation(_ context.Context, evaluation entities.Evaluation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := evaluationKey(evaluation.ApplicantID, evaluation.CriterionID)
	if existing, ok := s.evaluations[key]; ok {
		evaluation.EvaluationID = existing.EvaluationID
	}
	s.evaluations[key] = evaluation
	return nil
}

func (s *Store) DeleteEvaluation(_ context.Context, applicantID string, criterionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := evaluationKey(applicantID, criterionID)
	if _, ok := s.evaluations[key]; !ok {
		return domainerrors.ErrEvaluationNotFound
	}
	delete(s.evaluations, key)
	return nil
}

func (s *Store) ListEvaluationsByApplicant(_ context.Context, applicantID string) ([]entities.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Evaluation, 0)
	for _, evaluation := range s.evaluations {
		if evaluation.ApplicantID == strings.TrimSpace(applicantID) {
			items = append(items, evaluation)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CriterionID < items[j].CriterionID
	})
	return items, nil
}

func (s *Store) ListApplicants(_ context.Context, convocationID string) ([]ports.ApplicantSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	convocationID = strings.TrimSpace(convocationID)
	items := make([]ports.ApplicantSummary, 0, len(s.applicants))
	for _, applicant := range s.applicants {
		if convocationID != "" && applicant.ConvocationID != convocationID {
			continue
		}
		items = append(items, applicant)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ApplicantID < items[j].ApplicantID
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.now.IsZero() {
		return s.now
	}
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func evaluationKey(applicantID string, criterionID string) string {
	return strings.TrimSpace(applicantID) + "|" + strings.TrimSpace(criterionID)
}

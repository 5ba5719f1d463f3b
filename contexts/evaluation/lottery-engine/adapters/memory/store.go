package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"emprende/contexts/evaluation/lottery-engine/domain/entities"
	domainerrors "emprende/contexts/evaluation/lottery-engine/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	records map[string]entities.LotteryRecord

	now time.Time
}

func NewStore() *Store {
	return &Store{
		records: make(map[string]entities.LotteryRecord),
	}
}

func (s *Store) SetNow(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) CreateRecord(_ context.Context, record entities.LotteryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strings.TrimSpace(record.RecordID)
	if id == "" {
		return domainerrors.ErrInvalidInput
	}
	if _, exists := s.records[id]; exists {
		return domainerrors.ErrRecordImmutable
	}
	s.records[id] = entities.CloneRecord(record)
	return nil
}

func (s *Store) GetRecord(_ context.Context, recordID string) (entities.LotteryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[strings.TrimSpace(recordID)]
	if !ok {
		return entities.LotteryRecord{}, domainerrors.ErrRecordNotFound
	}
	return entities.CloneRecord(record), nil
}

func (s *Store) ListRecords(_ context.Context, limit int) ([]entities.LotteryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.LotteryRecord, 0, len(s.records))
	for _, record := range s.records {
		items = append(items, entities.CloneRecord(record))
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ExecutedAt.After(items[j].ExecutedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) AmendNotes(_ context.Context, recordID string, amendment entities.Amendment) (entities.LotteryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[strings.TrimSpace(recordID)]
	if !ok {
		return entities.LotteryRecord{}, domainerrors.ErrRecordNotFound
	}
	record.Notes = amendment.Notes
	record.Amendments = append(record.Amendments, amendment)
	s.records[record.RecordID] = record
	return entities.CloneRecord(record), nil
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

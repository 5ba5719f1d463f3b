package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
)

func (s *Store) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.now.IsZero() {
		return s.now
	}
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

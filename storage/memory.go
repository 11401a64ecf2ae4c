package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"finfit/backend/models"
)

// MemoryStore keeps onboarding records in process memory. It backs the
// degraded path when the durable store is unconfigured or unreachable, so
// its contents are lost on restart. Safe for concurrent requests; merges
// are key-level last-write-wins.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*models.OnboardingRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*models.OnboardingRecord)}
}

func (s *MemoryStore) Upsert(ctx context.Context, update models.OnboardingUpdate) (*models.OnboardingRecord, error) {
	if update.UserID == "" {
		return nil, ErrUserIDRequired
	}

	now := time.Now().UTC().Format(time.RFC3339)

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[update.UserID]
	if !ok {
		rec = &models.OnboardingRecord{
			ID:        uuid.NewString(),
			UserID:    update.UserID,
			CreatedAt: now,
		}
		s.records[update.UserID] = rec
	}
	update.ApplyTo(rec)
	rec.UpdatedAt = now

	out := *rec
	return &out, nil
}

func (s *MemoryStore) Get(ctx context.Context, userID string) (*models.OnboardingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[userID]
	if !ok {
		return nil, nil
	}
	out := *rec
	return &out, nil
}

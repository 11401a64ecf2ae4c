package storage

import (
	"context"

	"github.com/rs/zerolog"

	"finfit/backend/models"
)

// FallbackStore fronts the durable store and degrades to process memory.
// The durable path is attempted only when it is configured and a probe
// succeeds; any durable failure falls back to memory, so Upsert never fails
// outward once the user id is present.
//
// Records that land in memory are never replayed to the durable store and
// are lost on restart. That durability gap is intentional: the degraded
// path exists to keep onboarding flowing, not to be a write-behind cache.
type FallbackStore struct {
	durable Durable // nil when the durable store is unconfigured
	memory  *MemoryStore
	log     zerolog.Logger
}

func NewFallbackStore(durable Durable, log zerolog.Logger) *FallbackStore {
	return &FallbackStore{
		durable: durable,
		memory:  NewMemoryStore(),
		log:     log,
	}
}

func (s *FallbackStore) Upsert(ctx context.Context, update models.OnboardingUpdate) (*models.OnboardingRecord, error) {
	if update.UserID == "" {
		return nil, ErrUserIDRequired
	}

	if s.durable != nil {
		if err := s.durable.Probe(ctx); err != nil {
			s.log.Warn().Err(err).Str("user_id", update.UserID).
				Msg("durable store unreachable, writing onboarding data to memory")
		} else {
			rec, err := s.durable.Upsert(ctx, update)
			if err == nil {
				return rec, nil
			}
			s.log.Warn().Err(err).Str("user_id", update.UserID).
				Msg("durable upsert failed, falling back to memory")
		}
	}

	return s.memory.Upsert(ctx, update)
}

func (s *FallbackStore) Get(ctx context.Context, userID string) (*models.OnboardingRecord, error) {
	if s.durable != nil {
		if err := s.durable.Probe(ctx); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).
				Msg("durable store unreachable, reading onboarding data from memory")
		} else {
			rec, err := s.durable.Get(ctx, userID)
			if err == nil {
				return rec, nil
			}
			s.log.Warn().Err(err).Str("user_id", userID).
				Msg("durable read failed, falling back to memory")
		}
	}

	return s.memory.Get(ctx, userID)
}

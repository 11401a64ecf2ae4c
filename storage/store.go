package storage

import (
	"context"
	"errors"

	"finfit/backend/models"
)

// ErrUserIDRequired is returned when an onboarding write carries no user id,
// the only required field on any write.
var ErrUserIDRequired = errors.New("user id is required")

// Store persists one onboarding record per user. Upsert has partial-update
// semantics: provided fields shallow-overwrite the existing record, unset
// fields are left alone. Get returns (nil, nil) when no record exists.
type Store interface {
	Upsert(ctx context.Context, update models.OnboardingUpdate) (*models.OnboardingRecord, error)
	Get(ctx context.Context, userID string) (*models.OnboardingRecord, error)
}

// Durable is a Store whose reachability can be probed before use. The
// fallback wrapper only attempts the durable path when the probe succeeds.
type Durable interface {
	Store
	Probe(ctx context.Context) error
}

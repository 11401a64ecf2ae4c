package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/supabase-community/supabase-go"

	"finfit/backend/models"
	"finfit/backend/security"
)

const onboardingTable = "onboarding"

// SupabaseStore persists onboarding records to the hosted database, one row
// per user with upsert-on-conflict semantics. The aggregator access token is
// encrypted before it leaves the process and decrypted on read.
type SupabaseStore struct {
	client *supabase.Client
	log    zerolog.Logger
}

func NewSupabaseStore(url, key string, log zerolog.Logger) (*SupabaseStore, error) {
	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return &SupabaseStore{client: client, log: log}, nil
}

// Probe checks that the onboarding table is reachable. The fallback wrapper
// calls this before every durable attempt.
func (s *SupabaseStore) Probe(ctx context.Context) error {
	_, _, err := s.client.From(onboardingTable).
		Select("count", "", false).
		Limit(1, "").
		Execute()
	if err != nil {
		return fmt.Errorf("onboarding table not reachable: %w", err)
	}
	return nil
}

func (s *SupabaseStore) Upsert(ctx context.Context, update models.OnboardingUpdate) (*models.OnboardingRecord, error) {
	if update.UserID == "" {
		return nil, ErrUserIDRequired
	}

	if update.PlaidAccessToken != nil && *update.PlaidAccessToken != "" {
		encrypted, err := security.Encrypt(*update.PlaidAccessToken)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt access token: %w", err)
		}
		update.PlaidAccessToken = &encrypted
	}

	data, _, err := s.client.From(onboardingTable).
		Insert(update, true, "user_id", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to upsert onboarding record: %w", err)
	}

	var records []models.OnboardingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse upserted record: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("upsert returned no rows for user %s", update.UserID)
	}

	rec := records[0]
	if err := decryptAccessToken(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *SupabaseStore) Get(ctx context.Context, userID string) (*models.OnboardingRecord, error) {
	data, _, err := s.client.From(onboardingTable).
		Select("*", "", false).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to query onboarding record: %w", err)
	}

	var records []models.OnboardingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse onboarding record: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	rec := records[0]
	if err := decryptAccessToken(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func decryptAccessToken(rec *models.OnboardingRecord) error {
	if rec.PlaidAccessToken == "" {
		return nil
	}
	token, err := security.Decrypt(rec.PlaidAccessToken)
	if err != nil {
		return fmt.Errorf("failed to decrypt access token for user %s: %w", rec.UserID, err)
	}
	rec.PlaidAccessToken = token
	return nil
}

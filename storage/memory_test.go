package storage

import (
	"context"
	"sync"
	"testing"

	"finfit/backend/models"
)

func TestMemoryStoreUpsertMergesPartialWrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Upsert(ctx, models.OnboardingUpdate{
		UserID: "user-1",
		Goal:   models.String("save_big"),
	})
	if err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}

	rec, err := store.Upsert(ctx, models.OnboardingUpdate{
		UserID:     "user-1",
		Occupation: models.String("Engineer"),
	})
	if err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}

	if rec.Goal != "save_big" {
		t.Errorf("Expected goal 'save_big' to survive second write, got %q", rec.Goal)
	}
	if rec.Occupation != "Engineer" {
		t.Errorf("Expected occupation 'Engineer', got %q", rec.Occupation)
	}
	if rec.ID == "" {
		t.Error("Expected record to get an id on create")
	}
}

func TestMemoryStoreUpsertRequiresUserID(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Upsert(context.Background(), models.OnboardingUpdate{
		Goal: models.String("pay_debt"),
	})
	if err != ErrUserIDRequired {
		t.Errorf("Expected ErrUserIDRequired, got %v", err)
	}
}

func TestMemoryStoreGetMissingUser(t *testing.T) {
	store := NewMemoryStore()

	rec, err := store.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if rec != nil {
		t.Errorf("Expected nil record for unknown user, got %+v", rec)
	}
}

func TestMemoryStoreFalseIsNotUnset(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Upsert(ctx, models.OnboardingUpdate{
		UserID:         "user-1",
		PlaidConnected: models.Bool(true),
	})
	if err != nil {
		t.Fatal(err)
	}

	// A write without the flag must not clear it.
	rec, err := store.Upsert(ctx, models.OnboardingUpdate{
		UserID: "user-1",
		Goal:   models.String("invest"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !rec.PlaidConnected {
		t.Error("Expected plaid_connected to survive an unrelated write")
	}

	// An explicit false must clear it.
	rec, err = store.Upsert(ctx, models.OnboardingUpdate{
		UserID:         "user-1",
		PlaidConnected: models.Bool(false),
	})
	if err != nil {
		t.Fatal(err)
	}
	if rec.PlaidConnected {
		t.Error("Expected explicit false to clear plaid_connected")
	}
}

func TestMemoryStoreConcurrentUpserts(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Upsert(ctx, models.OnboardingUpdate{
				UserID: "user-1",
				Goal:   models.String("save_big"),
			})
			if err != nil {
				t.Errorf("Concurrent upsert failed: %v", err)
			}
		}()
	}
	wg.Wait()

	rec, err := store.Get(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if rec == nil || rec.Goal != "save_big" {
		t.Errorf("Expected merged record after concurrent writes, got %+v", rec)
	}
}

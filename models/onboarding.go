package models

// OnboardingRecord is the per-user profile captured during signup. One row
// per user in the onboarding table; timestamps are the store's ISO strings.
type OnboardingRecord struct {
	ID                 string `json:"id,omitempty"`
	UserID             string `json:"user_id"`
	Goal               string `json:"goal,omitempty"`
	Occupation         string `json:"occupation,omitempty"`
	PlaidConnected     bool   `json:"plaid_connected"`
	PlaidAccessToken   string `json:"plaid_access_token,omitempty"`
	PlaidItemID        string `json:"plaid_item_id,omitempty"`
	OnboardingComplete bool   `json:"onboarding_complete"`
	CreatedAt          string `json:"created_at,omitempty"`
	UpdatedAt          string `json:"updated_at,omitempty"`
}

// OnboardingUpdate is a partial write. UserID is the only required field;
// every other field is optional and merged over the existing record. Pointer
// fields distinguish "set to false/empty" from "not provided".
type OnboardingUpdate struct {
	UserID             string  `json:"user_id"`
	Goal               *string `json:"goal,omitempty"`
	Occupation         *string `json:"occupation,omitempty"`
	PlaidConnected     *bool   `json:"plaid_connected,omitempty"`
	PlaidAccessToken   *string `json:"plaid_access_token,omitempty"`
	PlaidItemID        *string `json:"plaid_item_id,omitempty"`
	OnboardingComplete *bool   `json:"onboarding_complete,omitempty"`
}

// ApplyTo merges the update into rec, shallow-overwriting only the fields
// that were provided.
func (u OnboardingUpdate) ApplyTo(rec *OnboardingRecord) {
	if u.Goal != nil {
		rec.Goal = *u.Goal
	}
	if u.Occupation != nil {
		rec.Occupation = *u.Occupation
	}
	if u.PlaidConnected != nil {
		rec.PlaidConnected = *u.PlaidConnected
	}
	if u.PlaidAccessToken != nil {
		rec.PlaidAccessToken = *u.PlaidAccessToken
	}
	if u.PlaidItemID != nil {
		rec.PlaidItemID = *u.PlaidItemID
	}
	if u.OnboardingComplete != nil {
		rec.OnboardingComplete = *u.OnboardingComplete
	}
}

// String is a convenience for building update literals.
func String(v string) *string {
	return &v
}

// Bool is a convenience for building update literals.
func Bool(v bool) *bool {
	return &v
}

package models

// Account is the aggregator's account record. The API passes it through to
// the client unmodified, so field names follow the upstream wire format.
type Account struct {
	AccountID    string   `json:"account_id"`
	Name         string   `json:"name"`
	OfficialName string   `json:"official_name,omitempty"`
	Type         string   `json:"type"`
	Subtype      string   `json:"subtype"`
	Mask         string   `json:"mask,omitempty"`
	Balances     Balances `json:"balances"`
}

// Balances mirrors the aggregator's balance object. Available and Current
// are pointers because the upstream reports null for some account types.
type Balances struct {
	Available       *float64 `json:"available"`
	Current         *float64 `json:"current"`
	Limit           *float64 `json:"limit,omitempty"`
	ISOCurrencyCode string   `json:"iso_currency_code,omitempty"`
}

// CurrentValue returns the current balance, treating null as zero.
func (b Balances) CurrentValue() float64 {
	if b.Current == nil {
		return 0
	}
	return *b.Current
}

// Float is a convenience for building balance literals.
func Float(v float64) *float64 {
	return &v
}

package plaid

import "fmt"

// APIError is a non-2xx response from the aggregator, decoded from its
// error envelope. It carries enough detail for a diagnostic message; the
// caller surfaces it as a 500 without retrying.
type APIError struct {
	StatusCode     int    `json:"-"`
	ErrorType      string `json:"error_type"`
	ErrorCode      string `json:"error_code"`
	ErrorMessage   string `json:"error_message"`
	DisplayMessage string `json:"display_message,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("plaid API error (status %d, %s/%s): %s",
		e.StatusCode, e.ErrorType, e.ErrorCode, e.ErrorMessage)
}

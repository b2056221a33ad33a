package domain

import "errors"

var (
	ErrPharmacyNotFound = errors.New("pharmacy not found")
	ErrNoSession        = errors.New("no stored session")
	ErrLoginRequired    = errors.New("login required")
)

// AuthError carries the server-supplied rejection detail from the login
// and identity-check endpoints (401/422 responses).
type AuthError struct {
	Detail string
}

func (e *AuthError) Error() string {
	if e.Detail == "" {
		return "authentication failed"
	}
	return e.Detail
}

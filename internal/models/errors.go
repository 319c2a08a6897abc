package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrDuplicateLicense   = errors.New("models: duplicate license number")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrPropertyNotFound   = errors.New("property not found")
	ErrCompanyNotFound    = errors.New("company not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrNotOwner           = errors.New("not authorized for this property")
	ErrUserHasRecords     = errors.New("user still owns properties or companies")
	ErrInvalidStatus      = errors.New("invalid property status")
)

// SearchFailure is the single opaque error surfaced by the primary search
// path. Callers cannot distinguish storage failure subtypes through it.
type SearchFailure struct {
	Cause error
}

func (e *SearchFailure) Error() string {
	return "search failed: " + e.Cause.Error()
}

func (e *SearchFailure) Unwrap() error {
	return e.Cause
}

package domain

import "errors"

// Authentication failures. Each kind maps to exactly one HTTP status in the
// API error handler; the gate itself never touches HTTP.
var (
	ErrMissingCredential = errors.New("missing bearer credential")
	ErrInvalidCredential = errors.New("invalid or expired credential")
	ErrUnknownSubject    = errors.New("user belonging to this token no longer exists")
	ErrAccountDeleted    = errors.New("account has been deleted")
	ErrAccountBlocked    = errors.New("account has been blocked")
	ErrForbidden         = errors.New("insufficient permissions")
)

// Credential and account management failures.
var (
	ErrInvalidLogin    = errors.New("invalid email or password")
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidRole     = errors.New("unrecognised role")
	ErrResetTokenBad   = errors.New("password reset token is invalid or expired")
	ErrPasswordChanged = errors.New("password changed after token was issued")
)

// Entity lookup failures.
var (
	ErrCountryNotFound      = errors.New("country not found")
	ErrHotelNotFound        = errors.New("hotel not found")
	ErrTourNotFound         = errors.New("tour not found")
	ErrPackageNotFound      = errors.New("package not found")
	ErrVisaCategoryNotFound = errors.New("visa category not found")
	ErrVisaDocumentNotFound = errors.New("visa document not found")
)

// ErrSlugConflict is surfaced when the storage layer's unique index on slug
// rejects an insert or update. The probing loop in the slug allocator is
// best-effort; the index is the authoritative uniqueness enforcer, so callers
// must treat this as a possible creation failure and may retry with a fresh
// probe.
var ErrSlugConflict = errors.New("slug already in use")

package nutrigo

import "errors"

var (
	// ErrDuplicateUsername is returned by signup when another user already
	// holds the username under case-insensitive comparison.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials is returned by login when no stored user matches
	// the supplied username/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateReview is returned when a user submits a second testimonial.
	ErrDuplicateReview = errors.New("review already submitted")

	// ErrNotFound is returned by update operations on a missing record id.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamUnavailable classifies every assistant failure. Callers
	// report it and leave prior state untouched; nothing retries.
	ErrUpstreamUnavailable = errors.New("assistant unavailable")
)

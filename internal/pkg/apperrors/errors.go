// Package apperrors defines the sentinel errors shared across the
// session service. Callers classify failures with errors.Is and map
// each class to exactly one HTTP status.
package apperrors

import "errors"

var (
	// Input errors: rejected before any network or store call
	ErrInvalidDestination = errors.New("destination is not a valid phone number or email address")
	ErrInvalidCode        = errors.New("code has an invalid format")

	// Abuse-control errors: surfaced as a cooldown, never auto-retried
	ErrCaptchaRejected = errors.New("human verification was rejected")
	ErrRateLimited     = errors.New("too many requests for this destination")

	// Challenge-lifecycle errors
	ErrCodeMismatch      = errors.New("code does not match")
	ErrChallengeExpired  = errors.New("challenge not found or expired")
	ErrChallengeConsumed = errors.New("challenge already consumed")

	// Authorization errors
	ErrUnauthorized = errors.New("identity assertion is invalid")
	ErrForbidden    = errors.New("operation requires the admin role")

	// Transient infrastructure errors: safe to retry with backoff
	ErrProviderUnavailable = errors.New("verification provider unavailable")

	ErrProfileNotFound = errors.New("profile not found")
)

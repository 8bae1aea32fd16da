package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested resource does not exist.
	// For container writes this is expected: it selects the create path
	// inside the pod store and is never surfaced to callers.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEncode indicates an entity could not be encoded into a record.
	// Raised before any network call is made.
	ErrEncode = errors.New("encode failure")

	// ErrSchemaMismatch indicates a stored record is missing a required
	// attribute or carries one of the wrong primitive kind.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// Authentication errors.

	// ErrUnauthorized indicates the session credential is missing, invalid
	// or expired. Fatal to the operation; never retried here.
	ErrUnauthorized = errors.New("unauthorised")

	// ErrForbidden indicates the credential is valid but lacks access to
	// the target resource.
	ErrForbidden = errors.New("forbidden")

	// ErrSessionExpired indicates the session must be re-established
	// before any further pod operation.
	ErrSessionExpired = errors.New("session expired")

	// Transport errors.

	// ErrNetwork indicates a transport-level failure reaching the pod or
	// the places service. Surfaced unmodified; no automatic retry.
	ErrNetwork = errors.New("network failure")

	// ErrRateLimited indicates the local request budget was exhausted.
	ErrRateLimited = errors.New("rate limited")
)

package internals

import "errors"

// The three failure conditions the service distinguishes. Handlers map them
// to distinct status codes, so they must never be collapsed into one.
var (
	// ErrInvalidInput marks a malformed request (empty item list, blank
	// required identifier). Retrying the same request cannot succeed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks an emission factor that stayed unresolved after all
	// fallback tiers. The fix is adding reference data, not retrying.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable marks an unreachable store or table provider.
	ErrUnavailable = errors.New("unavailable")
)

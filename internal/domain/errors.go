package domain

import "errors"

// Sentinel errors returned by the reduction pipeline and its collaborators.
// All are deterministic caller-contract or input failures; none are
// retryable.
var (
	// ErrInvalidBody indicates a body code outside the recognized range.
	ErrInvalidBody = errors.New("invalid astronomical body")

	// ErrEarthNotAllowed indicates a body-relative operation was invoked
	// with the Earth as the target body.
	ErrEarthNotAllowed = errors.New("the Earth is not allowed as the body")

	// ErrDegenerateVector indicates a vector too small to have a defined
	// direction was passed to an angular conversion.
	ErrDegenerateVector = errors.New("vector is too small to have a direction")

	// ErrPrecessionEpoch indicates the precession epoch precondition was
	// violated: exactly one of the two epochs must be J2000.0 (zero).
	ErrPrecessionEpoch = errors.New("exactly one of the precession epochs must be zero (J2000.0)")
)

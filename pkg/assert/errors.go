package assert

import "errors"

// Sentinel errors matched by ValidationError.Is, so callers can branch with
// errors.Is without inspecting messages.
var (
	// ErrValueRequired is returned when a value is missing and no default applies.
	ErrValueRequired = errors.New("value required")

	// ErrTypeMismatch is returned when a value is not one of the allowed types.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrRangeMismatch is returned when a value has the right type but violates
	// a length, magnitude, pattern or membership constraint.
	ErrRangeMismatch = errors.New("range mismatch")

	// ErrValidationFailed is returned by Apply-style aggregates.
	ErrValidationFailed = errors.New("validation failed")
)

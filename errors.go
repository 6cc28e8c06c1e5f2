package sift

import "github.com/siftql/sift/filter"

// The three caller-recoverable errors of the library, re-exported at the
// root so facade users can errors.Is against them without importing the
// filter package. Evaluation itself never errors; malformed values and
// unknown operators resolve to boolean results.
var (
	// ErrUnknownField is returned when a field key is not in the registry.
	ErrUnknownField = filter.ErrUnknownField

	// ErrInvalidOperator is returned when an operator is not permitted for
	// the type of the field it is applied to.
	ErrInvalidOperator = filter.ErrInvalidOperator

	// ErrIndexOutOfRange is returned when removing a condition at an index
	// no committed condition occupies.
	ErrIndexOutOfRange = filter.ErrIndexOutOfRange
)

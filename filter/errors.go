package filter

import "errors"

var (
	// ErrUnknownField is returned when a field key is not in the registry.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidOperator is returned when an operator is not permitted for
	// the type of the field it is applied to.
	ErrInvalidOperator = errors.New("operator not allowed for field type")

	// ErrIndexOutOfRange is returned when a child index does not address an
	// existing child of a group.
	ErrIndexOutOfRange = errors.New("child index out of range")

	// ErrNotReady is returned when a builder transition is attempted out of
	// order, e.g. choosing an operator before a field.
	ErrNotReady = errors.New("builder not ready")
)

package view

import "errors"

var (
	// ErrReadOnly is returned by every write path of a view whose writeable
	// flag is off.
	ErrReadOnly = errors.New("view: assignment destination is read-only")

	// ErrShapeMismatch is returned by any union access when the tag and
	// index arrays have different lengths. The mismatch is never coerced.
	ErrShapeMismatch = errors.New("view: tags shape does not match index shape")

	// ErrLengthMismatch is returned by bulk writes when the operand length
	// does not match the number of targeted positions.
	ErrLengthMismatch = errors.New("view: sequence length does not match target positions")
)

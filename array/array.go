package array

import (
	"errors"
	"fmt"
)

// ErrNotRecord is returned when a column projection is requested from a
// content array that has no named columns.
var ErrNotRecord = errors.New("array: content has no named columns")

// Array is the minimal backing-store contract.
//
// Positions are zero-based. Implementations return an error for positions
// outside [0, Len()) rather than panicking, so that views can surface
// contract violations to their callers.
type Array interface {
	// Len returns the number of addressable positions.
	Len() int

	// At returns the value stored at position i.
	At(i int) (any, error)

	// Set stores v at position i.
	Set(i int, v any) error
}

// Record is implemented by content arrays that expose named columns.
// Field returns the column registered under name, or ErrNotRecord-wrapped
// error when the name is unknown.
type Record interface {
	Field(name string) (Array, error)
}

// NullSource is an Array whose positions can be individually missing.
// Null reports whether position i carries no value; At on such a position
// returns the Missing marker.
type NullSource interface {
	Array
	Null(i int) bool
}

func checkBounds(i, length int) error {
	if i < 0 || i >= length {
		return fmt.Errorf("array: position %d out of range [0, %d)", i, length)
	}

	return nil
}

package virtual

import (
	"errors"
	"fmt"

	"github.com/arloliu/ragged/array"
	"github.com/arloliu/ragged/format"
)

var (
	// ErrNoReader is returned when an externally-backed array constructed
	// without a read callable is read.
	ErrNoReader = errors.New("virtual: externally-backed array has no read callable")

	// ErrNoWriter is returned when an externally-backed array constructed
	// without a write callable is written.
	ErrNoWriter = errors.New("virtual: externally-backed array has no write callable")
)

// ReadFunc reads the value at a logical position from an external store.
type ReadFunc func(pos int) (any, error)

// WriteFunc writes a value at a logical position to an external store.
type WriteFunc func(pos int, val any) error

// External is an array whose storage lives entirely outside the process:
// reads delegate to a supplied read callable, writes to a supplied write
// callable. Writability is exactly "a write callable was supplied".
type External struct {
	kind   format.ScalarType
	length int
	read   ReadFunc
	write  WriteFunc
}

var _ array.Array = (*External)(nil)

// NewExternal creates an externally-backed array. The declared scalar kind
// must be valid and the declared length non-negative; both are validated up
// front. Either callable may be nil, in which case the corresponding
// operation fails with a descriptive error instead of silently no-op-ing.
func NewExternal(kind format.ScalarType, length int, read ReadFunc, write WriteFunc) (*External, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("virtual: invalid scalar kind %s for externally-backed array", kind)
	}
	if length < 0 {
		return nil, fmt.Errorf("virtual: length must be non-negative, got %d", length)
	}

	return &External{kind: kind, length: length, read: read, write: write}, nil
}

// Kind returns the declared scalar kind.
func (e *External) Kind() format.ScalarType { return e.kind }

func (e *External) Len() int { return e.length }

// At delegates to the read callable with the given position.
func (e *External) At(i int) (any, error) {
	if e.read == nil {
		return nil, ErrNoReader
	}
	if i < 0 || i >= e.length {
		return nil, fmt.Errorf("virtual: position %d out of range [0, %d)", i, e.length)
	}

	return e.read(i)
}

// Set delegates to the write callable with the given position and value.
func (e *External) Set(i int, val any) error {
	if e.write == nil {
		return ErrNoWriter
	}
	if i < 0 || i >= e.length {
		return fmt.Errorf("virtual: position %d out of range [0, %d)", i, e.length)
	}

	return e.write(i, val)
}

// Writeable reports whether a write callable was supplied.
func (e *External) Writeable() bool { return e.write != nil }

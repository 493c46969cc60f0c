package array

import (
	"fmt"

	"github.com/arloliu/ragged/format"
)

// Slice adapts a Go slice to the Array interface.
//
// Set is strict about element types: the value must assert to T. Callers
// holding untyped values should convert before writing; the views in this
// module hand values through unchanged, so a round-trip of what At returned
// always succeeds.
type Slice[T any] struct {
	data []T
}

var _ Array = (*Slice[int64])(nil)

// NewSlice wraps data without copying. The slice stays owned by the caller;
// writes through the adapter are visible in the original slice.
func NewSlice[T any](data []T) *Slice[T] {
	return &Slice[T]{data: data}
}

func (s *Slice[T]) Len() int {
	return len(s.data)
}

func (s *Slice[T]) At(i int) (any, error) {
	if err := checkBounds(i, len(s.data)); err != nil {
		return nil, err
	}

	return s.data[i], nil
}

func (s *Slice[T]) Set(i int, v any) error {
	if err := checkBounds(i, len(s.data)); err != nil {
		return err
	}

	val, ok := v.(T)
	if !ok {
		return fmt.Errorf("array: cannot assign %T to element type %T", v, s.data[i])
	}
	s.data[i] = val

	return nil
}

// Data returns the underlying slice without copying.
func (s *Slice[T]) Data() []T {
	return s.data
}

// KindOf reports the fixed-width scalar kind of arr, or ScalarInvalid when
// the element type is not one of the canonical fixed-width kinds.
func KindOf(arr Array) format.ScalarType {
	switch arr.(type) {
	case *Slice[int8]:
		return format.ScalarInt8
	case *Slice[uint8], *Bytes:
		return format.ScalarUint8
	case *Slice[int16]:
		return format.ScalarInt16
	case *Slice[uint16]:
		return format.ScalarUint16
	case *Slice[int32]:
		return format.ScalarInt32
	case *Slice[uint32]:
		return format.ScalarUint32
	case *Slice[int64]:
		return format.ScalarInt64
	case *Slice[uint64]:
		return format.ScalarUint64
	case *Slice[float32]:
		return format.ScalarFloat32
	case *Slice[float64]:
		return format.ScalarFloat64
	default:
		return format.ScalarInvalid
	}
}

package array

import "fmt"

// As converts an array-like value into the Array abstraction.
//
// Supported inputs are values already satisfying Array and Go slices of the
// canonical fixed-width scalar kinds plus bool, string, and any. A []byte
// becomes a Bytes buffer. Scalars and other non-slice values are rejected:
// a result with no dimensions is never an array.
func As(v any) (Array, error) {
	switch x := v.(type) {
	case Array:
		return x, nil
	case []byte:
		return NewBytes(x), nil
	case []int8:
		return NewSlice(x), nil
	case []int16:
		return NewSlice(x), nil
	case []uint16:
		return NewSlice(x), nil
	case []int32:
		return NewSlice(x), nil
	case []uint32:
		return NewSlice(x), nil
	case []int64:
		return NewSlice(x), nil
	case []uint64:
		return NewSlice(x), nil
	case []int:
		return NewSlice(x), nil
	case []float32:
		return NewSlice(x), nil
	case []float64:
		return NewSlice(x), nil
	case []bool:
		return NewSlice(x), nil
	case []string:
		return NewSlice(x), nil
	case []any:
		return NewSlice(x), nil
	case nil:
		return nil, fmt.Errorf("array: cannot convert nil to an array")
	default:
		return nil, fmt.Errorf("array: %T has no dimensions and cannot be treated as an array", v)
	}
}

// AsIndex converts an integral slice into the canonical []int64 index
// representation, copying when the element type is not already int64.
//
// Non-integral inputs (float slices, scalars, multi-typed []any) are
// rejected at conversion time. A length-0 slice is valid.
func AsIndex(v any) ([]int64, error) {
	switch x := v.(type) {
	case []int64:
		return x, nil
	case []int:
		out := make([]int64, len(x))
		for i, e := range x {
			out[i] = int64(e)
		}

		return out, nil
	case []int8:
		out := make([]int64, len(x))
		for i, e := range x {
			out[i] = int64(e)
		}

		return out, nil
	case []int16:
		out := make([]int64, len(x))
		for i, e := range x {
			out[i] = int64(e)
		}

		return out, nil
	case []int32:
		out := make([]int64, len(x))
		for i, e := range x {
			out[i] = int64(e)
		}

		return out, nil
	case []uint16:
		out := make([]int64, len(x))
		for i, e := range x {
			out[i] = int64(e)
		}

		return out, nil
	case []uint32:
		out := make([]int64, len(x))
		for i, e := range x {
			out[i] = int64(e)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("array: index must be a 1-dimensional integral array, got %T", v)
	}
}

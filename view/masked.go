package view

import (
	"fmt"

	"github.com/arloliu/ragged/array"
)

// Masked is an Indexed view with a reserved sentinel index value: whenever
// an index slot equals the sentinel, that logical position is missing,
// irrespective of content. The index array is the single source of truth
// for nullability; no parallel boolean mask exists, and every write path
// preserves that invariant.
type Masked struct {
	Indexed
	maskedWhen int64
}

var _ array.NullSource = (*Masked)(nil)

// NewMasked creates a writeable masked view. maskedWhen is the reserved
// index value meaning "missing" (conventionally -1).
func NewMasked(index, content any, maskedWhen int64) (*Masked, error) {
	inner, err := NewIndexed(index, content)
	if err != nil {
		return nil, err
	}

	return &Masked{Indexed: *inner, maskedWhen: maskedWhen}, nil
}

// MaskedWhen returns the sentinel index value.
func (v *Masked) MaskedWhen() int64 { return v.maskedWhen }

// Null reports whether logical position i is missing.
func (v *Masked) Null(i int) bool {
	return v.index[i] == v.maskedWhen
}

// At returns array.Missing when the index slot holds the sentinel, and the
// mapped content value otherwise.
func (v *Masked) At(i int) (any, error) {
	if err := v.checkPos(i); err != nil {
		return nil, err
	}
	if v.index[i] == v.maskedWhen {
		return array.Missing, nil
	}

	return v.content.At(int(v.index[i]))
}

// Take gathers the values at the given logical positions, with
// array.Missing at masked positions.
func (v *Masked) Take(positions []int) ([]any, error) {
	out := make([]any, 0, len(positions))
	for _, p := range positions {
		val, err := v.At(p)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}

	return out, nil
}

// Slice returns a new Masked over index[lo:hi] and the same content. Nulls
// are carried structurally by the sliced index, never eagerly resolved.
func (v *Masked) Slice(lo, hi int) (*Masked, error) {
	if lo < 0 || hi < lo || hi > len(v.index) {
		return nil, fmt.Errorf("view: slice [%d:%d] out of range [0, %d]", lo, hi, len(v.index))
	}

	return &Masked{
		Indexed:    Indexed{index: v.index[lo:hi], content: v.content, writeable: v.writeable},
		maskedWhen: v.maskedWhen,
	}, nil
}

// Field returns a new Masked over the named column of the content, sharing
// the same index and sentinel.
func (v *Masked) Field(name string) (*Masked, error) {
	col, err := fieldOf(v.content, name)
	if err != nil {
		return nil, err
	}

	return &Masked{
		Indexed:    Indexed{index: v.index, content: col, writeable: v.writeable},
		maskedWhen: v.maskedWhen,
	}, nil
}

// Set writes a single logical position. The missing marker (bare or inside
// a length-1 wrapper) masks the position by storing the sentinel into the
// index slot; a length-1 wrapper of a real value is unwrapped; any other
// bare value is assigned through the mapping.
func (v *Masked) Set(i int, what any) error {
	if !v.writeable {
		return ErrReadOnly
	}
	if err := v.checkPos(i); err != nil {
		return err
	}

	op, err := classifyOperand(what)
	if err != nil {
		return err
	}

	switch op.kind {
	case operandMissing:
		v.index[i] = v.maskedWhen
		return nil
	case operandSingleton, operandScalar:
		return v.content.Set(int(v.index[i]), op.value)
	default:
		return fmt.Errorf("%w: %d values for 1 position", ErrLengthMismatch, op.len())
	}
}

// SetAt writes the given logical positions, dispatching once on the shape
// of what:
//
//   - missing marker (bare or length-1 wrapped): every index slot becomes
//     the sentinel
//   - length-1 wrapper of a real value, or a bare scalar: the value is
//     assigned through every mapped position
//   - a nullable source of matching length: positions masked in the source
//     get the sentinel, the rest receive the source's content
//   - a plain sequence mixing missing markers: same split, mask computed
//     elementwise
//   - a markerless plain sequence: values are assigned only through
//     positions whose index slot is not the sentinel; already-masked
//     positions stay masked
func (v *Masked) SetAt(positions []int, what any) error {
	if !v.writeable {
		return ErrReadOnly
	}
	for _, p := range positions {
		if err := v.checkPos(p); err != nil {
			return err
		}
	}

	op, err := classifyOperand(what)
	if err != nil {
		return err
	}

	switch op.kind {
	case operandMissing:
		for _, p := range positions {
			v.index[p] = v.maskedWhen
		}

		return nil

	case operandSingleton, operandScalar:
		for _, p := range positions {
			if err := v.content.Set(int(v.index[p]), op.value); err != nil {
				return err
			}
		}

		return nil

	case operandNullSource, operandSequence:
		if op.len() != len(positions) {
			return fmt.Errorf("%w: %d values for %d positions", ErrLengthMismatch, op.len(), len(positions))
		}
		for k, p := range positions {
			if op.null[k] {
				v.index[p] = v.maskedWhen
				continue
			}
			if err := v.content.Set(int(v.index[p]), op.values[k]); err != nil {
				return err
			}
		}

		return nil

	case operandPlain:
		if op.len() != len(positions) {
			return fmt.Errorf("%w: %d values for %d positions", ErrLengthMismatch, op.len(), len(positions))
		}
		// A markerless write never re-asserts nullability: slots already
		// masked are skipped and stay masked.
		for k, p := range positions {
			if v.index[p] == v.maskedWhen {
				continue
			}
			if err := v.content.Set(int(v.index[p]), op.values[k]); err != nil {
				return err
			}
		}

		return nil

	default:
		return fmt.Errorf("view: unsupported write operand %T", what)
	}
}

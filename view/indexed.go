package view

import (
	"fmt"

	"github.com/arloliu/ragged/array"
)

// Indexed is a position-mapped read/write view over a content array:
// At(p) returns Content[Index[p]] and Set(p, v) assigns through the same
// mapping. The index and content are shared, not copied.
type Indexed struct {
	index     []int64
	content   array.Array
	writeable bool
}

var _ array.Array = (*Indexed)(nil)

// NewIndexed creates a writeable view of content through index.
//
// The index must be a 1-dimensional integral array (length 0 allowed); the
// content must be convertible via array.As. Violations are reported here,
// at assignment time.
func NewIndexed(index, content any) (*Indexed, error) {
	v := &Indexed{writeable: true}
	if err := v.SetIndex(index); err != nil {
		return nil, err
	}
	if err := v.SetContent(content); err != nil {
		return nil, err
	}

	return v, nil
}

// SetIndex replaces the index array, validating dimensionality and dtype.
func (v *Indexed) SetIndex(index any) error {
	idx, err := array.AsIndex(index)
	if err != nil {
		return err
	}
	v.index = idx

	return nil
}

// SetContent replaces the content array.
func (v *Indexed) SetContent(content any) error {
	arr, err := array.As(content)
	if err != nil {
		return err
	}
	v.content = arr

	return nil
}

// Index returns the index array without copying.
func (v *Indexed) Index() []int64 { return v.index }

// Content returns the content array.
func (v *Indexed) Content() array.Array { return v.content }

// Writeable reports whether writes are allowed through this view.
func (v *Indexed) Writeable() bool { return v.writeable }

// SetWriteable flips the view's writeable flag.
func (v *Indexed) SetWriteable(writeable bool) { v.writeable = writeable }

// Len returns the number of logical positions, which is the index length.
func (v *Indexed) Len() int { return len(v.index) }

// At returns the content value mapped from logical position i.
func (v *Indexed) At(i int) (any, error) {
	if err := v.checkPos(i); err != nil {
		return nil, err
	}

	return v.content.At(int(v.index[i]))
}

// Take gathers the values at the given logical positions.
func (v *Indexed) Take(positions []int) ([]any, error) {
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

// Set assigns val to the content position mapped from logical position i.
func (v *Indexed) Set(i int, val any) error {
	if !v.writeable {
		return ErrReadOnly
	}
	if err := v.checkPos(i); err != nil {
		return err
	}

	return v.content.Set(int(v.index[i]), val)
}

// Field returns a new Indexed over the named column of the content, sharing
// the same index. The content must expose named columns.
func (v *Indexed) Field(name string) (*Indexed, error) {
	col, err := fieldOf(v.content, name)
	if err != nil {
		return nil, err
	}

	return &Indexed{index: v.index, content: col, writeable: v.writeable}, nil
}

func (v *Indexed) checkPos(i int) error {
	if i < 0 || i >= len(v.index) {
		return fmt.Errorf("view: position %d out of range [0, %d)", i, len(v.index))
	}

	return nil
}

func fieldOf(content array.Array, name string) (array.Array, error) {
	rec, ok := content.(array.Record)
	if !ok {
		return nil, fmt.Errorf("%w: %T", array.ErrNotRecord, content)
	}

	return rec.Field(name)
}

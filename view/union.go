package view

import (
	"fmt"

	"github.com/arloliu/ragged/array"
)

// Union dispatches per-position reads and writes across several content
// arrays. A tag array selects the content, a co-indexed index array selects
// the position inside it: At(p) = Contents[Tag[p]][Index[p]].
type Union struct {
	tags      []int64
	index     []int64
	contents  []array.Array
	writeable bool
}

var _ array.Array = (*Union)(nil)

// NewUnion creates a writeable union view. tags and index must both be
// 1-dimensional integral arrays; contents must be non-empty. The tag/index
// length invariant is checked on every access rather than here, so the two
// can be replaced independently.
func NewUnion(tags, index any, contents []array.Array) (*Union, error) {
	v := &Union{writeable: true}
	if err := v.SetTags(tags); err != nil {
		return nil, err
	}
	if err := v.SetIndex(index); err != nil {
		return nil, err
	}
	if err := v.SetContents(contents); err != nil {
		return nil, err
	}

	return v, nil
}

// SetTags replaces the tag array, validating dimensionality and dtype.
func (v *Union) SetTags(tags any) error {
	t, err := array.AsIndex(tags)
	if err != nil {
		return fmt.Errorf("view: tags must be a 1-dimensional integral array: %w", err)
	}
	v.tags = t

	return nil
}

// SetIndex replaces the index array, validating dimensionality and dtype.
func (v *Union) SetIndex(index any) error {
	idx, err := array.AsIndex(index)
	if err != nil {
		return err
	}
	v.index = idx

	return nil
}

// SetContents replaces the content arrays.
func (v *Union) SetContents(contents []array.Array) error {
	if len(contents) == 0 {
		return fmt.Errorf("view: union needs at least one content array")
	}
	v.contents = contents

	return nil
}

// Tags returns the tag array without copying.
func (v *Union) Tags() []int64 { return v.tags }

// Index returns the index array without copying.
func (v *Union) Index() []int64 { return v.index }

// Contents returns the content arrays.
func (v *Union) Contents() []array.Array { return v.contents }

// Writeable reports whether writes are allowed through this view.
func (v *Union) Writeable() bool { return v.writeable }

// SetWriteable flips the view's writeable flag.
func (v *Union) SetWriteable(writeable bool) { v.writeable = writeable }

// Len returns the number of logical positions.
func (v *Union) Len() int { return len(v.tags) }

// At returns Contents[Tag[i]][Index[i]].
func (v *Union) At(i int) (any, error) {
	if err := v.checkShape(); err != nil {
		return nil, err
	}
	if err := v.checkPos(i); err != nil {
		return nil, err
	}
	content, err := v.contentFor(v.tags[i])
	if err != nil {
		return nil, err
	}

	return content.At(int(v.index[i]))
}

// Take selects multiple positions, slicing tags and index together. When
// the selection contains exactly one distinct tag the result collapses to
// the concrete values gathered from that single content; otherwise the
// result is a new Union over the sliced tag/index pair and the full content
// set.
func (v *Union) Take(positions []int) (array.Array, error) {
	if err := v.checkShape(); err != nil {
		return nil, err
	}

	stags := make([]int64, len(positions))
	sindex := make([]int64, len(positions))
	for k, p := range positions {
		if err := v.checkPos(p); err != nil {
			return nil, err
		}
		stags[k] = v.tags[p]
		sindex[k] = v.index[p]
	}

	if tag, single := singleTag(stags); single {
		content, err := v.contentFor(tag)
		if err != nil {
			return nil, err
		}
		vals := make([]any, len(sindex))
		for k, idx := range sindex {
			val, err := content.At(int(idx))
			if err != nil {
				return nil, err
			}
			vals[k] = val
		}

		return array.NewSlice(vals), nil
	}

	return &Union{tags: stags, index: sindex, contents: v.contents, writeable: v.writeable}, nil
}

// Set assigns val through position i's tag and index mapping.
func (v *Union) Set(i int, val any) error {
	if !v.writeable {
		return ErrReadOnly
	}
	if err := v.checkShape(); err != nil {
		return err
	}
	if err := v.checkPos(i); err != nil {
		return err
	}
	content, err := v.contentFor(v.tags[i])
	if err != nil {
		return err
	}

	return content.Set(int(v.index[i]), val)
}

// SetAt writes the given positions, partitioning them by distinct tag value
// and routing what into each tag's content at the mapped positions.
//
// A scalar or length-1 operand is broadcast to every targeted position; a
// sequence operand must have exactly one element per targeted position and
// is routed element by element alongside the partition.
func (v *Union) SetAt(positions []int, what any) error {
	if !v.writeable {
		return ErrReadOnly
	}
	if err := v.checkShape(); err != nil {
		return err
	}
	for _, p := range positions {
		if err := v.checkPos(p); err != nil {
			return err
		}
	}

	var (
		scalar    any
		broadcast bool
		seq       array.Array
	)
	if arr, err := array.As(what); err == nil {
		if arr.Len() == 1 {
			v0, aerr := arr.At(0)
			if aerr != nil {
				return aerr
			}
			scalar, broadcast = v0, true
		} else {
			if arr.Len() != len(positions) {
				return fmt.Errorf("%w: cannot copy sequence with size %d to axis with dimension %d",
					ErrLengthMismatch, arr.Len(), len(positions))
			}
			seq = arr
		}
	} else {
		scalar, broadcast = what, true
	}

	// Partition target positions by distinct tag, preserving first-seen
	// order, then route the operand per partition.
	order, groups := partitionByTag(v.tags, positions)
	for _, tag := range order {
		content, err := v.contentFor(tag)
		if err != nil {
			return err
		}
		for _, k := range groups[tag] {
			p := positions[k]
			val := scalar
			if !broadcast {
				var aerr error
				val, aerr = seq.At(k)
				if aerr != nil {
					return aerr
				}
			}
			if err := content.Set(int(v.index[p]), val); err != nil {
				return err
			}
		}
	}

	return nil
}

// Field returns a new Union with every content projected to the named
// column, sharing tags and index.
func (v *Union) Field(name string) (*Union, error) {
	cols := make([]array.Array, len(v.contents))
	for i, content := range v.contents {
		col, err := fieldOf(content, name)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}

	return &Union{tags: v.tags, index: v.index, contents: cols, writeable: v.writeable}, nil
}

// checkShape enforces the tag/index length invariant before any access.
func (v *Union) checkShape() error {
	if len(v.tags) != len(v.index) {
		return fmt.Errorf("%w: tags length %d, index length %d", ErrShapeMismatch, len(v.tags), len(v.index))
	}

	return nil
}

func (v *Union) checkPos(i int) error {
	if i < 0 || i >= len(v.tags) {
		return fmt.Errorf("view: position %d out of range [0, %d)", i, len(v.tags))
	}

	return nil
}

func (v *Union) contentFor(tag int64) (array.Array, error) {
	if tag < 0 || tag >= int64(len(v.contents)) {
		return nil, fmt.Errorf("view: tag %d out of range [0, %d)", tag, len(v.contents))
	}

	return v.contents[tag], nil
}

// singleTag reports whether tags holds exactly one distinct value.
func singleTag(tags []int64) (int64, bool) {
	if len(tags) == 0 {
		return 0, false
	}
	first := tags[0]
	for _, t := range tags[1:] {
		if t != first {
			return 0, false
		}
	}

	return first, true
}

// partitionByTag groups position indices (into the positions slice) by tag
// value, preserving the order tags are first seen.
func partitionByTag(tags []int64, positions []int) ([]int64, map[int64][]int) {
	var order []int64
	groups := make(map[int64][]int)
	for k, p := range positions {
		tag := tags[p]
		if _, seen := groups[tag]; !seen {
			order = append(order, tag)
		}
		groups[tag] = append(groups[tag], k)
	}

	return order, groups
}

package view

import (
	"testing"

	"github.com/arloliu/ragged/array"
	"github.com/stretchr/testify/require"
)

func newTestUnion(t *testing.T) (*Union, []int64, []int64) {
	t.Helper()
	left := []int64{5, 6}
	right := []int64{7}
	v, err := NewUnion([]int64{0, 1, 0}, []int64{0, 0, 1}, []array.Array{
		array.NewSlice(left),
		array.NewSlice(right),
	})
	require.NoError(t, err)

	return v, left, right
}

func TestUnion_ReadDispatchesByTag(t *testing.T) {
	v, _, _ := newTestUnion(t)
	require.Equal(t, 3, v.Len())

	want := []int64{5, 7, 6}
	for p, w := range want {
		got, err := v.At(p)
		require.NoError(t, err)
		require.Equal(t, w, got, "position %d", p)
	}
}

func TestUnion_WriteDispatchesByTag(t *testing.T) {
	v, left, right := newTestUnion(t)

	require.NoError(t, v.Set(1, int64(70)))
	require.Equal(t, int64(70), right[0])

	require.NoError(t, v.Set(2, int64(60)))
	require.Equal(t, int64(60), left[1])
	require.Equal(t, int64(5), left[0], "untargeted slots untouched")
}

func TestUnion_ReadOnly(t *testing.T) {
	v, _, _ := newTestUnion(t)
	v.SetWriteable(false)

	require.ErrorIs(t, v.Set(0, int64(1)), ErrReadOnly)
	require.ErrorIs(t, v.SetAt([]int{0}, int64(1)), ErrReadOnly)
}

func TestUnion_TakeMixedTags(t *testing.T) {
	v, _, _ := newTestUnion(t)

	sub, err := v.Take([]int{1, 2})
	require.NoError(t, err)

	u, ok := sub.(*Union)
	require.True(t, ok, "mixed tags keep the union structure")
	require.Equal(t, []int64{1, 0}, u.Tags())
	require.Equal(t, []int64{0, 1}, u.Index())

	got, err := u.At(0)
	require.NoError(t, err)
	require.Equal(t, int64(7), got)
	got, err = u.At(1)
	require.NoError(t, err)
	require.Equal(t, int64(6), got)
}

func TestUnion_TakeSingleTagCollapses(t *testing.T) {
	v, _, _ := newTestUnion(t)

	// Positions 0 and 2 both carry tag 0.
	sub, err := v.Take([]int{2, 0, 0})
	require.NoError(t, err)

	s, ok := sub.(*array.Slice[any])
	require.True(t, ok, "one distinct tag collapses to plain values")
	require.Equal(t, []any{int64(6), int64(5), int64(5)}, s.Data())
}

func TestUnion_TakeEmptyKeepsUnion(t *testing.T) {
	v, _, _ := newTestUnion(t)

	sub, err := v.Take(nil)
	require.NoError(t, err)
	require.Equal(t, 0, sub.Len())
	_, ok := sub.(*Union)
	require.True(t, ok)
}

func TestUnion_ShapeCheckedOnAccess(t *testing.T) {
	v, _, _ := newTestUnion(t)

	// Replacing the index alone is legal; the mismatch surfaces on use.
	require.NoError(t, v.SetIndex([]int64{0}))

	_, err := v.At(0)
	require.ErrorIs(t, err, ErrShapeMismatch)
	_, err = v.Take([]int{0})
	require.ErrorIs(t, err, ErrShapeMismatch)
	require.ErrorIs(t, v.Set(0, int64(1)), ErrShapeMismatch)
	require.ErrorIs(t, v.SetAt([]int{0}, int64(1)), ErrShapeMismatch)

	// Restoring a matching pair heals the view.
	require.NoError(t, v.SetIndex([]int64{0, 0, 1}))
	_, err = v.At(0)
	require.NoError(t, err)
}

func TestUnion_TagOutOfRange(t *testing.T) {
	v, err := NewUnion([]int64{2}, []int64{0}, []array.Array{array.NewSlice([]int64{1})})
	require.NoError(t, err)

	_, aerr := v.At(0)
	require.Error(t, aerr)

	v2, err := NewUnion([]int64{-1}, []int64{0}, []array.Array{array.NewSlice([]int64{1})})
	require.NoError(t, err)
	_, aerr = v2.At(0)
	require.Error(t, aerr)
}

func TestUnion_SetAtBroadcast(t *testing.T) {
	v, left, right := newTestUnion(t)

	require.NoError(t, v.SetAt([]int{0, 1, 2}, int64(9)))
	require.Equal(t, []int64{9, 9}, left)
	require.Equal(t, []int64{9}, right)
}

func TestUnion_SetAtLengthOneBroadcast(t *testing.T) {
	v, left, right := newTestUnion(t)

	require.NoError(t, v.SetAt([]int{0, 1}, []int64{4}))
	require.Equal(t, int64(4), left[0])
	require.Equal(t, int64(4), right[0])
}

func TestUnion_SetAtSequence(t *testing.T) {
	v, left, right := newTestUnion(t)

	require.NoError(t, v.SetAt([]int{1, 2, 0}, []int64{100, 200, 300}))
	require.Equal(t, int64(100), right[0])
	require.Equal(t, int64(200), left[1])
	require.Equal(t, int64(300), left[0])
}

func TestUnion_SetAtLengthMismatch(t *testing.T) {
	v, _, _ := newTestUnion(t)

	require.ErrorIs(t, v.SetAt([]int{0, 1}, []int64{1, 2, 3}), ErrLengthMismatch)
}

func TestUnion_Validation(t *testing.T) {
	_, err := NewUnion([]float64{0}, []int64{0}, []array.Array{array.NewSlice([]int64{1})})
	require.Error(t, err, "non-integral tags")

	_, err = NewUnion([]int64{0}, "nope", []array.Array{array.NewSlice([]int64{1})})
	require.Error(t, err, "bad index")

	_, err = NewUnion([]int64{0}, []int64{0}, nil)
	require.Error(t, err, "no contents")
}

func TestUnion_FieldProjection(t *testing.T) {
	t1, err := array.NewTable([]string{"x"}, []array.Array{array.NewSlice([]int64{10})})
	require.NoError(t, err)
	t2, err := array.NewTable([]string{"x"}, []array.Array{array.NewSlice([]int64{20})})
	require.NoError(t, err)

	v, err := NewUnion([]int64{1, 0}, []int64{0, 0}, []array.Array{t1, t2})
	require.NoError(t, err)

	proj, err := v.Field("x")
	require.NoError(t, err)

	got, err := proj.At(0)
	require.NoError(t, err)
	require.Equal(t, int64(20), got)
	got, err = proj.At(1)
	require.NoError(t, err)
	require.Equal(t, int64(10), got)

	_, err = v.Field("missing")
	require.ErrorIs(t, err, array.ErrNotRecord)
}

func TestUnion_ComposesAsContent(t *testing.T) {
	v, _, _ := newTestUnion(t)

	outer, err := NewIndexed([]int64{2, 1}, v)
	require.NoError(t, err)

	got, err := outer.At(0)
	require.NoError(t, err)
	require.Equal(t, int64(6), got)
}

package cache

import (
	"testing"

	"github.com/arloliu/ragged/array"
	"github.com/stretchr/testify/require"
)

func TestNewLRU_Validation(t *testing.T) {
	_, err := NewLRU(0)
	require.Error(t, err)
	_, err = NewLRU(-3)
	require.Error(t, err)
}

func TestLRU_EvictsColdEnd(t *testing.T) {
	c, err := NewLRU(2)
	require.NoError(t, err)

	c.Set("a", array.NewSlice([]int64{1}))
	c.Set("b", array.NewSlice([]int64{2}))
	c.Set("c", array.NewSlice([]int64{3}))
	require.Equal(t, 2, c.Len())

	_, ok := c.Get("a")
	require.False(t, ok, "oldest entry evicted")
	_, ok = c.Get("b")
	require.True(t, ok)
	_, ok = c.Get("c")
	require.True(t, ok)
}

func TestLRU_GetRefreshesRecency(t *testing.T) {
	c, err := NewLRU(2)
	require.NoError(t, err)

	c.Set("a", array.NewSlice([]int64{1}))
	c.Set("b", array.NewSlice([]int64{2}))

	// Touch "a" so "b" becomes the cold end.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", array.NewSlice([]int64{3}))
	_, ok = c.Get("b")
	require.False(t, ok)
	_, ok = c.Get("a")
	require.True(t, ok)
}

func TestLRU_SetExistingRefreshes(t *testing.T) {
	c, err := NewLRU(2)
	require.NoError(t, err)

	c.Set("a", array.NewSlice([]int64{1}))
	c.Set("b", array.NewSlice([]int64{2}))
	c.Set("a", array.NewSlice([]int64{10}))
	require.Equal(t, 2, c.Len())

	c.Set("c", array.NewSlice([]int64{3}))
	_, ok := c.Get("b")
	require.False(t, ok, "replacement refreshed a, so b was cold")

	got, ok := c.Get("a")
	require.True(t, ok)
	v, verr := got.At(0)
	require.NoError(t, verr)
	require.Equal(t, int64(10), v)
}

func TestLRU_Delete(t *testing.T) {
	c, err := NewLRU(4)
	require.NoError(t, err)

	c.Set("a", array.NewSlice([]int64{1}))
	c.Delete("a")
	require.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	require.False(t, ok)

	c.Delete("absent")
}

package array

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAs_Slices(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{"int64 slice", []int64{1, 2, 3}, 3},
		{"float64 slice", []float64{1.5}, 1},
		{"string slice", []string{"a", "b"}, 2},
		{"any slice", []any{int64(1), "x"}, 2},
		{"empty slice", []int64{}, 0},
		{"bool slice", []bool{true}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr, err := As(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, arr.Len())
		})
	}
}

func TestAs_BytesBecomesBuffer(t *testing.T) {
	arr, err := As([]byte{1, 2, 3})
	require.NoError(t, err)

	buf, ok := arr.(*Bytes)
	require.True(t, ok)
	require.True(t, buf.Writeable())
	require.Equal(t, 3, buf.Len())
}

func TestAs_PassthroughArray(t *testing.T) {
	orig := NewSlice([]int64{1})
	arr, err := As(orig)
	require.NoError(t, err)
	require.Same(t, orig, arr)
}

func TestAs_RejectsScalars(t *testing.T) {
	for _, input := range []any{3.14, int64(7), "text", nil, struct{}{}} {
		_, err := As(input)
		require.Error(t, err, "input %T", input)
	}
}

func TestAsIndex_IntegralKinds(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []int64
	}{
		{"int64", []int64{2, 0, 1}, []int64{2, 0, 1}},
		{"int", []int{5, -1}, []int64{5, -1}},
		{"int32", []int32{7}, []int64{7}},
		{"int8", []int8{-1}, []int64{-1}},
		{"uint16", []uint16{9}, []int64{9}},
		{"empty", []int64{}, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := AsIndex(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, idx)
		})
	}
}

func TestAsIndex_RejectsNonIntegral(t *testing.T) {
	for _, input := range []any{[]float64{1}, []string{"a"}, 5, nil, []any{int64(1)}} {
		_, err := AsIndex(input)
		require.Error(t, err, "input %T", input)
	}
}

func TestAsIndex_SharesInt64Slice(t *testing.T) {
	orig := []int64{1, 2}
	idx, err := AsIndex(orig)
	require.NoError(t, err)

	idx[0] = 99
	require.Equal(t, int64(99), orig[0], "int64 input must be shared, not copied")
}

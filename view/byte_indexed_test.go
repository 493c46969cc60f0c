package view

import (
	"testing"

	"github.com/arloliu/ragged/array"
	"github.com/arloliu/ragged/encoding"
	"github.com/arloliu/ragged/endian"
	"github.com/arloliu/ragged/format"
	"github.com/stretchr/testify/require"
)

func testBuffer(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i*37 + 11)
	}

	return buf
}

func TestByteIndexed_ScalarDecode(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	buf := []byte{0x34, 0x12, 0x78, 0x56}

	v, err := NewByteIndexed([]int64{0, 2, 1}, buf, format.ScalarUint16, WithEngine(engine))
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())

	got, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), got)

	got, err = v.At(1)
	require.NoError(t, err)
	require.Equal(t, uint16(0x5678), got)

	// Offset 1 straddles the two: unaligned reads are legal.
	got, err = v.At(2)
	require.NoError(t, err)
	require.Equal(t, uint16(0x7812), got)
}

// Per-offset decoding and batched decoding of the same offsets must agree
// for every itemsize, including overlapping and non-contiguous offsets.
func TestByteIndexed_TakeAgreesWithAt(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	buf := testBuffer(64)

	types := []format.ScalarType{
		format.ScalarUint8,   // itemsize 1
		format.ScalarInt16,   // itemsize 2
		format.ScalarFloat32, // itemsize 4
		format.ScalarFloat64, // itemsize 8
	}
	selections := map[string][]int{
		"empty":       {},
		"single":      {2},
		"overlapping": {0, 3, 3, 1, 7}, // K=5, repeated and overlapping offsets
	}

	for _, typ := range types {
		// Offsets chosen so every one fits regardless of itemsize.
		v, err := NewByteIndexed([]int64{0, 5, 13, 21, 33, 40, 48, 50}, buf, typ, WithEngine(engine))
		require.NoError(t, err)

		for name, positions := range selections {
			t.Run(typ.String()+"/"+name, func(t *testing.T) {
				batch, err := v.Take(positions)
				require.NoError(t, err)

				arr, err := array.As(batch)
				require.NoError(t, err)
				require.Equal(t, len(positions), arr.Len())

				for k, p := range positions {
					single, err := v.At(p)
					require.NoError(t, err)
					batched, err := arr.At(k)
					require.NoError(t, err)
					require.Equal(t, single, batched, "position %d", p)
				}
			})
		}
	}
}

func TestByteIndexed_TakeEmptyLeavesBufferUntouched(t *testing.T) {
	buf := testBuffer(16)
	snapshot := append([]byte(nil), buf...)

	v, err := NewByteIndexed([]int64{0, 8}, buf, format.ScalarFloat64)
	require.NoError(t, err)

	got, err := v.Take(nil)
	require.NoError(t, err)
	require.Equal(t, []float64{}, got)
	require.Equal(t, snapshot, buf)
}

func TestByteIndexed_WriteRoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 16)

	v, err := NewByteIndexed([]int64{8, 0, 3}, buf, format.ScalarFloat64, WithEngine(engine))
	require.NoError(t, err)

	require.NoError(t, v.Set(0, 2.5))
	got, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 2.5, got)

	// The patch is exactly itemsize bytes at the mapped offset.
	codec, err := encoding.NewScalar(format.ScalarFloat64, engine)
	require.NoError(t, err)
	decoded, err := codec.Decode(buf, 8)
	require.NoError(t, err)
	require.Equal(t, 2.5, decoded)
	require.Equal(t, make([]byte, 8), buf[:8], "bytes outside the patch stay zero")
}

func TestByteIndexed_ScatterMirrorsTake(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 32)

	v, err := NewByteIndexed([]int64{0, 4, 11, 20}, buf, format.ScalarUint32, WithEngine(engine))
	require.NoError(t, err)

	require.NoError(t, v.Scatter([]int{0, 2, 3}, []uint32{7, 8, 9}))

	got, err := v.Take([]int{0, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []uint32{7, 8, 9}, got)

	// Position 1 was not targeted.
	single, err := v.At(1)
	require.NoError(t, err)
	require.NotEqual(t, uint32(7), single)
}

func TestByteIndexed_ScatterBroadcastScalar(t *testing.T) {
	buf := make([]byte, 8)
	v, err := NewByteIndexed([]int64{0, 2, 6}, buf, format.ScalarUint16, WithEngine(endian.GetLittleEndianEngine()))
	require.NoError(t, err)

	require.NoError(t, v.Scatter([]int{0, 1, 2}, uint16(0xABCD)))
	got, err := v.Take([]int{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, []uint16{0xABCD, 0xABCD, 0xABCD}, got)
}

func TestByteIndexed_ScatterLengthMismatch(t *testing.T) {
	v, err := NewByteIndexed([]int64{0, 2}, make([]byte, 8), format.ScalarUint16)
	require.NoError(t, err)

	require.ErrorIs(t, v.Scatter([]int{0, 1}, []uint16{1, 2, 3}), ErrLengthMismatch)
}

func TestByteIndexed_ScatterEmptyIsNoOp(t *testing.T) {
	buf := testBuffer(8)
	snapshot := append([]byte(nil), buf...)

	v, err := NewByteIndexed([]int64{0}, buf, format.ScalarUint32)
	require.NoError(t, err)
	require.NoError(t, v.Scatter(nil, []uint32{}))
	require.Equal(t, snapshot, buf)
}

func TestByteIndexed_WriteabilityTogglesBufferFlag(t *testing.T) {
	v, err := NewByteIndexed([]int64{0}, make([]byte, 8), format.ScalarUint64)
	require.NoError(t, err)
	require.True(t, v.Content().Writeable())

	v.SetWriteable(false)
	require.False(t, v.Content().Writeable(), "buffer mutability follows the view flag")
	require.ErrorIs(t, v.Set(0, uint64(1)), ErrReadOnly)
	require.ErrorIs(t, v.Scatter([]int{0}, uint64(1)), ErrReadOnly)

	v.SetWriteable(true)
	require.True(t, v.Content().Writeable())
	require.NoError(t, v.Set(0, uint64(1)))
}

func TestByteIndexed_ScalarTypeRevalidatedLazily(t *testing.T) {
	v, err := NewByteIndexed([]int64{0}, make([]byte, 8), format.ScalarUint64)
	require.NoError(t, err)

	_, aerr := v.At(0)
	require.NoError(t, aerr)

	// Switching to an invalid type is accepted silently...
	v.SetScalarType(format.ScalarInvalid)
	require.Equal(t, format.ScalarInvalid, v.ScalarType())

	// ...and only the next use reports it.
	_, aerr = v.At(0)
	require.Error(t, aerr)

	v.SetScalarType(format.ScalarUint16)
	_, aerr = v.At(0)
	require.NoError(t, aerr)
}

func TestByteIndexed_OffsetOutOfRange(t *testing.T) {
	v, err := NewByteIndexed([]int64{5}, make([]byte, 8), format.ScalarUint64)
	require.NoError(t, err)

	// Offset 5 with itemsize 8 runs past the buffer.
	_, aerr := v.At(0)
	require.Error(t, aerr)
	_, aerr = v.Take([]int{0})
	require.Error(t, aerr)
}

func TestByteIndexed_ContentMustBeBytes(t *testing.T) {
	_, err := NewByteIndexed([]int64{0}, []int64{1, 2}, format.ScalarInt64)
	require.Error(t, err)
}

func BenchmarkByteIndexed_Take(b *testing.B) {
	buf := testBuffer(8192)
	index := make([]int64, 1024)
	positions := make([]int, len(index))
	for i := range index {
		index[i] = int64((i * 7) % (len(buf) - 8))
		positions[i] = i
	}

	v, err := NewByteIndexed(index, buf, format.ScalarFloat64, WithEngine(endian.GetLittleEndianEngine()))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for b.Loop() {
		if _, err := v.Take(positions); err != nil {
			b.Fatal(err)
		}
	}
}

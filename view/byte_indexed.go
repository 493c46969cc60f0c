package view

import (
	"fmt"

	"github.com/arloliu/ragged/array"
	"github.com/arloliu/ragged/encoding"
	"github.com/arloliu/ragged/endian"
	"github.com/arloliu/ragged/format"
	"github.com/arloliu/ragged/internal/options"
	"github.com/arloliu/ragged/internal/pool"
)

// ByteIndexed is a position-mapped view over a raw byte buffer.
//
// Index values are absolute byte offsets, not element counts, so offsets may
// be unaligned, overlapping, or non-contiguous. Each read decodes one scalar
// of the declared type starting at its offset; each write patches the
// itemsize bytes in place.
type ByteIndexed struct {
	index     []int64
	buf       *array.Bytes
	typ       format.ScalarType
	engine    endian.EndianEngine
	codec     encoding.Scalar
	stale     bool
	writeable bool
}

// ByteIndexedOption configures a ByteIndexed view at construction.
type ByteIndexedOption = options.Option[*ByteIndexed]

// WithEngine selects the byte order used for decoding. The default is the
// host's native byte order.
func WithEngine(engine endian.EndianEngine) ByteIndexedOption {
	return options.NoError(func(v *ByteIndexed) {
		v.engine = engine
		v.stale = true
	})
}

// NewByteIndexed creates a writeable byte-offset view over content decoded
// as typ.
//
// The content must be a raw byte buffer ([]byte or *array.Bytes). The
// declared scalar type is validated lazily, on first use, so an invalid typ
// is accepted here and reported by the next read or write.
func NewByteIndexed(index, content any, typ format.ScalarType, opts ...ByteIndexedOption) (*ByteIndexed, error) {
	v := &ByteIndexed{
		typ:       typ,
		engine:    endian.GetNativeEngine(),
		stale:     true,
		writeable: true,
	}
	if err := v.SetIndex(index); err != nil {
		return nil, err
	}
	if err := v.SetContent(content); err != nil {
		return nil, err
	}
	if err := options.Apply(v, opts...); err != nil {
		return nil, err
	}

	return v, nil
}

// SetIndex replaces the offset array, validating dimensionality and dtype.
func (v *ByteIndexed) SetIndex(index any) error {
	idx, err := array.AsIndex(index)
	if err != nil {
		return err
	}
	v.index = idx

	return nil
}

// SetContent replaces the backing buffer. Only raw byte buffers are
// accepted; the buffer's mutability flag is aligned with the view's
// writeable flag.
func (v *ByteIndexed) SetContent(content any) error {
	arr, err := array.As(content)
	if err != nil {
		return err
	}
	buf, ok := arr.(*array.Bytes)
	if !ok {
		return fmt.Errorf("view: byte-indexed content must be a raw byte buffer, got %T", arr)
	}
	buf.SetWriteable(v.writeable)
	v.buf = buf

	return nil
}

// SetScalarType changes the declared scalar type. The new type's itemsize is
// re-validated lazily, only on the next read or write.
func (v *ByteIndexed) SetScalarType(typ format.ScalarType) {
	v.typ = typ
	v.stale = true
}

// ScalarType returns the declared scalar type.
func (v *ByteIndexed) ScalarType() format.ScalarType { return v.typ }

// Index returns the byte-offset array without copying.
func (v *ByteIndexed) Index() []int64 { return v.index }

// Content returns the backing byte buffer.
func (v *ByteIndexed) Content() *array.Bytes { return v.buf }

// Writeable reports whether writes are allowed through this view.
func (v *ByteIndexed) Writeable() bool { return v.writeable }

// SetWriteable flips the view's writeable flag and the buffer's mutability
// flag together.
func (v *ByteIndexed) SetWriteable(writeable bool) {
	v.writeable = writeable
	v.buf.SetWriteable(writeable)
}

// Len returns the number of logical positions.
func (v *ByteIndexed) Len() int { return len(v.index) }

// At decodes one scalar of the declared type starting at the absolute byte
// offset mapped from logical position i.
func (v *ByteIndexed) At(i int) (any, error) {
	codec, err := v.ensureCodec()
	if err != nil {
		return nil, err
	}
	if err := v.checkPos(i); err != nil {
		return nil, err
	}

	return codec.Decode(v.buf.Data(), int(v.index[i]))
}

// Take decodes the scalars at the given logical positions in one pass and
// returns them as a typed slice ([]int8, []float64, ... depending on the
// declared type).
//
// Because offsets may be arbitrary, unaligned, overlapping, or
// non-contiguous, a single stride cannot describe the source bytes. Take
// builds two K*S index arrays - one listing, for each offset, its S
// consecutive source byte positions, one listing destination positions in a
// K*S scratch buffer - performs one byte-level gather from source to
// scratch, and reinterprets the scratch as K scalars. Zero positions yield
// an empty typed slice with the buffer untouched.
func (v *ByteIndexed) Take(positions []int) (any, error) {
	codec, err := v.ensureCodec()
	if err != nil {
		return nil, err
	}

	k := len(positions)
	if k == 0 {
		return codec.DecodeSlice(nil, 0)
	}

	size := codec.Size()
	srcIdx, dstIdx, release, err := v.buildByteIndexes(positions, size)
	if err != nil {
		return nil, err
	}
	defer release()

	scratch, putScratch := pool.GetByteSlice(k * size)
	defer putScratch()

	data := v.buf.Data()
	for t := range srcIdx {
		scratch[dstIdx[t]] = data[srcIdx[t]]
	}

	return codec.DecodeSlice(scratch, k)
}

// Set patches the itemsize bytes at the offset mapped from position i with
// the encoding of val.
func (v *ByteIndexed) Set(i int, val any) error {
	if !v.writeable {
		return ErrReadOnly
	}
	codec, err := v.ensureCodec()
	if err != nil {
		return err
	}
	if err := v.checkPos(i); err != nil {
		return err
	}

	var tmp [8]byte
	patch := tmp[:codec.Size()]
	if err := codec.Encode(patch, 0, val); err != nil {
		return err
	}

	return v.buf.WriteAt(int(v.index[i]), patch)
}

// Scatter writes K values to the offsets mapped from the given positions,
// mirroring Take: the K values are encoded into a K*S staging buffer, the
// same two index arrays are built, and one byte-level scatter copies staging
// bytes to their destination offsets. A non-sequence operand is broadcast to
// every position; a sequence operand must have exactly K elements.
func (v *ByteIndexed) Scatter(positions []int, values any) error {
	if !v.writeable {
		return ErrReadOnly
	}
	codec, err := v.ensureCodec()
	if err != nil {
		return err
	}
	if !v.buf.Writeable() {
		return array.ErrFrozen
	}

	k := len(positions)
	if k == 0 {
		return nil
	}

	size := codec.Size()
	staging, putStaging := pool.GetByteSlice(k * size)
	defer putStaging()

	if arr, cerr := array.As(values); cerr == nil {
		if arr.Len() != k {
			return fmt.Errorf("%w: %d values for %d positions", ErrLengthMismatch, arr.Len(), k)
		}
		for i := range k {
			val, verr := arr.At(i)
			if verr != nil {
				return verr
			}
			if err := codec.Encode(staging, i*size, val); err != nil {
				return err
			}
		}
	} else {
		// Scalar operand: encode once, replicate across the staging buffer.
		if err := codec.Encode(staging, 0, values); err != nil {
			return err
		}
		for i := 1; i < k; i++ {
			copy(staging[i*size:(i+1)*size], staging[:size])
		}
	}

	srcIdx, dstIdx, release, err := v.buildByteIndexes(positions, size)
	if err != nil {
		return err
	}
	defer release()

	data := v.buf.Data()
	for t := range srcIdx {
		data[srcIdx[t]] = staging[dstIdx[t]]
	}

	return nil
}

// buildByteIndexes constructs the two K*S byte index arrays shared by Take
// and Scatter: content positions (offset + j for each of the S bytes of each
// selected offset) and scratch positions (sequential). Offsets are bounds
// checked against the buffer here.
func (v *ByteIndexed) buildByteIndexes(positions []int, size int) (srcIdx, dstIdx []int64, release func(), err error) {
	k := len(positions)
	bufLen := len(v.buf.Data())

	srcIdx, putSrc := pool.GetInt64Slice(k * size)
	dstIdx, putDst := pool.GetInt64Slice(k * size)
	release = func() {
		putDst()
		putSrc()
	}

	for i, p := range positions {
		if p < 0 || p >= len(v.index) {
			release()
			return nil, nil, nil, fmt.Errorf("view: position %d out of range [0, %d)", p, len(v.index))
		}
		off := v.index[p]
		if off < 0 || off+int64(size) > int64(bufLen) {
			release()
			return nil, nil, nil, fmt.Errorf("view: byte offset %d with itemsize %d out of range [0, %d)", off, size, bufLen)
		}
		for j := 0; j < size; j++ {
			srcIdx[i*size+j] = off + int64(j)
			dstIdx[i*size+j] = int64(i*size + j)
		}
	}

	return srcIdx, dstIdx, release, nil
}

// ensureCodec rebuilds the scalar codec after a type or engine change.
// This is where a bad declared type surfaces: validation is deferred from
// SetScalarType to the next use.
func (v *ByteIndexed) ensureCodec() (encoding.Scalar, error) {
	if v.stale {
		codec, err := encoding.NewScalar(v.typ, v.engine)
		if err != nil {
			return encoding.Scalar{}, err
		}
		v.codec = codec
		v.stale = false
	}

	return v.codec, nil
}

func (v *ByteIndexed) checkPos(i int) error {
	if i < 0 || i >= len(v.index) {
		return fmt.Errorf("view: position %d out of range [0, %d)", i, len(v.index))
	}

	return nil
}

// Package encoding implements fixed-width scalar encoding and decoding
// against raw byte buffers.
//
// A Scalar binds one format.ScalarType to an endian.EndianEngine and decodes
// or patches single values at arbitrary byte offsets. Offsets are absolute
// byte positions, not element counts, so unaligned and overlapping reads are
// legal by construction.
package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/ragged/endian"
	"github.com/arloliu/ragged/format"
)

// Scalar encodes and decodes one fixed-width scalar kind.
type Scalar struct {
	typ    format.ScalarType
	engine endian.EndianEngine
}

// NewScalar creates a codec for the given scalar type. The type must be one
// of the fixed-width kinds.
func NewScalar(typ format.ScalarType, engine endian.EndianEngine) (Scalar, error) {
	if !typ.Valid() {
		return Scalar{}, fmt.Errorf("encoding: invalid scalar type %s", typ)
	}

	return Scalar{typ: typ, engine: engine}, nil
}

// Type returns the bound scalar type.
func (s Scalar) Type() format.ScalarType {
	return s.typ
}

// Size returns the item size in bytes.
func (s Scalar) Size() int {
	return s.typ.Size()
}

// Decode reads one scalar starting at absolute byte offset off.
func (s Scalar) Decode(buf []byte, off int) (any, error) {
	size := s.typ.Size()
	if off < 0 || off+size > len(buf) {
		return nil, fmt.Errorf("encoding: byte offset %d with itemsize %d out of range [0, %d)", off, size, len(buf))
	}

	switch s.typ {
	case format.ScalarInt8:
		return int8(buf[off]), nil
	case format.ScalarUint8:
		return buf[off], nil
	case format.ScalarInt16:
		return int16(s.engine.Uint16(buf[off : off+2])), nil
	case format.ScalarUint16:
		return s.engine.Uint16(buf[off : off+2]), nil
	case format.ScalarInt32:
		return int32(s.engine.Uint32(buf[off : off+4])), nil
	case format.ScalarUint32:
		return s.engine.Uint32(buf[off : off+4]), nil
	case format.ScalarInt64:
		return int64(s.engine.Uint64(buf[off : off+8])), nil
	case format.ScalarUint64:
		return s.engine.Uint64(buf[off : off+8]), nil
	case format.ScalarFloat32:
		return math.Float32frombits(s.engine.Uint32(buf[off : off+4])), nil
	case format.ScalarFloat64:
		return math.Float64frombits(s.engine.Uint64(buf[off : off+8])), nil
	default:
		return nil, fmt.Errorf("encoding: invalid scalar type %s", s.typ)
	}
}

// Encode patches one scalar value into buf starting at absolute byte offset
// off. The value must match the bound kind; plain int and float64 values are
// accepted for the integer and float kinds as a convenience.
func (s Scalar) Encode(buf []byte, off int, v any) error {
	size := s.typ.Size()
	if off < 0 || off+size > len(buf) {
		return fmt.Errorf("encoding: byte offset %d with itemsize %d out of range [0, %d)", off, size, len(buf))
	}

	bits, err := s.bits(v)
	if err != nil {
		return err
	}

	switch size {
	case 1:
		buf[off] = byte(bits)
	case 2:
		s.engine.PutUint16(buf[off:off+2], uint16(bits))
	case 4:
		s.engine.PutUint32(buf[off:off+4], uint32(bits))
	case 8:
		s.engine.PutUint64(buf[off:off+8], bits)
	}

	return nil
}

// DecodeSlice decodes count consecutive scalars from the start of buf into a
// typed slice ([]int8, []float64, ...), returned as any.
func (s Scalar) DecodeSlice(buf []byte, count int) (any, error) {
	size := s.typ.Size()
	if count < 0 || count*size > len(buf) {
		return nil, fmt.Errorf("encoding: cannot decode %d values of itemsize %d from %d bytes", count, size, len(buf))
	}

	switch s.typ {
	case format.ScalarInt8:
		out := make([]int8, count)
		for i := range out {
			out[i] = int8(buf[i])
		}

		return out, nil
	case format.ScalarUint8:
		out := make([]uint8, count)
		copy(out, buf[:count])

		return out, nil
	case format.ScalarInt16:
		out := make([]int16, count)
		for i := range out {
			out[i] = int16(s.engine.Uint16(buf[i*2 : i*2+2]))
		}

		return out, nil
	case format.ScalarUint16:
		out := make([]uint16, count)
		for i := range out {
			out[i] = s.engine.Uint16(buf[i*2 : i*2+2])
		}

		return out, nil
	case format.ScalarInt32:
		out := make([]int32, count)
		for i := range out {
			out[i] = int32(s.engine.Uint32(buf[i*4 : i*4+4]))
		}

		return out, nil
	case format.ScalarUint32:
		out := make([]uint32, count)
		for i := range out {
			out[i] = s.engine.Uint32(buf[i*4 : i*4+4])
		}

		return out, nil
	case format.ScalarInt64:
		out := make([]int64, count)
		for i := range out {
			out[i] = int64(s.engine.Uint64(buf[i*8 : i*8+8]))
		}

		return out, nil
	case format.ScalarUint64:
		out := make([]uint64, count)
		for i := range out {
			out[i] = s.engine.Uint64(buf[i*8 : i*8+8])
		}

		return out, nil
	case format.ScalarFloat32:
		out := make([]float32, count)
		for i := range out {
			out[i] = math.Float32frombits(s.engine.Uint32(buf[i*4 : i*4+4]))
		}

		return out, nil
	case format.ScalarFloat64:
		out := make([]float64, count)
		for i := range out {
			out[i] = math.Float64frombits(s.engine.Uint64(buf[i*8 : i*8+8]))
		}

		return out, nil
	default:
		return nil, fmt.Errorf("encoding: invalid scalar type %s", s.typ)
	}
}

// bits converts v into its raw bit pattern for the bound kind.
func (s Scalar) bits(v any) (uint64, error) {
	switch s.typ {
	case format.ScalarInt8:
		if x, ok := v.(int8); ok {
			return uint64(uint8(x)), nil
		}
	case format.ScalarUint8:
		if x, ok := v.(uint8); ok {
			return uint64(x), nil
		}
	case format.ScalarInt16:
		if x, ok := v.(int16); ok {
			return uint64(uint16(x)), nil
		}
	case format.ScalarUint16:
		if x, ok := v.(uint16); ok {
			return uint64(x), nil
		}
	case format.ScalarInt32:
		if x, ok := v.(int32); ok {
			return uint64(uint32(x)), nil
		}
	case format.ScalarUint32:
		if x, ok := v.(uint32); ok {
			return uint64(x), nil
		}
	case format.ScalarInt64:
		if x, ok := v.(int64); ok {
			return uint64(x), nil
		}
	case format.ScalarUint64:
		if x, ok := v.(uint64); ok {
			return x, nil
		}
	case format.ScalarFloat32:
		if x, ok := v.(float32); ok {
			return uint64(math.Float32bits(x)), nil
		}
	case format.ScalarFloat64:
		if x, ok := v.(float64); ok {
			return math.Float64bits(x), nil
		}
	}

	// Convenience widening for untyped literals.
	switch x := v.(type) {
	case int:
		switch s.typ {
		case format.ScalarInt8:
			return uint64(uint8(int8(x))), nil
		case format.ScalarUint8:
			return uint64(uint8(x)), nil
		case format.ScalarInt16:
			return uint64(uint16(int16(x))), nil
		case format.ScalarUint16:
			return uint64(uint16(x)), nil
		case format.ScalarInt32:
			return uint64(uint32(int32(x))), nil
		case format.ScalarUint32:
			return uint64(uint32(x)), nil
		case format.ScalarInt64:
			return uint64(int64(x)), nil
		case format.ScalarUint64:
			return uint64(x), nil
		}
	case float64:
		if s.typ == format.ScalarFloat32 {
			return uint64(math.Float32bits(float32(x))), nil
		}
	}

	return 0, fmt.Errorf("encoding: cannot encode %T as %s", v, s.typ)
}

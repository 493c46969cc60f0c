package array

import (
	"errors"
	"fmt"
)

// ErrFrozen is returned when a write reaches a byte buffer whose mutability
// flag is off.
var ErrFrozen = errors.New("array: byte buffer is read-only")

// Bytes is a raw byte buffer addressed by byte offsets.
//
// Unlike Slice[byte] it carries a mutability flag, mirroring the buffer
// semantics byte-indexed views need: toggling the owning view's writeability
// flips this flag, and every write path checks it.
type Bytes struct {
	data      []byte
	writeable bool
}

var _ Array = (*Bytes)(nil)

// NewBytes wraps data without copying. The buffer starts writeable.
func NewBytes(data []byte) *Bytes {
	return &Bytes{data: data, writeable: true}
}

func (b *Bytes) Len() int {
	return len(b.data)
}

func (b *Bytes) At(i int) (any, error) {
	if err := checkBounds(i, len(b.data)); err != nil {
		return nil, err
	}

	return b.data[i], nil
}

func (b *Bytes) Set(i int, v any) error {
	if !b.writeable {
		return ErrFrozen
	}
	if err := checkBounds(i, len(b.data)); err != nil {
		return err
	}

	val, ok := v.(byte)
	if !ok {
		return fmt.Errorf("array: cannot assign %T to a byte buffer", v)
	}
	b.data[i] = val

	return nil
}

// Data returns the underlying bytes without copying. The returned slice must
// be treated as read-only when Writeable is false.
func (b *Bytes) Data() []byte {
	return b.data
}

// Writeable reports the buffer's mutability flag.
func (b *Bytes) Writeable() bool {
	return b.writeable
}

// SetWriteable flips the buffer's mutability flag.
func (b *Bytes) SetWriteable(writeable bool) {
	b.writeable = writeable
}

// WriteAt patches len(p) bytes starting at byte offset off.
func (b *Bytes) WriteAt(off int, p []byte) error {
	if !b.writeable {
		return ErrFrozen
	}
	if off < 0 || off+len(p) > len(b.data) {
		return fmt.Errorf("array: byte range [%d, %d) out of range [0, %d)", off, off+len(p), len(b.data))
	}
	copy(b.data[off:], p)

	return nil
}

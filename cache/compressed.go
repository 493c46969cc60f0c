package cache

import (
	"fmt"

	"github.com/arloliu/ragged/array"
	"github.com/arloliu/ragged/compress"
	"github.com/arloliu/ragged/format"
	"github.com/arloliu/ragged/virtual"
)

// Compressed wraps an inner cache and compresses raw byte payloads on the
// way in. Only *array.Bytes entries are compressed; every other array kind
// passes through untouched.
//
// A failed compression falls back to storing the payload uncompressed - the
// cache must never lose an entry to a codec fault - and a failed
// decompression is reported as a miss, which the owning virtual array
// answers by regenerating.
type Compressed struct {
	inner virtual.Cache
	codec compress.Codec
}

// compressedBytes is the stored form of a compressed byte payload.
type compressedBytes struct {
	payload   []byte
	rawLen    int
	writeable bool
}

func (c *compressedBytes) Len() int { return c.rawLen }

func (c *compressedBytes) At(int) (any, error) {
	return nil, fmt.Errorf("cache: compressed entry must be fetched through its cache")
}

func (c *compressedBytes) Set(int, any) error {
	return fmt.Errorf("cache: compressed entry must be fetched through its cache")
}

var _ virtual.Cache = (*Compressed)(nil)

// NewCompressed wraps inner with the codec selected by compressionType.
func NewCompressed(inner virtual.Cache, compressionType format.CompressionType) (*Compressed, error) {
	codec, err := compress.CreateCodec(compressionType, "cache")
	if err != nil {
		return nil, err
	}

	return &Compressed{inner: inner, codec: codec}, nil
}

// Get returns the array stored under key, decompressing byte payloads.
func (c *Compressed) Get(key string) (array.Array, bool) {
	arr, ok := c.inner.Get(key)
	if !ok {
		return nil, false
	}

	entry, isCompressed := arr.(*compressedBytes)
	if !isCompressed {
		return arr, true
	}

	raw, err := c.codec.Decompress(entry.payload)
	if err != nil {
		// A corrupt entry behaves like an eviction.
		c.inner.Delete(key)
		return nil, false
	}
	if raw == nil {
		raw = []byte{}
	}
	buf := array.NewBytes(raw)
	buf.SetWriteable(entry.writeable)

	return buf, true
}

// Set stores arr under key, compressing *array.Bytes payloads.
func (c *Compressed) Set(key string, arr array.Array) {
	buf, isBytes := arr.(*array.Bytes)
	if !isBytes {
		c.inner.Set(key, arr)
		return
	}

	payload, err := c.codec.Compress(buf.Data())
	if err != nil {
		c.inner.Set(key, arr)
		return
	}
	c.inner.Set(key, &compressedBytes{
		payload:   payload,
		rawLen:    buf.Len(),
		writeable: buf.Writeable(),
	})
}

// Delete removes key from the inner cache.
func (c *Compressed) Delete(key string) {
	c.inner.Delete(key)
}

package compress

// ZstdCompressor provides Zstandard compression for cached payloads.
//
// Zstd trades compression speed for ratio, which suits cache entries that
// are written once per materialization and read many times. Two
// implementations exist: a cgo binding (gozstd) selected by build tag, and
// a pure-Go fallback (klauspost/compress/zstd) used everywhere else.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

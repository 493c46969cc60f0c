// Package compress provides compression codecs for cached byte payloads.
//
// Materialized byte buffers registered in a cache can be large and highly
// redundant (fixed-width records, repeated offsets), so the compressed cache
// backend shrinks them through one of these codecs before storing:
//
//   - None: no compression (fastest, largest)
//   - S2: Snappy-compatible, very fast, moderate ratio
//   - LZ4: fast with slightly better ratios than S2 on structured data
//   - Zstd: best ratio, slower; cgo implementation when available
//
// Codecs are stateless values safe for concurrent use; internal
// encoder/decoder state is pooled.
package compress

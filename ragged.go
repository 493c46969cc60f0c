// Package ragged provides indirection and lazy-materialization views for
// irregular columnar data.
//
// Data that is jagged, nullable, or heterogeneous is represented without
// copying: array-like views map logical positions to physical storage
// through an integer index array and read or write through that mapping.
//
// # Core Features
//
//   - Indexed views: Read(p) = Content[Index[p]], writes go through the
//     same mapping
//   - Byte-indexed views: index values are absolute byte offsets into a raw
//     buffer, decoded under a declared fixed-width scalar type
//   - Masked views: a reserved sentinel index value marks a position as
//     missing, with no parallel boolean mask
//   - Union views: per-position dispatch across several content arrays via
//     a parallel tag array
//   - Virtual arrays: deferred materialization with pluggable caches
//     (unbounded, LRU, compressed) and transparent regeneration after
//     eviction
//
// # Basic Usage
//
// Creating an indexed view:
//
//	import "github.com/arloliu/ragged"
//
//	v, _ := ragged.NewIndexed([]int64{2, 0, 1}, []int64{10, 20, 30})
//	val, _ := v.At(0) // 30
//
// Deferring an expensive column behind a cache:
//
//	c := ragged.NewMemoryCache()
//	lazy, _ := ragged.NewVirtual(func() (any, error) {
//	    return loadColumn(), nil
//	}, virtual.WithCache(c))
//	arr, _ := lazy.Array() // generator runs here, result is cached
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the view,
// virtual, and cache packages, simplifying the most common use cases. For
// advanced usage and fine-grained control, use those packages directly.
package ragged

import (
	"github.com/arloliu/ragged/array"
	"github.com/arloliu/ragged/cache"
	"github.com/arloliu/ragged/format"
	"github.com/arloliu/ragged/view"
	"github.com/arloliu/ragged/virtual"
)

// Missing is the canonical "no value here" marker returned by masked views.
var Missing = array.Missing

// IsMissing reports whether v is the missing marker.
func IsMissing(v any) bool {
	return array.IsMissing(v)
}

// NewIndexed creates a writeable view of content through index.
func NewIndexed(index, content any) (*view.Indexed, error) {
	return view.NewIndexed(index, content)
}

// NewByteIndexed creates a byte-offset view over a raw buffer decoded as typ.
func NewByteIndexed(index, content any, typ format.ScalarType, opts ...view.ByteIndexedOption) (*view.ByteIndexed, error) {
	return view.NewByteIndexed(index, content, typ, opts...)
}

// NewMasked creates a masked view with the given sentinel index value.
func NewMasked(index, content any, maskedWhen int64) (*view.Masked, error) {
	return view.NewMasked(index, content, maskedWhen)
}

// NewUnion creates a union view over the given content arrays.
func NewUnion(tags, index any, contents []array.Array) (*view.Union, error) {
	return view.NewUnion(tags, index, contents)
}

// NewVirtual creates an unrealized virtual array around gen.
func NewVirtual(gen virtual.Generator, opts ...virtual.VirtualOption) (*virtual.Virtual, error) {
	return virtual.NewVirtual(gen, opts...)
}

// NewMemoryCache creates an unbounded in-memory cache for virtual arrays.
func NewMemoryCache() *cache.Memory {
	return cache.NewMemory()
}

package pool

import "sync"

// Slice pools for efficient reuse of scratch slices.
// Batched byte gather/scatter builds two index slices and one staging buffer
// per call; pooling them keeps the hot path allocation-free.
var (
	int64SlicePool = sync.Pool{
		New: func() any { return &[]int64{} },
	}
	byteSlicePool = sync.Pool{
		New: func() any { return &[]byte{} },
	}
)

// GetInt64Slice retrieves and resizes an int64 slice from the pool.
//
// The returned slice has length equal to size; contents are unspecified and
// must be fully overwritten by the caller. The cleanup function must be
// called (typically with defer) to return the slice to the pool.
func GetInt64Slice(size int) ([]int64, func()) {
	ptr, _ := int64SlicePool.Get().(*[]int64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { int64SlicePool.Put(ptr) }
}

// GetByteSlice retrieves and resizes a byte slice from the pool.
//
// Same contract as GetInt64Slice: length equals size, contents unspecified,
// cleanup must be called to recycle the slice.
func GetByteSlice(size int) ([]byte, func()) {
	ptr, _ := byteSlicePool.Get().(*[]byte)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]byte, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { byteSlicePool.Put(ptr) }
}

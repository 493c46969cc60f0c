// Package array defines the backing-store abstraction shared by every view
// in ragged.
//
// An Array is the minimal contract a content store must satisfy: a length,
// a positional read, and a positional write. The package ships adapters for
// the common cases:
//
//   - Slice[T]: a Go slice of any element type
//   - Bytes: a raw byte buffer with a mutability flag, addressed by byte offset
//   - Table: an ordered set of equal-length named columns
//   - MaskedSlice: a value slice paired with a validity mask of either polarity
//
// Conversion from plain Go values into the abstraction goes through As (any
// supported slice kind) and AsIndex (integral slices only, producing the
// canonical []int64 index representation). Both validate eagerly so that a
// malformed input fails at assignment time, not at first use.
package array

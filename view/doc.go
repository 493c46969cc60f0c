// Package view implements position-mapped views over content arrays.
//
// Every view maps logical positions to physical storage through an int64
// index array and reads or writes through that mapping without copying the
// content:
//
//   - Indexed: Read(p) = Content[Index[p]]
//   - ByteIndexed: index values are absolute byte offsets into a raw buffer,
//     decoded under a declared fixed-width scalar type
//   - Masked: Indexed plus a sentinel index value that marks a position as
//     missing; the index array is the single source of truth for nullability
//   - Union: per-position dispatch across several content arrays selected by
//     a parallel tag array
//
// All views satisfy array.Array themselves, so they compose: the content of
// one view can be another view.
//
// Views are not synchronized; concurrent use requires external locking.
package view

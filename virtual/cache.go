package virtual

import "github.com/arloliu/ragged/array"

// Cache is the external key->array mapping a Virtual array registers its
// materialized content in.
//
// Entries may be evicted at any time without notice. A lookup of a deleted
// or evicted key reports ok == false; a miss is a typed result, never an
// error, so an eviction performed by another party stays transparent to the
// owning view.
type Cache interface {
	// Get returns the array stored under key, ok == false on a miss.
	Get(key string) (arr array.Array, ok bool)

	// Set stores arr under key, replacing any previous entry.
	Set(key string, arr array.Array)

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string)
}

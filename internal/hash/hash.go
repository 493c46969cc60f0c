package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
//
// It is used to pick cache shards and to derive stable numeric identifiers
// for string keys.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

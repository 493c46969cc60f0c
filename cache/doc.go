// Package cache provides in-memory key->array caches for virtual arrays.
//
// Three backends are available:
//
//   - Memory: an unbounded sharded map, the default choice for tests and
//     small working sets
//   - LRU: a count-bounded cache evicting least-recently-used entries
//   - Compressed: a wrapper that transparently compresses raw byte payloads
//     through a compress.Codec before handing them to an inner cache
//
// All backends satisfy virtual.Cache: a lookup miss is a typed (nil, false)
// result, never an error, and any entry may disappear between a Set and the
// next Get. Virtual arrays treat that as an eviction and regenerate.
package cache

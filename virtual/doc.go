// Package virtual implements deferred and externally-backed arrays.
//
// A Virtual array holds a zero-argument generator instead of data and
// materializes on first access. With a cache attached, the materialized
// array lives in the cache under the view's key and may be evicted at any
// time; eviction is never an error, only a trigger for regeneration, so
// generators must be safe to invoke repeatedly.
//
// Object applies a one-argument generator to a content element on every
// read, and External delegates reads and writes to caller-supplied
// callables. All three are views in the array.Array sense and compose with
// the view package.
//
// Like the rest of the module, none of these types synchronize: concurrent
// materialize-or-lookup needs an external per-key lock.
package virtual

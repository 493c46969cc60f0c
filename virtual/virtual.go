package virtual

import (
	"errors"
	"fmt"

	"github.com/arloliu/ragged/array"
	"github.com/arloliu/ragged/format"
	"github.com/arloliu/ragged/internal/options"
)

// ErrReadOnly is returned by every write path of the read-only virtual
// variants. Materialized content is a disposable, regenerable projection,
// never a committed store.
var ErrReadOnly = errors.New("virtual: assignment destination is read-only")

// Generator produces a whole array on demand. It is invoked on first access
// and again after every cache eviction, so repeated invocation for the same
// view must be safe, idempotent, and side-effect-free to repeat.
type Generator func() (any, error)

// Virtual is a lazily materialized, unconditionally read-only array.
//
// It holds either nothing, a concrete array, or a cache key. The first
// access to Array materializes the generator's result; with a cache
// attached, the result is registered under the view's key and only the key
// is retained.
type Virtual struct {
	gen           Generator
	cache         Cache
	persistentKey string
	expectKind    format.ScalarType
	expectLen     int

	// held is nil (unrealized), an array.Array (realized, uncached), or a
	// string key (realized and registered in the cache).
	held        any
	transientID uint64
}

var _ array.Array = (*Virtual)(nil)

// VirtualOption configures a Virtual array at construction.
type VirtualOption = options.Option[*Virtual]

// WithCache attaches the cache the materialized array is registered in.
func WithCache(c Cache) VirtualOption {
	return options.NoError(func(v *Virtual) { v.cache = c })
}

// WithPersistentKey sets a caller-supplied stable key, valid across process
// boundaries. Without one, a transient counter-based key is used.
func WithPersistentKey(key string) VirtualOption {
	return options.NoError(func(v *Virtual) { v.persistentKey = key })
}

// WithExpectedKind declares the scalar kind the generator must produce.
// A mismatching materialization is an error.
func WithExpectedKind(kind format.ScalarType) VirtualOption {
	return options.NoError(func(v *Virtual) { v.expectKind = kind })
}

// WithExpectedLen declares the length the generator must produce.
func WithExpectedLen(n int) VirtualOption {
	return options.New(func(v *Virtual) error {
		if n < 0 {
			return fmt.Errorf("virtual: expected length must be non-negative, got %d", n)
		}
		v.expectLen = n

		return nil
	})
}

// NewVirtual creates an unrealized virtual array around gen.
func NewVirtual(gen Generator, opts ...VirtualOption) (*Virtual, error) {
	if gen == nil {
		return nil, errors.New("virtual: generator must be a callable of zero arguments")
	}

	v := &Virtual{gen: gen, expectLen: -1}
	if err := options.Apply(v, opts...); err != nil {
		return nil, err
	}

	return v, nil
}

// Key returns the cache key this view registers under: the persistent key
// when one was supplied, otherwise a transient key bound to this view's
// lifetime. The transient key is issued on first use and stays stable until
// Close releases it.
func (v *Virtual) Key() string {
	if v.persistentKey != "" {
		return v.persistentKey
	}
	if v.transientID == 0 {
		v.transientID = transientKeys.acquire()
	}

	return transientKeyString(v.transientID)
}

// PersistentKey returns the caller-supplied key, or "" when the view uses a
// transient key.
func (v *Virtual) PersistentKey() string { return v.persistentKey }

// Cache returns the attached cache, or nil.
func (v *Virtual) Cache() Cache { return v.cache }

// SetCache attaches or detaches the cache. Detaching while a key is held
// leaves the view unrealized; the next access re-materializes.
func (v *Virtual) SetCache(c Cache) { v.cache = c }

// Array returns the materialized array, producing it on first access.
//
// When the view holds a key, the cache is consulted first; a miss - which
// includes deliberate eviction by another party - triggers a fresh
// materialization and is never surfaced as an error.
func (v *Virtual) Array() (array.Array, error) {
	switch held := v.held.(type) {
	case nil:
		return v.Materialize()

	case string:
		if v.cache == nil {
			// Cache was detached while a key was held; regenerate.
			return v.Materialize()
		}
		if arr, ok := v.cache.Get(held); ok {
			return arr, nil
		}

		// Evicted. Regeneration is safe by the Generator contract.
		return v.Materialize()

	case array.Array:
		if v.cache == nil {
			return held, nil
		}
		// Cache attached after realization: register and keep the key.
		key := v.Key()
		v.cache.Set(key, held)
		v.held = key

		return held, nil

	default:
		return nil, fmt.Errorf("virtual: corrupt state %T", v.held)
	}
}

// Materialize invokes the generator, validates the result, and stores it:
// directly when no cache is attached, under the view's key otherwise (the
// view then retains only the key).
func (v *Virtual) Materialize() (array.Array, error) {
	raw, err := v.gen()
	if err != nil {
		return nil, fmt.Errorf("virtual: generator failed: %w", err)
	}

	arr, err := array.As(raw)
	if err != nil {
		return nil, fmt.Errorf("virtual: materialized result is not an array: %w", err)
	}
	if v.expectKind != format.ScalarInvalid {
		if kind := array.KindOf(arr); kind != v.expectKind {
			return nil, fmt.Errorf("virtual: materialized array has kind %s, expected %s", kind, v.expectKind)
		}
	}
	if v.expectLen >= 0 && arr.Len() != v.expectLen {
		return nil, fmt.Errorf("virtual: materialized array has length %d, expected %d", arr.Len(), v.expectLen)
	}

	if v.cache == nil {
		v.held = arr
	} else {
		key := v.Key()
		v.cache.Set(key, arr)
		v.held = key
	}

	return arr, nil
}

// Materialized reports whether an access would return without invoking the
// generator: the view holds a concrete array, or its key is currently
// present in the cache.
func (v *Virtual) Materialized() bool {
	switch held := v.held.(type) {
	case string:
		if v.cache == nil {
			return false
		}
		_, ok := v.cache.Get(held)

		return ok
	case array.Array:
		return true
	default:
		return false
	}
}

// Len returns the declared expected length when one was given, otherwise
// the materialized array's length (0 if materialization fails).
func (v *Virtual) Len() int {
	if v.expectLen >= 0 {
		return v.expectLen
	}
	arr, err := v.Array()
	if err != nil {
		return 0
	}

	return arr.Len()
}

// At reads position i of the materialized array.
func (v *Virtual) At(i int) (any, error) {
	arr, err := v.Array()
	if err != nil {
		return nil, err
	}

	return arr.At(i)
}

// Set always fails: virtual arrays are unconditionally read-only.
func (v *Virtual) Set(int, any) error {
	return ErrReadOnly
}

// Writeable always reports false.
func (v *Virtual) Writeable() bool { return false }

// Close releases the view's transient key: the cache entry is removed
// (best-effort) and the key id is returned to the arena, so a later
// unrelated view can never collide with it. Persistent keys stay in the
// cache deliberately. Close is idempotent.
func (v *Virtual) Close() error {
	if v.transientID == 0 {
		return nil
	}
	if v.cache != nil {
		if key, ok := v.held.(string); ok {
			v.cache.Delete(key)
		}
	}
	transientKeys.release(v.transientID)
	v.transientID = 0
	if _, ok := v.held.(string); ok && v.persistentKey == "" {
		v.held = nil
	}

	return nil
}

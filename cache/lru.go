package cache

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/arloliu/ragged/array"
	"github.com/arloliu/ragged/virtual"
)

// LRU is a count-bounded cache that evicts the least-recently-used entry
// when capacity is exceeded. Eviction is silent: the next Get of an evicted
// key simply misses, which a virtual array answers by regenerating.
type LRU struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	items    map[string]*list.Element
}

type lruEntry struct {
	key string
	arr array.Array
}

var _ virtual.Cache = (*LRU)(nil)

// NewLRU creates a cache holding at most capacity entries.
func NewLRU(capacity int) (*LRU, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("cache: LRU capacity must be positive, got %d", capacity)
	}

	return &LRU{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}, nil
}

// Get returns the array stored under key and marks it most recently used.
func (c *LRU) Get(key string) (array.Array, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)

	return elem.Value.(*lruEntry).arr, true
}

// Set stores arr under key, evicting from the cold end if needed.
func (c *LRU) Set(key string, arr array.Array) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		elem.Value.(*lruEntry).arr = arr
		c.order.MoveToFront(elem)

		return
	}

	c.items[key] = c.order.PushFront(&lruEntry{key: key, arr: arr})
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*lruEntry).key)
	}
}

// Delete removes key. Deleting an absent key is a no-op.
func (c *LRU) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.Remove(elem)
		delete(c.items, key)
	}
}

// Len returns the number of cached entries.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}

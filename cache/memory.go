package cache

import (
	"sync"

	"github.com/arloliu/ragged/array"
	"github.com/arloliu/ragged/internal/hash"
	"github.com/arloliu/ragged/virtual"
)

const shardCount = 16 // power of two, keyed by the low bits of the key hash

// Memory is an unbounded in-memory cache, sharded by key hash to keep lock
// contention low when many views share it.
type Memory struct {
	shards [shardCount]memoryShard
}

type memoryShard struct {
	mu      sync.RWMutex
	entries map[string]array.Array
}

var _ virtual.Cache = (*Memory)(nil)

// NewMemory creates an empty cache.
func NewMemory() *Memory {
	c := &Memory{}
	for i := range c.shards {
		c.shards[i].entries = make(map[string]array.Array)
	}

	return c
}

func (c *Memory) shard(key string) *memoryShard {
	return &c.shards[hash.ID(key)&(shardCount-1)]
}

// Get returns the array stored under key.
func (c *Memory) Get(key string) (array.Array, bool) {
	s := c.shard(key)
	s.mu.RLock()
	defer s.mu.RUnlock()

	arr, ok := s.entries[key]

	return arr, ok
}

// Set stores arr under key, replacing any previous entry.
func (c *Memory) Set(key string, arr array.Array) {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = arr
}

// Delete removes key. Deleting an absent key is a no-op.
func (c *Memory) Delete(key string) {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}

// Len returns the number of cached entries.
func (c *Memory) Len() int {
	n := 0
	for i := range c.shards {
		c.shards[i].mu.RLock()
		n += len(c.shards[i].entries)
		c.shards[i].mu.RUnlock()
	}

	return n
}

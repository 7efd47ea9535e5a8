// Package cache provides a sharded LRU cache for layout results.
//
// Keys are precomputed 64-bit hashes; the cache never sees the hashed
// content. Sharding keeps lock contention low when several goroutines flow
// paragraphs concurrently.
package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
)

const (
	// DefaultShardCount must be a power of 2 so that shard selection is a
	// bitwise AND.
	DefaultShardCount = 16

	// DefaultCapacity is the total entry count used when New is called with
	// a non-positive capacity.
	DefaultCapacity = 1024
)

// Cache is a thread-safe, sharded LRU cache keyed by 64-bit hashes.
type Cache[V any] struct {
	shards []shard[V]
	mask   uint64

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[V any] struct {
	mu       sync.Mutex
	entries  map[uint64]*list.Element
	lru      *list.List // front is most recently used
	capacity int
}

type entry[V any] struct {
	key   uint64
	value V
}

// New creates a cache holding up to capacity entries in total, spread over
// the given number of shards. A non-positive shard count selects
// DefaultShardCount; shard counts are rounded up to a power of 2.
func New[V any](capacity, shards int) *Cache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if shards <= 0 {
		shards = DefaultShardCount
	}
	n := 1
	for n < shards {
		n <<= 1
	}
	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}
	c := &Cache[V]{
		shards: make([]shard[V], n),
		mask:   uint64(n - 1),
	}
	for i := range c.shards {
		c.shards[i] = shard[V]{
			entries:  make(map[uint64]*list.Element),
			lru:      list.New(),
			capacity: perShard,
		}
	}
	return c
}

func (c *Cache[V]) shard(key uint64) *shard[V] {
	return &c.shards[key&c.mask]
}

// Get retrieves a cached value. A hit moves the entry to the front of its
// shard's LRU list.
func (c *Cache[V]) Get(key uint64) (V, bool) {
	s := c.shard(key)
	s.mu.Lock()
	el, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(el)
	value := el.Value.(*entry[V]).value
	s.mu.Unlock()
	c.hits.Add(1)
	return value, true
}

// PutIfAbsent stores value under key unless another goroutine got there
// first, and returns the value that ended up in the cache. The first writer
// wins, so all callers converge on the same result.
func (c *Cache[V]) PutIfAbsent(key uint64, value V) V {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.entries[key]; ok {
		s.lru.MoveToFront(el)
		return el.Value.(*entry[V]).value
	}
	for s.lru.Len() >= s.capacity {
		oldest := s.lru.Back()
		if oldest == nil {
			break
		}
		s.lru.Remove(oldest)
		delete(s.entries, oldest.Value.(*entry[V]).key)
		c.evictions.Add(1)
	}
	s.entries[key] = s.lru.PushFront(&entry[V]{key: key, value: value})
	return value
}

// Delete removes an entry, reporting whether it was present.
func (c *Cache[V]) Delete(key uint64) bool {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.entries[key]
	if !ok {
		return false
	}
	s.lru.Remove(el)
	delete(s.entries, key)
	return true
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		s.entries = make(map[uint64]*list.Element)
		s.lru.Init()
		s.mu.Unlock()
	}
}

// Len returns the number of cached entries across all shards.
func (c *Cache[V]) Len() int {
	total := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Stats is a snapshot of the cache counters.
type Stats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// Stats returns current cache statistics.
func (c *Cache[V]) Stats() Stats {
	hits, misses := c.hits.Load(), c.misses.Load()
	st := Stats{
		Len:       c.Len(),
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
	}
	if total := hits + misses; total > 0 {
		st.HitRate = float64(hits) / float64(total)
	}
	return st
}

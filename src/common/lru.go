package common

import "github.com/hashicorp/golang-lru/simplelru"

// LRU is a fixed-size cache that evicts the least-recently-used item when it
// is full. Eviction is silent and expected; it is not an error. LRU is a thin
// wrapper around hashicorp's simplelru and, like it, is NOT safe for
// concurrent access; callers are expected to synchronise externally.
type LRU struct {
	cache *simplelru.LRU
}

// NewLRU creates an LRU of the given size. The onEvicted callback, which may
// be nil, is invoked with the key and value of every evicted entry. A
// non-positive size is treated as 1.
func NewLRU(size int, onEvicted func(key interface{}, value interface{})) *LRU {
	if size < 1 {
		size = 1
	}
	cache, _ := simplelru.NewLRU(size, simplelru.EvictCallback(onEvicted))
	return &LRU{cache: cache}
}

// Get looks up a key's value and marks the entry as recently used.
func (l *LRU) Get(key interface{}) (interface{}, bool) {
	return l.cache.Get(key)
}

// Add inserts or updates a value, evicting the least-recently-used entry if
// the cache is full. It returns true when an eviction occurred.
func (l *LRU) Add(key, value interface{}) bool {
	return l.cache.Add(key, value)
}

// Contains checks for the presence of a key without updating recency.
func (l *LRU) Contains(key interface{}) bool {
	return l.cache.Contains(key)
}

// Peek returns a key's value without updating recency.
func (l *LRU) Peek(key interface{}) (interface{}, bool) {
	return l.cache.Peek(key)
}

// Remove removes a key from the cache.
func (l *LRU) Remove(key interface{}) bool {
	return l.cache.Remove(key)
}

// Keys returns the cached keys, oldest first.
func (l *LRU) Keys() []interface{} {
	return l.cache.Keys()
}

// Len returns the number of cached entries.
func (l *LRU) Len() int {
	return l.cache.Len()
}

// Purge removes all entries.
func (l *LRU) Purge() {
	l.cache.Purge()
}

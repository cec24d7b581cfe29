package common

import (
	"fmt"
	"testing"
)

func TestLRUEviction(t *testing.T) {
	size := 5

	evicted := []interface{}{}
	lru := NewLRU(size, func(key, value interface{}) {
		evicted = append(evicted, key)
	})

	for i := 0; i < size; i++ {
		lru.Add(fmt.Sprintf("key%d", i), i)
	}

	if l := lru.Len(); l != size {
		t.Fatalf("Len should be %d, not %d", size, l)
	}

	//key0 is the oldest; touch it so key1 becomes the eviction candidate
	if _, ok := lru.Get("key0"); !ok {
		t.Fatalf("key0 should be cached")
	}

	lru.Add("key5", 5)

	if l := lru.Len(); l != size {
		t.Fatalf("Len should still be %d, not %d", size, l)
	}
	if len(evicted) != 1 || evicted[0] != "key1" {
		t.Fatalf("key1 should have been evicted, got %v", evicted)
	}
	if lru.Contains("key1") {
		t.Fatalf("key1 should no longer be cached")
	}
	if !lru.Contains("key0") {
		t.Fatalf("key0 should still be cached")
	}
}

func TestLRUUpdate(t *testing.T) {
	lru := NewLRU(2, nil)

	lru.Add("key", "old")
	lru.Add("key", "new")

	if l := lru.Len(); l != 1 {
		t.Fatalf("Len should be 1, not %d", l)
	}

	val, ok := lru.Get("key")
	if !ok {
		t.Fatalf("key should be cached")
	}
	if val != "new" {
		t.Fatalf("value should be new, not %v", val)
	}
}

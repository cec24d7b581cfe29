package common

import "fmt"

// RollingIndexMap is a collection of RollingIndexes addressed by an opaque
// string key. Keys must be declared upfront with AddKey; setting an item for
// an undeclared key is an error, which makes a mistyped or unknown
// participant detectable, as opposed to silently creating a new index.
type RollingIndexMap struct {
	name    string
	size    int
	keys    []string
	mapping map[string]*RollingIndex
}

// NewRollingIndexMap creates a RollingIndexMap where each RollingIndex has
// the specified size.
func NewRollingIndexMap(name string, size int, keys []string) *RollingIndexMap {
	items := make(map[string]*RollingIndex)
	for _, key := range keys {
		items[key] = NewRollingIndex(fmt.Sprintf("%s[%s]", name, key), size)
	}
	return &RollingIndexMap{
		name:    name,
		size:    size,
		keys:    keys,
		mapping: items,
	}
}

// AddKey declares a new key. It returns a KeyAlreadyExists error when the key
// was already declared.
func (rim *RollingIndexMap) AddKey(key string) error {
	if _, ok := rim.mapping[key]; ok {
		return NewStoreErr(rim.name, KeyAlreadyExists, key)
	}
	rim.keys = append(rim.keys, key)
	rim.mapping[key] = NewRollingIndex(fmt.Sprintf("%s[%s]", rim.name, key), rim.size)
	return nil
}

// Get returns all items with index strictly greater than skipIndex from the
// RollingIndex identified by key.
func (rim *RollingIndexMap) Get(key string, skipIndex int) ([]interface{}, error) {
	items, ok := rim.mapping[key]
	if !ok {
		return nil, NewStoreErr(rim.name, KeyNotFound, key)
	}

	cached, err := items.Get(skipIndex)
	if err != nil {
		return nil, err
	}

	return cached, nil
}

// GetItem returns a specific item from the RollingIndex identified by key.
func (rim *RollingIndexMap) GetItem(key string, index int) (interface{}, error) {
	items, ok := rim.mapping[key]
	if !ok {
		return nil, NewStoreErr(rim.name, KeyNotFound, key)
	}
	return items.GetItem(index)
}

// GetLast returns the last item from the RollingIndex identified by key. It
// returns an Empty error when the index contains no items.
func (rim *RollingIndexMap) GetLast(key string) (interface{}, error) {
	pe, ok := rim.mapping[key]
	if !ok {
		return nil, NewStoreErr(rim.name, KeyNotFound, key)
	}
	cached, _ := pe.GetLastWindow()
	if len(cached) == 0 {
		return "", NewStoreErr(rim.name, Empty, key)
	}
	return cached[len(cached)-1], nil
}

// Set inserts or updates an item in the RollingIndex identified by key. The
// key must have been declared beforehand.
func (rim *RollingIndexMap) Set(key string, item interface{}, index int) error {
	items, ok := rim.mapping[key]
	if !ok {
		return NewStoreErr(rim.name, KeyNotFound, key)
	}
	return items.Set(item, index)
}

// Known returns a mapping of key to last known index, -1 when the index is
// empty.
func (rim *RollingIndexMap) Known() map[string]int {
	known := make(map[string]int)
	for k, items := range rim.mapping {
		_, lastIndex := items.GetLastWindow()
		known[k] = lastIndex
	}
	return known
}

// Reset replaces every RollingIndex with a fresh, empty one, keeping the
// declared keys.
func (rim *RollingIndexMap) Reset() error {
	items := make(map[string]*RollingIndex)
	for _, key := range rim.keys {
		items[key] = NewRollingIndex(fmt.Sprintf("%s[%s]", rim.name, key), rim.size)
	}
	rim.mapping = items
	return nil
}

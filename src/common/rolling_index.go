package common

import "strconv"

// RollingIndex is a bounded, append-mostly sequence of items addressed by a
// monotonically increasing index. It retains at most 2*size items; when that
// limit is reached, the oldest size items are dropped. Insertions must be
// gap-free: setting an index more than one above the last index is an error.
// RollingIndex is not safe for concurrent use.
type RollingIndex struct {
	name      string
	size      int
	lastIndex int
	items     []interface{}
}

// NewRollingIndex creates a RollingIndex. The name is used in error messages
// to identify which index produced an error.
func NewRollingIndex(name string, size int) *RollingIndex {
	return &RollingIndex{
		name:      name,
		size:      size,
		items:     make([]interface{}, 0, 2*size),
		lastIndex: -1,
	}
}

// GetLastWindow returns the currently retained items, oldest first, along
// with the index of the last item. The index of the first returned item is
// lastIndex - len(items) + 1.
func (r *RollingIndex) GetLastWindow() (lastWindow []interface{}, lastIndex int) {
	return r.items, r.lastIndex
}

// Get returns all items with index strictly greater than skipIndex, oldest
// first. It returns a TooLate error when items in that range were already
// evicted, and an empty slice when skipIndex is beyond the last index.
func (r *RollingIndex) Get(skipIndex int) ([]interface{}, error) {
	res := make([]interface{}, 0)

	if skipIndex > r.lastIndex {
		return res, nil
	}

	cachedItems := len(r.items)
	//assume there are no gaps between indexes
	oldestCachedIndex := r.lastIndex - cachedItems + 1
	if skipIndex+1 < oldestCachedIndex {
		return res, NewStoreErr(r.name, TooLate, strconv.Itoa(skipIndex))
	}

	//index of 'skipped' in RollingIndex
	start := skipIndex - oldestCachedIndex + 1

	return r.items[start:], nil
}

// GetItem returns the item at a given index. It returns a TooLate error when
// the item was evicted and a KeyNotFound error when the index was never set.
func (r *RollingIndex) GetItem(index int) (interface{}, error) {
	items := len(r.items)
	oldestCached := r.lastIndex - items + 1
	if index < oldestCached {
		return nil, NewStoreErr(r.name, TooLate, strconv.Itoa(index))
	}
	findex := index - oldestCached
	if findex >= items {
		return nil, NewStoreErr(r.name, KeyNotFound, strconv.Itoa(index))
	}
	return r.items[findex], nil
}

// Set inserts an item at the given index, or updates it in place if the index
// is already within the retained window. Appending an index more than one
// above the last index returns a SkippedIndex error; updating an index below
// the window returns a TooLate error.
func (r *RollingIndex) Set(item interface{}, index int) error {
	//only allow setting items with index <= lastIndex + 1 so we may assume
	//there are no gaps between items
	if 0 <= r.lastIndex && index > r.lastIndex+1 {
		return NewStoreErr(r.name, SkippedIndex, strconv.Itoa(index))
	}

	//adding a new item
	if r.lastIndex < 0 || (index == r.lastIndex+1) {
		if len(r.items) >= 2*r.size {
			r.Roll()
		}
		r.items = append(r.items, item)
		r.lastIndex = index
		return nil
	}

	//replace an existing item. Make sure index is also greater or equal than
	//the oldest cached item's index
	cachedItems := len(r.items)
	oldestCachedIndex := r.lastIndex - cachedItems + 1

	if index < oldestCachedIndex {
		return NewStoreErr(r.name, TooLate, strconv.Itoa(index))
	}

	//replacing existing item
	position := index - oldestCachedIndex //position of 'index' in RollingIndex
	r.items[position] = item

	return nil
}

// Roll drops the oldest half of the retained items.
func (r *RollingIndex) Roll() {
	newList := make([]interface{}, 0, 2*r.size)
	newList = append(newList, r.items[r.size:]...)
	r.items = newList
}

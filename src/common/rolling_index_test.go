package common

import (
	"fmt"
	"reflect"
	"testing"
)

func TestRollingIndex(t *testing.T) {
	size := 10
	testSize := 3 * size
	rollingIndex := NewRollingIndex("test", size)
	items := []string{}
	for i := 0; i < testSize; i++ {
		item := fmt.Sprintf("item%d", i)
		rollingIndex.Set(item, i)
		items = append(items, item)
	}
	cached, lastIndex := rollingIndex.GetLastWindow()

	expectedLastIndex := testSize - 1
	if lastIndex != expectedLastIndex {
		t.Fatalf("lastIndex should be %d, not %d", expectedLastIndex, lastIndex)
	}

	start := (testSize / (2 * size)) * (size)
	count := testSize - start

	for i := 0; i < count; i++ {
		if cached[i] != items[start+i] {
			t.Fatalf("cached[%d] should be %s, not %s", i, items[start+i], cached[i])
		}
	}

	err := rollingIndex.Set("ErrSkippedIndex", expectedLastIndex+2)
	if err == nil || !Is(err, SkippedIndex) {
		t.Fatalf("Should return ErrSkippedIndex")
	}

	_, err = rollingIndex.GetItem(9)
	if err == nil || !Is(err, TooLate) {
		t.Fatalf("Should return ErrTooLate")
	}

	var item interface{}

	indexes := []int{10, 17, 29}
	for _, i := range indexes {
		item, err = rollingIndex.GetItem(i)
		if err != nil {
			t.Fatalf("GetItem(%d) err: %v", i, err)
		}
		if !reflect.DeepEqual(item, items[i]) {
			t.Fatalf("GetItem error")
		}
	}

	_, err = rollingIndex.GetItem(lastIndex + 1)
	if err == nil || !Is(err, KeyNotFound) {
		t.Fatalf("Should return KeyNotFound")
	}

	//Test updating an item in place
	updateIndex := 26
	updateValue := "Updated Item"

	err = rollingIndex.Set(updateValue, updateIndex)
	if err != nil {
		t.Fatalf("Set(%d) err: %v", updateIndex, err)
	}
	item, err = rollingIndex.GetItem(updateIndex)
	if err != nil {
		t.Fatalf("GetItem(%d) err: %v", updateIndex, err)
	}
	if uv := item.(string); uv != updateValue {
		t.Fatalf("Updated item %d should be %s, not %s", updateIndex, updateValue, uv)
	}
}

func TestRollingIndexSkip(t *testing.T) {
	size := 10
	testSize := 25
	rollingIndex := NewRollingIndex("test", size)

	_, err := rollingIndex.Get(-1)
	if err != nil {
		t.Fatal(err)
	}

	items := []string{}
	for i := 0; i < testSize; i++ {
		item := fmt.Sprintf("item%d", i)
		rollingIndex.Set(item, i)
		items = append(items, item)
	}

	if _, err := rollingIndex.Get(0); err != nil && !Is(err, TooLate) {
		t.Fatalf("Skipping index 0 should return ErrTooLate")
	}

	skipIndex1 := 9
	expected1 := items[skipIndex1+1:]
	cached1, err := rollingIndex.Get(skipIndex1)
	if err != nil {
		t.Fatal(err)
	}
	convertedItems := []string{}
	for _, item := range cached1 {
		convertedItems = append(convertedItems, item.(string))
	}
	if !reflect.DeepEqual(expected1, convertedItems) {
		t.Fatalf("expected and cached not equal")
	}

	skipIndex2 := 15
	expected2 := items[skipIndex2+1:]
	cached2, err := rollingIndex.Get(skipIndex2)
	if err != nil {
		t.Fatal(err)
	}
	convertedItems = []string{}
	for _, item := range cached2 {
		convertedItems = append(convertedItems, item.(string))
	}
	if !reflect.DeepEqual(expected2, convertedItems) {
		t.Fatalf("expected and cached not equal")
	}

	skipIndex3 := 27
	expected3 := []string{}
	cached3, err := rollingIndex.Get(skipIndex3)
	if err != nil {
		t.Fatal(err)
	}
	convertedItems = []string{}
	for _, item := range cached3 {
		convertedItems = append(convertedItems, item.(string))
	}
	if !reflect.DeepEqual(expected3, convertedItems) {
		t.Fatalf("expected and cached not equal")
	}
}

func TestRollingIndexMap(t *testing.T) {
	size := 10
	keys := []string{"a", "b"}
	rim := NewRollingIndexMap("test", size, keys)

	if err := rim.AddKey("a"); err == nil || !Is(err, KeyAlreadyExists) {
		t.Fatalf("Adding an existing key should return ErrKeyAlreadyExists")
	}

	if err := rim.Set("x", "item", 0); err == nil || !Is(err, KeyNotFound) {
		t.Fatalf("Setting an undeclared key should return ErrKeyNotFound")
	}

	if _, err := rim.GetLast("a"); err == nil || !Is(err, Empty) {
		t.Fatalf("GetLast on an empty index should return ErrEmpty")
	}

	for i := 0; i < 5; i++ {
		for _, k := range keys {
			if err := rim.Set(k, fmt.Sprintf("%s%d", k, i), i); err != nil {
				t.Fatal(err)
			}
		}
	}

	last, err := rim.GetLast("a")
	if err != nil {
		t.Fatal(err)
	}
	if last != "a4" {
		t.Fatalf("GetLast should be a4, not %v", last)
	}

	expectedKnown := map[string]int{"a": 4, "b": 4}
	if known := rim.Known(); !reflect.DeepEqual(expectedKnown, known) {
		t.Fatalf("Known should be %#v, not %#v", expectedKnown, known)
	}

	if err := rim.Reset(); err != nil {
		t.Fatal(err)
	}

	expectedKnown = map[string]int{"a": -1, "b": -1}
	if known := rim.Known(); !reflect.DeepEqual(expectedKnown, known) {
		t.Fatalf("Known after Reset should be %#v, not %#v", expectedKnown, known)
	}
}

package hashgraph

import (
	"fmt"
	"reflect"
	"testing"

	cm "github.com/braidnetworks/braid/src/common"
)

func testParticipants() map[string]int {
	return map[string]int{
		"0XAA": 1,
		"0XBB": 2,
		"0XCC": 3,
	}
}

func TestParticipantEventsCache(t *testing.T) {
	size := 10
	testSize := 25
	participants := testParticipants()

	pec := NewParticipantEventsCache(size, participants)

	items := make(map[string][]string)
	for pk := range participants {
		items[pk] = []string{}
	}

	for i := 0; i < testSize; i++ {
		for pk := range participants {
			item := fmt.Sprintf("%s%d", pk, i)

			if err := pec.Set(pk, item, i); err != nil {
				t.Fatal(err)
			}

			pitems := items[pk]
			pitems = append(pitems, item)
			items[pk] = pitems
		}
	}

	// GET ITEM ++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++
	for pk := range participants {

		index1 := 9
		_, err := pec.GetItem(pk, index1)
		if err == nil || !cm.Is(err, cm.TooLate) {
			t.Fatalf("Expected ErrTooLate")
		}

		index2 := 15
		expected2 := items[pk][index2]
		actual2, err := pec.GetItem(pk, index2)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(expected2, actual2) {
			t.Fatalf("expected and cached not equal")
		}

		index3 := 27
		expected3 := []string{}
		actual3, err := pec.Get(pk, index3)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(expected3, actual3) {
			t.Fatalf("expected and cached not equal")
		}
	}

	//KNOWN ++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++
	known := pec.Known()
	for p, k := range known {
		expectedLastIndex := testSize - 1
		if k != expectedLastIndex {
			t.Errorf("Known[%s] should be %d, not %d", p, expectedLastIndex, k)
		}
	}

	//GET ++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++
	for pk := range participants {
		if _, err := pec.Get(pk, 0); err != nil && !cm.Is(err, cm.TooLate) {
			t.Fatalf("Skipping 0 elements should return ErrTooLate")
		}

		skipIndex := 9
		expected := items[pk][skipIndex+1:]
		cached, err := pec.Get(pk, skipIndex)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(expected, cached) {
			t.Fatalf("expected and cached not equal")
		}

		skipIndex2 := 15
		expected2 := items[pk][skipIndex2+1:]
		cached2, err := pec.Get(pk, skipIndex2)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(expected2, cached2) {
			t.Fatalf("expected and cached not equal")
		}

		skipIndex3 := 27
		expected3 := []string{}
		cached3, err := pec.Get(pk, skipIndex3)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(expected3, cached3) {
			t.Fatalf("expected and cached not equal")
		}
	}
}

func TestParticipantEventsCacheEdge(t *testing.T) {
	size := 10
	testSize := 11
	participants := testParticipants()

	pec := NewParticipantEventsCache(size, participants)

	items := make(map[string][]string)
	for pk := range participants {
		items[pk] = []string{}
	}

	for i := 0; i < testSize; i++ {
		for pk := range participants {
			item := fmt.Sprintf("%s%d", pk, i)

			if err := pec.Set(pk, item, i); err != nil {
				t.Fatal(err)
			}

			pitems := items[pk]
			pitems = append(pitems, item)
			items[pk] = pitems
		}
	}

	for pk := range participants {
		expected := items[pk][size:]
		cached, err := pec.Get(pk, size-1)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(expected, cached) {
			t.Fatalf("expected and cached not equal")
		}
	}
}

func TestParticipantEventsCacheErrors(t *testing.T) {
	participants := testParticipants()
	pec := NewParticipantEventsCache(10, participants)

	//unknown participant
	if err := pec.Set("0XDD", "item", 0); err == nil || !cm.Is(err, cm.UnknownParticipant) {
		t.Fatalf("Set for an unknown participant should return ErrUnknownParticipant")
	}
	if _, err := pec.Get("0XDD", -1); err == nil || !cm.Is(err, cm.UnknownParticipant) {
		t.Fatalf("Get for an unknown participant should return ErrUnknownParticipant")
	}

	//gap-free insertion
	if err := pec.Set("0XAA", "item0", 0); err != nil {
		t.Fatal(err)
	}
	if err := pec.Set("0XAA", "item2", 2); err == nil || !cm.Is(err, cm.SkippedIndex) {
		t.Fatalf("Skipping an index should return ErrSkippedIndex")
	}

	//no resident events: GetLast returns "" without error
	last, err := pec.GetLast("0XBB")
	if err != nil {
		t.Fatal(err)
	}
	if last != "" {
		t.Fatalf("GetLast should be empty, not %s", last)
	}

	//Reset clears all indexes but keeps the participant set
	if err := pec.Reset(); err != nil {
		t.Fatal(err)
	}
	known := pec.Known()
	for pk := range participants {
		if k := known[pk]; k != -1 {
			t.Fatalf("Known[%s] after Reset should be -1, not %d", pk, k)
		}
	}
	if err := pec.Set("0XAA", "item0", 0); err != nil {
		t.Fatalf("Set after Reset should work: %v", err)
	}
}

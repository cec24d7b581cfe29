package hashgraph

import (
	cm "github.com/braidnetworks/braid/src/common"
)

// ParticipantEventsCache is a bounded, per-participant index mapping local
// sequence numbers to event hashes. Each participant gets its own
// RollingIndex, so only the most recent window of its history is retained;
// anything older is covered by the participant's Root. The participant set is
// fixed at construction: inserting for an unknown participant is an error,
// not an implicit registration.
type ParticipantEventsCache struct {
	size         int
	participants map[string]int //[public key] => id
	rim          *cm.RollingIndexMap
}

// NewParticipantEventsCache creates a ParticipantEventsCache with one
// RollingIndex of the given size per participant.
func NewParticipantEventsCache(size int, participants map[string]int) *ParticipantEventsCache {
	keys := make([]string, 0, len(participants))
	for pk := range participants {
		keys = append(keys, pk)
	}
	return &ParticipantEventsCache{
		size:         size,
		participants: participants,
		rim:          cm.NewRollingIndexMap("ParticipantEvents", size, keys),
	}
}

// Get returns a participant's event hashes with index strictly greater than
// skipIndex, oldest first.
func (pec *ParticipantEventsCache) Get(participant string, skipIndex int) ([]string, error) {
	if _, ok := pec.participants[participant]; !ok {
		return []string{}, cm.NewStoreErr("ParticipantEvents", cm.UnknownParticipant, participant)
	}

	pe, err := pec.rim.Get(participant, skipIndex)
	if err != nil {
		return []string{}, err
	}

	res := make([]string, len(pe))
	for k := 0; k < len(pe); k++ {
		res[k] = pe[k].(string)
	}
	return res, nil
}

// GetItem returns the hash of a participant's event at a given index.
func (pec *ParticipantEventsCache) GetItem(participant string, index int) (string, error) {
	item, err := pec.rim.GetItem(participant, index)
	if err != nil {
		return "", err
	}
	return item.(string), nil
}

// GetLast returns the hash of a participant's last resident event. It returns
// the empty string, without an error, when the participant has no resident
// events; the caller is then expected to fall back to the participant's Root.
func (pec *ParticipantEventsCache) GetLast(participant string) (string, error) {
	last, err := pec.rim.GetLast(participant)
	if err != nil {
		if cm.Is(err, cm.Empty) {
			return "", nil
		}
		return "", err
	}
	return last.(string), nil
}

// Set records that a participant's event at the given index has the given
// hash. Insertion is gap-free: the index must be at most one above the
// participant's last known index.
func (pec *ParticipantEventsCache) Set(participant string, hash string, index int) error {
	if _, ok := pec.participants[participant]; !ok {
		return cm.NewStoreErr("ParticipantEvents", cm.UnknownParticipant, participant)
	}
	return pec.rim.Set(participant, hash, index)
}

// Known returns a mapping of participant to last known event index, -1 when
// the participant has no resident events. It is used to compute sync deficits
// against other participants.
func (pec *ParticipantEventsCache) Known() map[string]int {
	return pec.rim.Known()
}

// Reset clears all participant indexes back to empty, keeping the
// participant set.
func (pec *ParticipantEventsCache) Reset() error {
	return pec.rim.Reset()
}

package hashgraph

// Store is the interface between the consensus algorithm and the event
// indexing layer. The consensus layer uses it to persist newly received
// events, to look up the ancestors and participant histories it needs for
// round and vote computations, and to record the finalized consensus order.
type Store interface {
	// CacheSize retrieves the size limit that was applied to all the bounded
	// caches. It does not correspond to the total number of items in the
	// store.
	CacheSize() int
	// Participants returns the fixed participant to ID mapping supplied at
	// construction.
	Participants() (map[string]int, error)
	// GetEvent returns an event by hash.
	GetEvent(hash string) (Event, error)
	// SetEvent inserts an event in the store. It is idempotent: re-adding a
	// known hash overwrites the cached value without re-indexing.
	SetEvent(event Event) error
	// ParticipantEvents returns a participant's sorted event hashes with
	// index strictly greater than skip.
	ParticipantEvents(participant string, skip int) ([]string, error)
	// ParticipantEvent returns the hash of a participant's event at a given
	// index.
	ParticipantEvent(participant string, index int) (string, error)
	// LastFrom returns the hash of a participant's last event, falling back
	// to the participant's Root when no event is resident. The isRoot flag
	// reports which of the two was returned.
	LastFrom(participant string) (last string, isRoot bool, err error)
	// Known returns the map of participant to last known event index.
	Known() map[string]int
	// ConsensusEvents returns the retained window of consensus event hashes,
	// oldest first.
	ConsensusEvents() []string
	// ConsensusEventsCount returns the running total of consensus events ever
	// added, not just the retained window.
	ConsensusEventsCount() int
	// AddConsensusEvent appends an event hash to the consensus order.
	AddConsensusEvent(hash string) error
	// GetRound retrieves a round by number.
	GetRound(r int) (RoundInfo, error)
	// SetRound stores a round, advancing LastRound if necessary.
	SetRound(r int, round RoundInfo) error
	// LastRound returns the maximum round number ever stored, or -1.
	LastRound() int
	// RoundWitnesses returns the hashes of a round's witnesses, or an empty
	// slice if the round is unknown.
	RoundWitnesses(r int) []string
	// RoundEvents returns the number of events in a round, or 0 if the round
	// is unknown.
	RoundEvents(r int) int
	// GetRoot returns a participant's Root.
	GetRoot(participant string) (Root, error)
	// Reset atomically replaces the Roots and clears all caches and indexes.
	Reset(roots map[string]Root) error
	// Close releases the store's resources, if any.
	Close() error
}

package hashgraph

import (
	"strconv"
	"sync"

	cm "github.com/braidnetworks/braid/src/common"
)

// InmemStore implements the Store interface with inmemory caches. When the
// caches are full, older items are evicted, so InmemStore is not suitable for
// deployments where joining nodes expect to sync from the beginning of a
// hashgraph; evicted history is only reachable through the Roots.
//
// The store is driven by a single consensus-processing routine but read
// concurrently by sync responders, so every operation is serialized behind a
// single mutex. A plain Mutex is used rather than a RWMutex because even
// read operations touch the LRU caches' recency lists. None of the underlying
// caches are safe for concurrent mutation on their own.
type InmemStore struct {
	mtx                    sync.Mutex
	cacheSize              int
	participants           map[string]int //[public key] => id
	eventCache             *cm.LRU        //hash => Event
	roundCache             *cm.LRU        //round number => RoundInfo
	consensusCache         *cm.RollingIndex
	totConsensusEvents     int
	participantEventsCache *ParticipantEventsCache //[public key] => event hashes
	roots                  map[string]Root         //[public key] => Root
	lastRound              int
}

// NewInmemStore creates an InmemStore where all caches are limited to
// cacheSize items. The participant set is fixed for the lifetime of the
// store; each participant starts with a base Root.
func NewInmemStore(participants map[string]int, cacheSize int) *InmemStore {
	roots := make(map[string]Root)
	for pk := range participants {
		roots[pk] = NewBaseRoot()
	}

	return &InmemStore{
		cacheSize:              cacheSize,
		participants:           participants,
		eventCache:             cm.NewLRU(cacheSize, nil),
		roundCache:             cm.NewLRU(cacheSize, nil),
		consensusCache:         cm.NewRollingIndex("ConsensusCache", cacheSize),
		participantEventsCache: NewParticipantEventsCache(cacheSize, participants),
		roots:                  roots,
		lastRound:              -1,
	}
}

// CacheSize implements the Store interface.
func (s *InmemStore) CacheSize() int {
	return s.cacheSize
}

// Participants implements the Store interface.
func (s *InmemStore) Participants() (map[string]int, error) {
	return s.participants, nil
}

// GetEvent implements the Store interface.
func (s *InmemStore) GetEvent(key string) (Event, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.getEvent(key)
}

func (s *InmemStore) getEvent(key string) (Event, error) {
	res, ok := s.eventCache.Get(key)
	if !ok {
		return Event{}, cm.NewStoreErr("EventCache", cm.KeyNotFound, key)
	}

	return res.(Event), nil
}

// SetEvent implements the Store interface. A new event is first registered in
// the participant index, and only inserted in the event cache if indexing
// succeeded; re-setting a known hash skips the index entirely so the
// participant's sequence is never double-counted.
func (s *InmemStore) SetEvent(event Event) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	key := event.Hex()
	_, err := s.getEvent(key)
	if err != nil && !cm.Is(err, cm.KeyNotFound) {
		return err
	}
	if cm.Is(err, cm.KeyNotFound) {
		if err := s.participantEventsCache.Set(event.Creator(), key, event.Index()); err != nil {
			return err
		}
	}
	s.eventCache.Add(key, event)

	return nil
}

// ParticipantEvents implements the Store interface.
func (s *InmemStore) ParticipantEvents(participant string, skip int) ([]string, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.participantEventsCache.Get(participant, skip)
}

// ParticipantEvent implements the Store interface.
func (s *InmemStore) ParticipantEvent(participant string, index int) (string, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.participantEventsCache.GetItem(participant, index)
}

// LastFrom implements the Store interface.
func (s *InmemStore) LastFrom(participant string) (last string, isRoot bool, err error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	//try to get the last event from this participant
	last, err = s.participantEventsCache.GetLast(participant)
	if err != nil {
		return "", false, err
	}

	//if there is none, grab the root
	if last == "" {
		root, ok := s.roots[participant]
		if !ok {
			return "", false, cm.NewStoreErr("RootCache", cm.NoRoot, participant)
		}
		last = root.X
		isRoot = true
	}

	return last, isRoot, nil
}

// Known implements the Store interface.
func (s *InmemStore) Known() map[string]int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.participantEventsCache.Known()
}

// ConsensusEvents implements the Store interface.
func (s *InmemStore) ConsensusEvents() []string {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	lastWindow, _ := s.consensusCache.GetLastWindow()
	res := make([]string, len(lastWindow))
	for i, item := range lastWindow {
		res[i] = item.(string)
	}
	return res
}

// ConsensusEventsCount implements the Store interface.
func (s *InmemStore) ConsensusEventsCount() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.totConsensusEvents
}

// AddConsensusEvent implements the Store interface.
func (s *InmemStore) AddConsensusEvent(key string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.consensusCache.Set(key, s.totConsensusEvents)
	s.totConsensusEvents++
	return nil
}

// GetRound implements the Store interface.
func (s *InmemStore) GetRound(r int) (RoundInfo, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.getRound(r)
}

func (s *InmemStore) getRound(r int) (RoundInfo, error) {
	res, ok := s.roundCache.Get(r)
	if !ok {
		return *NewRoundInfo(), cm.NewStoreErr("RoundCache", cm.KeyNotFound, strconv.Itoa(r))
	}
	return res.(RoundInfo), nil
}

// SetRound implements the Store interface.
func (s *InmemStore) SetRound(r int, round RoundInfo) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.roundCache.Add(r, round)
	if r > s.lastRound {
		s.lastRound = r
	}
	return nil
}

// LastRound implements the Store interface.
func (s *InmemStore) LastRound() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.lastRound
}

// RoundWitnesses implements the Store interface. An unknown round is a normal
// "not yet known" state for the consensus algorithm, so the lookup error is
// deliberately swallowed and an empty slice returned; this is in contrast
// with GetRound, which propagates the error.
func (s *InmemStore) RoundWitnesses(r int) []string {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	round, err := s.getRound(r)
	if err != nil {
		return []string{}
	}
	return round.Witnesses()
}

// RoundEvents implements the Store interface. Like RoundWitnesses, an unknown
// round yields the default value rather than an error.
func (s *InmemStore) RoundEvents(r int) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	round, err := s.getRound(r)
	if err != nil {
		return 0
	}
	return len(round.Events)
}

// GetRoot implements the Store interface.
func (s *InmemStore) GetRoot(participant string) (Root, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	res, ok := s.roots[participant]
	if !ok {
		return Root{}, cm.NewStoreErr("RootCache", cm.KeyNotFound, participant)
	}
	return res, nil
}

// Reset implements the Store interface. Entirely fresh caches are constructed
// and swapped in under the store's lock, rather than cleared in place, so a
// concurrent reader can never observe new Roots alongside stale caches.
func (s *InmemStore) Reset(roots map[string]Root) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	eventCache := cm.NewLRU(s.cacheSize, nil)
	roundCache := cm.NewLRU(s.cacheSize, nil)
	consensusCache := cm.NewRollingIndex("ConsensusCache", s.cacheSize)

	err := s.participantEventsCache.Reset()
	if err != nil {
		return err
	}

	s.roots = roots
	s.eventCache = eventCache
	s.roundCache = roundCache
	s.consensusCache = consensusCache
	s.totConsensusEvents = 0
	s.lastRound = -1

	return nil
}

// Close implements the Store interface. It is a no-op for the in-memory
// store.
func (s *InmemStore) Close() error {
	return nil
}

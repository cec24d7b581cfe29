package hashgraph

import (
	"bytes"
	"math/big"

	"github.com/braidnetworks/braid/src/common"
	"github.com/ugorji/go/codec"
)

// RoundEvent is an event's attributes within a round: whether it is a witness
// and, if so, the state of its fame election.
type RoundEvent struct {
	Witness bool
	Famous  common.Trilean
}

// RoundInfo holds the events assigned to a consensus round. It is created and
// populated by the consensus layer; the store only caches it.
type RoundInfo struct {
	Events map[string]RoundEvent
}

// NewRoundInfo instantiates an empty RoundInfo.
func NewRoundInfo() *RoundInfo {
	return &RoundInfo{
		Events: make(map[string]RoundEvent),
	}
}

// AddEvent assigns an event to the round. Re-adding a known event is a no-op
// so that an election result is never overwritten.
func (r *RoundInfo) AddEvent(x string, witness bool) {
	_, ok := r.Events[x]
	if !ok {
		r.Events[x] = RoundEvent{
			Witness: witness,
		}
	}
}

// SetFame records the result of a witness's fame election.
func (r *RoundInfo) SetFame(x string, f bool) {
	e, ok := r.Events[x]
	if !ok {
		e = RoundEvent{
			Witness: true,
		}
	}
	if f {
		e.Famous = common.True
	} else {
		e.Famous = common.False
	}
	r.Events[x] = e
}

// WitnessesDecided returns true if no witness's fame is left undefined.
func (r *RoundInfo) WitnessesDecided() bool {
	for _, e := range r.Events {
		if e.Witness && e.Famous == common.Undefined {
			return false
		}
	}
	return true
}

// Witnesses returns the round's witnesses.
func (r *RoundInfo) Witnesses() []string {
	res := []string{}
	for x, e := range r.Events {
		if e.Witness {
			res = append(res, x)
		}
	}
	return res
}

// FamousWitnesses returns the round's famous witnesses.
func (r *RoundInfo) FamousWitnesses() []string {
	res := []string{}
	for x, e := range r.Events {
		if e.Witness && e.Famous == common.True {
			res = append(res, x)
		}
	}
	return res
}

// IsDecided returns true if the witness's fame election is over.
func (r *RoundInfo) IsDecided(witness string) bool {
	w, ok := r.Events[witness]
	return ok && w.Witness && w.Famous != common.Undefined
}

// PseudoRandomNumber XORs the hashes of the round's famous witnesses. It is
// deterministic across participants because it only depends on decided
// elections.
func (r *RoundInfo) PseudoRandomNumber() *big.Int {
	res := new(big.Int)
	for x, e := range r.Events {
		if e.Witness && e.Famous == common.True {
			if len(x) < 3 {
				continue
			}
			s, ok := new(big.Int).SetString(x[2:], 16)
			if !ok {
				continue
			}
			res = res.Xor(res, s)
		}
	}
	return res
}

// Marshal returns the canonical JSON encoding of a RoundInfo. RoundInfo
// contains a go map, for which one should not expect a de facto order of
// entries, so the builtin JSON codec would not be deterministic. We use
// ugorji/codec with the Canonical option instead.
func (r *RoundInfo) Marshal() ([]byte, error) {
	b := new(bytes.Buffer)
	jh := new(codec.JsonHandle)
	jh.Canonical = true
	enc := codec.NewEncoder(b, jh)

	if err := enc.Encode(r); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// Unmarshal converts a canonical JSON encoded RoundInfo to a RoundInfo.
func (r *RoundInfo) Unmarshal(data []byte) error {
	b := bytes.NewBuffer(data)
	jh := new(codec.JsonHandle)
	jh.Canonical = true
	dec := codec.NewDecoder(b, jh)

	return dec.Decode(r)
}

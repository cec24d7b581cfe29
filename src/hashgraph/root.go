package hashgraph

import (
	"bytes"

	"github.com/ugorji/go/codec"
)

/*
Roots constitute the base of the hashgraph. Each participant is assigned a
Root on top of which its Events are inserted. A Root is the checkpoint that
remains when older history has been evicted or compacted: when a participant
has no resident events, the Root's X hash is the answer to "what was this
participant's last event".

The X and Y fields are the self-parent and other-parent hashes that the
participant's first retained Event refers to; Index is the sequence number of
X and Round the consensus round it belonged to. A base Root precedes any
event, so its Index and Round are -1 and its hashes are empty.
*/

// Root is a participant's checkpoint record.
type Root struct {
	X, Y  string //hashes of the SelfParent and OtherParent below the Root
	Index int    //index of X
	Round int    //round of X
}

// NewBaseRoot initializes a Root object for a fresh hashgraph.
func NewBaseRoot() Root {
	return Root{
		X:     "",
		Y:     "",
		Index: -1,
		Round: -1,
	}
}

// Marshal returns the canonical JSON encoding of a Root. The encoding of a
// Root must be deterministic because it can be hashed and exchanged between
// participants; we use ugorji/codec with the Canonical option rather than the
// builtin JSON codec, in keeping with the other hashed structures.
func (root *Root) Marshal() ([]byte, error) {
	b := new(bytes.Buffer)
	jh := new(codec.JsonHandle)
	jh.Canonical = true
	enc := codec.NewEncoder(b, jh)

	if err := enc.Encode(root); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// Unmarshal converts a canonical JSON encoded Root to a Root.
func (root *Root) Unmarshal(data []byte) error {
	b := bytes.NewBuffer(data)
	jh := new(codec.JsonHandle)
	jh.Canonical = true
	dec := codec.NewDecoder(b, jh)

	return dec.Decode(root)
}

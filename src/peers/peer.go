package peers

import (
	"encoding/hex"

	"github.com/braidnetworks/braid/src/common"
)

// Peer is a participant in the network, identified by its public key. The ID
// is a compact numeric representation of the public key, derived with the
// 32-bit FNV-1a hash.
type Peer struct {
	ID        int `json:"-"`
	NetAddr   string
	PubKeyHex string
}

// NewPeer creates a Peer and computes its ID from the public key.
func NewPeer(pubKeyHex, netAddr string) *Peer {
	peer := &Peer{
		PubKeyHex: pubKeyHex,
		NetAddr:   netAddr,
	}

	peer.computeID()

	return peer
}

// PubKeyBytes returns the raw public key bytes underlying PubKeyHex.
func (p *Peer) PubKeyBytes() ([]byte, error) {
	return hex.DecodeString(p.PubKeyHex[2:])
}

func (p *Peer) computeID() error {
	pubKey, err := p.PubKeyBytes()

	if err != nil {
		return err
	}

	p.ID = int(common.Hash32(pubKey))

	return nil
}

// ExcludePeer is used to exclude a single peer from a list of peers.
func ExcludePeer(peers []*Peer, peer string) (int, []*Peer) {
	index := -1
	otherPeers := make([]*Peer, 0, len(peers))
	for i, p := range peers {
		if p.NetAddr != peer {
			otherPeers = append(otherPeers, p)
		} else {
			index = i
		}
	}
	return index, otherPeers
}

package peers

import (
	"sort"
	"sync"
)

// PubKeyPeers maps public keys to Peers.
type PubKeyPeers map[string]*Peer

// IDPeers maps numeric IDs to Peers.
type IDPeers map[int]*Peer

// Peers is the set of participants known at construction time. It is indexed
// both by public key and by numeric ID.
type Peers struct {
	sync.RWMutex
	Sorted   []*Peer
	ByPubKey PubKeyPeers
	ByID     IDPeers
}

/* Constructors */

// NewPeers creates an empty Peers set.
func NewPeers() *Peers {
	return &Peers{
		ByPubKey: make(PubKeyPeers),
		ByID:     make(IDPeers),
	}
}

// NewPeersFromSlice creates a Peers set from a slice of Peers.
func NewPeersFromSlice(source []*Peer) *Peers {
	peers := NewPeers()

	for _, peer := range source {
		peers.addPeerRaw(peer)
	}

	peers.internalSort()

	return peers
}

/* Add Methods */

// addPeerRaw adds a peer without sorting the set. Useful for adding a bunch
// of peers at the same time. This method is private and is not protected by
// mutex. Handle with care.
func (p *Peers) addPeerRaw(peer *Peer) {
	if peer.ID == 0 {
		peer.computeID()
	}

	p.ByPubKey[peer.PubKeyHex] = peer
	p.ByID[peer.ID] = peer
}

// AddPeer adds a peer and re-sorts the set.
func (p *Peers) AddPeer(peer *Peer) {
	p.Lock()
	defer p.Unlock()

	p.addPeerRaw(peer)

	p.internalSort()
}

func (p *Peers) internalSort() {
	res := []*Peer{}

	for _, p := range p.ByPubKey {
		res = append(res, p)
	}

	sort.Sort(ByID(res))

	p.Sorted = res
}

/* ToSlice Methods */

// ToPeerSlice returns the sorted peers.
func (p *Peers) ToPeerSlice() []*Peer {
	return p.Sorted
}

// ToPubKeySlice returns the public keys of the sorted peers.
func (p *Peers) ToPubKeySlice() []string {
	p.RLock()
	defer p.RUnlock()

	res := []string{}

	for _, peer := range p.Sorted {
		res = append(res, peer.PubKeyHex)
	}

	return res
}

// IDMap returns the fixed participant to ID mapping that the store consumes.
func (p *Peers) IDMap() map[string]int {
	p.RLock()
	defer p.RUnlock()

	res := make(map[string]int)

	for pubKey, peer := range p.ByPubKey {
		res[pubKey] = peer.ID
	}

	return res
}

// Len returns the number of peers.
func (p *Peers) Len() int {
	p.RLock()
	defer p.RUnlock()

	return len(p.ByPubKey)
}

// ByID implements sort.Interface for []*Peer based on the ID field.
type ByID []*Peer

func (a ByID) Len() int      { return len(a) }
func (a ByID) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a ByID) Less(i, j int) bool {
	return a[i].ID < a[j].ID
}

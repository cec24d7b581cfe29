package peers

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

const (
	jsonPeerPath = "peers.json"
)

// JSONPeers provides peer persistence on disk in the form of a JSON file.
type JSONPeers struct {
	l    sync.Mutex
	path string
}

// NewJSONPeers creates a new JSONPeers store with reference to a base
// directory where the JSON file resides.
func NewJSONPeers(base string) *JSONPeers {
	path := filepath.Join(base, jsonPeerPath)
	store := &JSONPeers{
		path: path,
	}
	return store
}

// Peers parses the underlying JSON file and returns the corresponding Peers
// set.
func (j *JSONPeers) Peers() (*Peers, error) {
	j.l.Lock()
	defer j.l.Unlock()

	// Read the file
	buf, err := ioutil.ReadFile(j.path)
	if err != nil {
		return nil, errors.Wrap(err, "reading peers file")
	}

	// Check for no peers
	if len(buf) == 0 {
		return nil, errors.New("no peers found")
	}

	// Decode the peers
	var peerSlice []*Peer
	dec := json.NewDecoder(bytes.NewReader(buf))
	if err := dec.Decode(&peerSlice); err != nil {
		return nil, errors.Wrap(err, "decoding peers file")
	}

	cleansePeers(peerSlice)

	return NewPeersFromSlice(peerSlice), nil
}

// cleansePeers standardises the public key strings to match the format braid
// derives from a private key.
func cleansePeers(peers []*Peer) {
	for _, peer := range peers {
		peer.PubKeyHex = "0X" + strings.TrimPrefix(strings.ToUpper(peer.PubKeyHex), "0X")
	}
}

// SetPeers persists a Peers set to the JSON file.
func (j *JSONPeers) SetPeers(peers []*Peer) error {
	j.l.Lock()
	defer j.l.Unlock()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(peers); err != nil {
		return err
	}

	// Write out as JSON
	return ioutil.WriteFile(j.path, buf.Bytes(), 0755)
}

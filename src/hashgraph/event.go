package hashgraph

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"time"

	"github.com/braidnetworks/braid/src/crypto"
	"github.com/braidnetworks/braid/src/crypto/keys"
)

/*******************************************************************************
EventBody
*******************************************************************************/

// EventBody contains the payload of an Event as well as the information that
// ties it to other Events.
type EventBody struct {
	Transactions [][]byte  //the payload
	Parents      []string  //hashes of the event's parents, self-parent first
	Creator      []byte    //creator's public key
	Timestamp    time.Time //creator's claimed timestamp of the event's creation
	Index        int       //index in the sequence of events created by Creator
}

// Marshal returns the JSON encoding of an EventBody. EventBody contains no
// maps, so the encoding is deterministic and suitable for hashing.
func (e *EventBody) Marshal() ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b) //will write to b
	if err := enc.Encode(e); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Unmarshal converts a JSON encoded EventBody to an EventBody.
func (e *EventBody) Unmarshal(data []byte) error {
	b := bytes.NewBuffer(data)
	dec := json.NewDecoder(b) //will read from b
	return dec.Decode(e)
}

// Hash returns the SHA256 hash of the JSON encoded EventBody.
func (e *EventBody) Hash() ([]byte, error) {
	hashBytes, err := e.Marshal()
	if err != nil {
		return nil, err
	}
	return crypto.SHA256(hashBytes), nil
}

/*******************************************************************************
Event
*******************************************************************************/

// Event is the fundamental unit of the hashgraph. It contains an EventBody
// and a signature of the EventBody by the Event's creator (whose public key
// is set in the EventBody.Creator byte slice). Events are immutable once
// stored; the private fields only cache local computations.
type Event struct {
	Body      EventBody
	Signature string //creator's digital signature of body

	creator string
	hash    []byte
	hex     string
}

// NewEvent instantiates a new Event.
func NewEvent(transactions [][]byte,
	parents []string,
	creator []byte,
	index int) Event {

	body := EventBody{
		Transactions: transactions,
		Parents:      parents,
		Creator:      creator,
		Timestamp:    time.Now().UTC(), //strip monotonic time
		Index:        index,
	}

	return Event{
		Body: body,
	}
}

// Creator returns the hex string representation of the creator's public key.
func (e *Event) Creator() string {
	if e.creator == "" {
		e.creator = fmt.Sprintf("0X%X", e.Body.Creator)
	}
	return e.creator
}

// SelfParent returns the hash of the Event's self-parent.
func (e *Event) SelfParent() string {
	return e.Body.Parents[0]
}

// OtherParent returns the hash of the Event's other-parent.
func (e *Event) OtherParent() string {
	return e.Body.Parents[1]
}

// Transactions returns the Event's payload.
func (e *Event) Transactions() [][]byte {
	return e.Body.Transactions
}

// Index returns the Event's index in the sequence of events created by its
// creator.
func (e *Event) Index() int {
	return e.Body.Index
}

// IsLoaded returns true if the Event contains a payload or is the initial
// Event of its creator.
func (e *Event) IsLoaded() bool {
	if e.Body.Index == 0 {
		return true
	}

	return len(e.Body.Transactions) > 0
}

// Sign signs the hash of the Event's body with an ecdsa key and stores the
// signature in the Event.
func (e *Event) Sign(privKey *ecdsa.PrivateKey) error {
	signBytes, err := e.Body.Hash()
	if err != nil {
		return err
	}
	r, s, err := keys.Sign(privKey, signBytes)
	if err != nil {
		return err
	}
	e.Signature = keys.EncodeSignature(r, s)
	return err
}

// Verify verifies the Event's signature against its creator's public key.
func (e *Event) Verify() (bool, error) {
	pubBytes := e.Body.Creator
	pubKey := keys.ToPublicKey(pubBytes)

	signBytes, err := e.Body.Hash()
	if err != nil {
		return false, err
	}

	r, s, err := keys.DecodeSignature(e.Signature)
	if err != nil {
		return false, err
	}

	return keys.Verify(pubKey, signBytes, r, s), nil
}

// Marshal returns the JSON encoding of the body and signature.
func (e *Event) Marshal() ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	if err := enc.Encode(e); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Unmarshal converts a JSON encoded Event to an Event.
func (e *Event) Unmarshal(data []byte) error {
	b := bytes.NewBuffer(data)
	dec := json.NewDecoder(b) //will read from b
	return dec.Decode(e)
}

// Hash returns the SHA256 hash of the Event's body. It is the Event's
// content-addressed identity, computed once and cached.
func (e *Event) Hash() ([]byte, error) {
	if len(e.hash) == 0 {
		hashBytes, err := e.Body.Hash()
		if err != nil {
			return nil, err
		}
		e.hash = hashBytes
	}
	return e.hash, nil
}

// Hex returns the hex string representation of the Event's hash.
func (e *Event) Hex() string {
	if e.hex == "" {
		hash, _ := e.Hash()
		e.hex = fmt.Sprintf("0X%X", hash)
	}
	return e.hex
}

/*******************************************************************************
Sorting
*******************************************************************************/

// ByTimestamp implements sort.Interface for []Event based on the timestamp
// field.
type ByTimestamp []Event

func (a ByTimestamp) Len() int      { return len(a) }
func (a ByTimestamp) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a ByTimestamp) Less(i, j int) bool {
	//normally, time.Sub uses monotonic time which only makes sense if it is
	//being called in the same process that made the time object.
	//that is why we strip out the monotonic time reading from the Timestamp at
	//the time of creating the Event
	return a[i].Body.Timestamp.Before(a[j].Body.Timestamp)
}

package crypto

import (
	"github.com/braidnetworks/braid/src/crypto/keys"
)

// Service abstracts the signature scheme behind byte-in/byte-out operations,
// so that the store and the layers above it never depend on a concrete
// cryptographic backend. Keys, digests and signatures are opaque byte slices
// in the format produced by the same Service.
type Service interface {
	// Hash returns a fixed-size, deterministic digest of data.
	Hash(data []byte) []byte
	// GenerateKeys creates a new key-pair, in exported form.
	GenerateKeys() (priv []byte, pub []byte, err error)
	// Sign signs a digest with an exported private key.
	Sign(priv []byte, digest []byte) ([]byte, error)
	// Verify checks a signature over a digest against an exported public key.
	Verify(pub []byte, digest []byte, sig []byte) bool
}

// Secp256k1Service implements Service with SHA256 digests and ECDSA
// signatures on the secp256k1 curve. It is the default backend.
type Secp256k1Service struct{}

// NewSecp256k1Service ...
func NewSecp256k1Service() *Secp256k1Service {
	return &Secp256k1Service{}
}

// Hash implements the Service interface with SHA256.
func (s *Secp256k1Service) Hash(data []byte) []byte {
	return SHA256(data)
}

// GenerateKeys implements the Service interface. The private key is the raw
// dump of the ecdsa D value; the public key is the uncompressed curve point.
func (s *Secp256k1Service) GenerateKeys() ([]byte, []byte, error) {
	key, err := keys.GenerateECDSAKey()
	if err != nil {
		return nil, nil, err
	}
	return keys.DumpPrivateKey(key), keys.FromPublicKey(&key.PublicKey), nil
}

// Sign implements the Service interface.
func (s *Secp256k1Service) Sign(priv []byte, digest []byte) ([]byte, error) {
	key, err := keys.ParsePrivateKey(priv)
	if err != nil {
		return nil, err
	}
	r, sig, err := keys.Sign(key, digest)
	if err != nil {
		return nil, err
	}
	return []byte(keys.EncodeSignature(r, sig)), nil
}

// Verify implements the Service interface.
func (s *Secp256k1Service) Verify(pub []byte, digest []byte, sig []byte) bool {
	pubKey := keys.ToPublicKey(pub)
	if pubKey == nil {
		return false
	}
	r, sigS, err := keys.DecodeSignature(string(sig))
	if err != nil {
		return false
	}
	return keys.Verify(pubKey, digest, r, sigS)
}

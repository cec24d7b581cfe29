package keys

import (
	"crypto/ecdsa"
	"crypto/elliptic"

	"github.com/braidnetworks/braid/src/common"
)

// ToPublicKey is a wrapper around elliptic.Unmarshal which calls Curve() to
// determine which elliptic.Curve to use. The argument pub is expected to be
// the uncompressed form of a point on the curve, as returned by FromPublicKey.
func ToPublicKey(pub []byte) *ecdsa.PublicKey {
	if len(pub) == 0 {
		return nil
	}
	x, y := elliptic.Unmarshal(Curve(), pub)
	return &ecdsa.PublicKey{Curve: Curve(), X: x, Y: y}
}

// FromPublicKey is a wrapper around elliptic.Marshal which calls Curve() to
// determine which elliptic.Curve to use. It outputs the point in uncompressed
// form.
func FromPublicKey(pub *ecdsa.PublicKey) []byte {
	if pub == nil || pub.X == nil || pub.Y == nil {
		return nil
	}
	return elliptic.Marshal(Curve(), pub.X, pub.Y)
}

// PublicKeyID tries to give a unique uint32 representation of the public key.
// There is obviously a risk of collision here. The uint32 is used as a
// compact participant identifier instead of the uncompressed form of the
// public key (65 bytes for the secp256k1 curve).
func PublicKeyID(pubBytes []byte) uint32 {
	return common.Hash32(pubBytes)
}

// PublicKeyHex returns the hexadecimal representation of the uncompressed
// form of the public key.
func PublicKeyHex(pub *ecdsa.PublicKey) string {
	return common.EncodeToString(FromPublicKey(pub))
}

// Package keys implements the public key cryptography used throughout braid.
//
// A participant, also referred to as peer or validator, owns a cryptographic
// key-pair that it uses to sign and verify events. The private key is secret
// but the public key is used by other participants to verify events signed
// with the private key.
//
// Braid uses elliptic curve cryptography (ECDSA) with the secp256k1 curve. We
// chose the secp256k1 curve because it is also used by Bitcoin and Ethereum,
// which means that Bitcoin and Ethereum keys can be used to operate a
// participant.
package keys

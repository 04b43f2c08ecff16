// package crypto provides lowest-level crypto types and primitives used by
// the receipt tools.
package crypto

import (
	"crypto"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const (
	HashSize       = sha256.Size
	SignatureSize  = ed25519.SignatureSize
	PublicKeySize  = ed25519.PublicKeySize
	PrivateKeySize = ed25519.SeedSize
)

type (
	Hash       [HashSize]byte
	Signature  [SignatureSize]byte
	PublicKey  [PublicKeySize]byte
	PrivateKey [PrivateKeySize]byte
)

func HashBytes(b []byte) Hash {
	return sha256.Sum256(b)
}

func Verify(pub *PublicKey, msg []byte, sig *Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig[:])
}

// Ed25519Signer signs with a key held in memory.
type Ed25519Signer struct {
	secret ed25519.PrivateKey
}

func NewEd25519Signer(key *PrivateKey) *Ed25519Signer {
	return &Ed25519Signer{secret: ed25519.NewKeyFromSeed(key[:])}
}

func (s *Ed25519Signer) Sign(msg []byte) (Signature, error) {
	return sign(s.secret, msg)
}

func (s *Ed25519Signer) Public() (ret PublicKey) {
	copy(ret[:], s.secret.Public().(ed25519.PublicKey))
	return
}

func sign(priv crypto.Signer, msg []byte) (Signature, error) {
	var ret Signature
	if _, ok := priv.Public().(ed25519.PublicKey); !ok {
		return ret, fmt.Errorf("internal error, unexpected signer type %T: ", priv.Public())
	}
	s, err := priv.Sign(nil, msg, crypto.Hash(0))
	if err != nil {
		return ret, err
	}
	if len(s) != SignatureSize {
		return ret, fmt.Errorf("internal error, unexpected signature size %d: ", len(s))
	}
	copy(ret[:], s[:])
	return ret, nil
}

func decodeHex(s string, size int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, fmt.Errorf("unexpected length of hex data, expected %d, got %d", size, len(b))
	}
	return b, nil
}

func HashFromHex(s string) (h Hash, err error) {
	var b []byte
	b, err = decodeHex(s, HashSize)
	copy(h[:], b)
	return
}

// package seal implements the signature schemes used to seal receipt
// journals. A sealer is created from a passphrase-derived seed; a seal
// is verified using only the public key.
package seal

import (
	"errors"
	"fmt"

	"sigsum.org/receipt-go/pkg/crypto"
	"sigsum.org/receipt-go/pkg/passphrase"
)

// Namespace for domain separation of journal seals.
const JournalNamespace = "receipt-journal:v1@sigsum.org"

type Scheme uint8

const (
	Ed25519    Scheme = 1
	EdDSABN254 Scheme = 2
)

var (
	ErrBadSeal = errors.New("seal does not match journal and public key")
	// Keys of small order satisfy the verification equation for
	// any journal.
	ErrSmallOrderKey = errors.New("public key has small order")
)

func (s Scheme) String() string {
	switch s {
	case Ed25519:
		return "ed25519"
	case EdDSABN254:
		return "eddsa-bn254"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

func SchemeFromString(name string) (Scheme, error) {
	switch name {
	case "ed25519":
		return Ed25519, nil
	case "eddsa-bn254":
		return EdDSABN254, nil
	default:
		return 0, fmt.Errorf("unknown seal scheme %q, must be 'ed25519' or 'eddsa-bn254'", name)
	}
}

type Sealer interface {
	Scheme() Scheme
	// Public key, in the scheme's own encoding.
	Public() []byte
	Seal(journal []byte) ([]byte, error)
}

func NewSealer(scheme Scheme, seed *passphrase.Seed) (Sealer, error) {
	switch scheme {
	case Ed25519:
		return newEd25519Sealer(seed), nil
	case EdDSABN254:
		return newBN254Sealer(seed)
	default:
		return nil, fmt.Errorf("unsupported seal scheme %v", scheme)
	}
}

// Verify checks a seal over journal. Returns ErrBadSeal (possibly
// wrapped) if the seal is well-formed but invalid, and other errors
// for malformed keys or seals.
func Verify(scheme Scheme, pub, journal, sig []byte) error {
	switch scheme {
	case Ed25519:
		return verifyEd25519(pub, journal, sig)
	case EdDSABN254:
		return verifyBN254(pub, journal, sig)
	default:
		return fmt.Errorf("unsupported seal scheme %v", scheme)
	}
}

// Identity of the holder of a public key. The scheme is hashed
// together with the key, so equal key bytes under different schemes
// never give the same identity.
func Identity(scheme Scheme, pub []byte) crypto.Hash {
	b := make([]byte, 1+len(pub))
	b[0] = byte(scheme)
	copy(b[1:], pub)
	return crypto.HashBytes(b)
}

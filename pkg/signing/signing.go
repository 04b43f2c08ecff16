// package signing implements the signing service: from a passphrase
// and a message, it produces a receipt committing to the message hash
// and the passphrase-derived identity.
package signing

import (
	"errors"
	"fmt"

	"sigsum.org/receipt-go/pkg/crypto"
	"sigsum.org/receipt-go/pkg/log"
	"sigsum.org/receipt-go/pkg/passphrase"
	"sigsum.org/receipt-go/pkg/receipt"
	"sigsum.org/receipt-go/pkg/seal"
)

var ErrEmptyPassphrase = errors.New("empty passphrase")

// Service is the interface used by the command line tools.
type Service interface {
	Sign(passphrase, message string) (*receipt.Receipt, error)
}

// Signer implements Service using one of the seal schemes.
type Signer struct {
	scheme seal.Scheme
}

func New(scheme seal.Scheme) (*Signer, error) {
	switch scheme {
	case seal.Ed25519, seal.EdDSABN254:
		return &Signer{scheme: scheme}, nil
	default:
		return nil, fmt.Errorf("unsupported seal scheme %v", scheme)
	}
}

func (s *Signer) Sign(pass, message string) (*receipt.Receipt, error) {
	if len(pass) == 0 {
		return nil, ErrEmptyPassphrase
	}
	seed := passphrase.Derive(pass)
	sealer, err := seal.NewSealer(s.scheme, &seed)
	if err != nil {
		return nil, err
	}
	pub := sealer.Public()
	c := receipt.Commitment{
		Msg:      crypto.HashBytes([]byte(message)),
		Identity: seal.Identity(s.scheme, pub),
	}
	log.Debug("signing: scheme %v, identity %x", s.scheme, c.Identity)

	journal := c.Encode()
	sealBytes, err := sealer.Seal(journal)
	if err != nil {
		return nil, fmt.Errorf("sealing journal failed: %w", err)
	}
	return receipt.New(s.scheme, journal, pub, sealBytes), nil
}

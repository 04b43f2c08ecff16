// package receipt implements signing receipts: a journal committing to
// a message hash and a signer identity, sealed with the signer's key.
//
// A Receipt is immutable. Its journal is decoded on demand, so a
// receipt read from an untrusted source fails cleanly in Message,
// Identity and Verify rather than when it is constructed.
package receipt

import (
	"bytes"
	"errors"
	"fmt"

	"sigsum.org/receipt-go/pkg/crypto"
	"sigsum.org/receipt-go/pkg/seal"
)

const JournalSize = 2 * crypto.HashSize

var ErrNoJournal = errors.New("receipt has no journal")

// Commitment is the content of a receipt journal.
type Commitment struct {
	// SHA-256 of the signed message.
	Msg      crypto.Hash
	Identity crypto.Hash
}

func (c *Commitment) Encode() []byte {
	return bytes.Join([][]byte{c.Msg[:], c.Identity[:]}, nil)
}

func (c *Commitment) Decode(b []byte) error {
	if len(b) == 0 {
		return ErrNoJournal
	}
	if len(b) != JournalSize {
		return fmt.Errorf("invalid journal size %d, expected %d", len(b), JournalSize)
	}
	copy(c.Msg[:], b[:crypto.HashSize])
	copy(c.Identity[:], b[crypto.HashSize:])
	return nil
}

// VerificationError reports a receipt that failed Verify.
type VerificationError struct {
	Err error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("receipt verification failed: %v", e.Err)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

type Receipt struct {
	scheme    seal.Scheme
	journal   []byte
	publicKey []byte
	seal      []byte
}

// New creates a receipt from its parts. The slices are copied.
func New(scheme seal.Scheme, journal, publicKey, sealBytes []byte) *Receipt {
	return &Receipt{
		scheme:    scheme,
		journal:   bytes.Clone(journal),
		publicKey: bytes.Clone(publicKey),
		seal:      bytes.Clone(sealBytes),
	}
}

func (r *Receipt) Scheme() seal.Scheme {
	return r.scheme
}

func (r *Receipt) Journal() []byte {
	return bytes.Clone(r.journal)
}

func (r *Receipt) PublicKey() []byte {
	return bytes.Clone(r.publicKey)
}

func (r *Receipt) Seal() []byte {
	return bytes.Clone(r.seal)
}

// Message returns the commitment held in the journal.
func (r *Receipt) Message() (*Commitment, error) {
	var c Commitment
	if err := c.Decode(r.journal); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Receipt) Identity() (crypto.Hash, error) {
	c, err := r.Message()
	if err != nil {
		return crypto.Hash{}, err
	}
	return c.Identity, nil
}

// Verify checks that the journal identity belongs to the receipt's
// public key, and that the seal over the journal is valid. The
// passphrase is not needed. Any failure is a *VerificationError.
func (r *Receipt) Verify() error {
	c, err := r.Message()
	if err != nil {
		return &VerificationError{err}
	}
	if want := seal.Identity(r.scheme, r.publicKey); c.Identity != want {
		return &VerificationError{fmt.Errorf("identity %x does not match public key", c.Identity)}
	}
	if err := seal.Verify(r.scheme, r.publicKey, r.journal, r.seal); err != nil {
		return &VerificationError{err}
	}
	return nil
}

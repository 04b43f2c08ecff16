package seal

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards/eddsa"

	"sigsum.org/receipt-go/internal/ssh"
	"sigsum.org/receipt-go/pkg/crypto"
	"sigsum.org/receipt-go/pkg/passphrase"
)

// EdDSA over the twisted Edwards curve embedded in BN254, with MiMC as
// the hash. This is the signature scheme that is cheap to verify inside
// a BN254 arithmetic circuit.
const (
	bn254PublicKeySize = 32
	bn254SignatureSize = 64
)

type bn254Sealer struct {
	key *eddsa.PrivateKey
}

func newBN254Sealer(seed *passphrase.Seed) (*bn254Sealer, error) {
	// GenerateKey consumes exactly one 32-byte seed from the reader.
	key, err := eddsa.GenerateKey(bytes.NewReader(seed[:]))
	if err != nil {
		return nil, fmt.Errorf("eddsa-bn254 key generation failed: %w", err)
	}
	return &bn254Sealer{key: key}, nil
}

func (s *bn254Sealer) Scheme() Scheme {
	return EdDSABN254
}

func (s *bn254Sealer) Public() []byte {
	return s.key.PublicKey.Bytes()
}

func (s *bn254Sealer) Seal(journal []byte) ([]byte, error) {
	msg := bn254Message(journal)
	sig, err := s.key.Sign(msg[:], mimc.NewMiMC())
	if err != nil {
		return nil, fmt.Errorf("eddsa-bn254 signing failed: %w", err)
	}
	return sig, nil
}

// MiMC absorbs field elements, so the namespaced journal hash is
// reduced into the scalar field first.
func bn254Message(journal []byte) [fr.Bytes]byte {
	h := crypto.HashBytes(ssh.SignedData(JournalNamespace, journal))
	var e fr.Element
	e.SetBytes(h[:])
	return e.Bytes()
}

func verifyBN254(pubBytes, journal, sig []byte) error {
	if len(pubBytes) != bn254PublicKeySize {
		return fmt.Errorf("invalid eddsa-bn254 public key size %d", len(pubBytes))
	}
	if len(sig) != bn254SignatureSize {
		return fmt.Errorf("invalid eddsa-bn254 seal size %d", len(sig))
	}
	var pub eddsa.PublicKey
	if _, err := pub.SetBytes(pubBytes); err != nil {
		return fmt.Errorf("invalid eddsa-bn254 public key: %w", err)
	}
	if bn254SmallOrder(&pub.A) {
		return ErrSmallOrderKey
	}
	msg := bn254Message(journal)
	ok, err := pub.Verify(sig, msg[:], mimc.NewMiMC())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadSeal, err)
	}
	if !ok {
		return ErrBadSeal
	}
	return nil
}

func bn254SmallOrder(p *twistededwards.PointAffine) bool {
	curve := twistededwards.GetEdwardsCurve()
	var cofactor big.Int
	curve.Cofactor.BigInt(&cofactor)
	var q twistededwards.PointAffine
	q.ScalarMultiplication(p, &cofactor)
	return q.IsZero()
}

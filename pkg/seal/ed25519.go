package seal

import (
	"fmt"

	"filippo.io/edwards25519"

	"sigsum.org/receipt-go/internal/ssh"
	"sigsum.org/receipt-go/pkg/crypto"
	"sigsum.org/receipt-go/pkg/passphrase"
)

type ed25519Sealer struct {
	signer *crypto.Ed25519Signer
}

func newEd25519Sealer(seed *passphrase.Seed) *ed25519Sealer {
	key := crypto.PrivateKey(*seed)
	return &ed25519Sealer{signer: crypto.NewEd25519Signer(&key)}
}

func (s *ed25519Sealer) Scheme() Scheme {
	return Ed25519
}

func (s *ed25519Sealer) Public() []byte {
	pub := s.signer.Public()
	return pub[:]
}

func (s *ed25519Sealer) Seal(journal []byte) ([]byte, error) {
	sig, err := s.signer.Sign(ssh.SignedData(JournalNamespace, journal))
	if err != nil {
		return nil, err
	}
	return sig[:], nil
}

func verifyEd25519(pubBytes, journal, sigBytes []byte) error {
	if len(pubBytes) != crypto.PublicKeySize {
		return fmt.Errorf("invalid ed25519 public key size %d", len(pubBytes))
	}
	if len(sigBytes) != crypto.SignatureSize {
		return fmt.Errorf("invalid ed25519 seal size %d", len(sigBytes))
	}
	point, err := new(edwards25519.Point).SetBytes(pubBytes)
	if err != nil {
		return fmt.Errorf("invalid ed25519 public key: %w", err)
	}
	if new(edwards25519.Point).MultByCofactor(point).Equal(edwards25519.NewIdentityPoint()) == 1 {
		return ErrSmallOrderKey
	}
	var pub crypto.PublicKey
	var sig crypto.Signature
	copy(pub[:], pubBytes)
	copy(sig[:], sigBytes)
	if !crypto.Verify(&pub, ssh.SignedData(JournalNamespace, journal), &sig) {
		return ErrBadSeal
	}
	return nil
}

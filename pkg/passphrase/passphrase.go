// package passphrase derives key seeds from user passphrases.
//
// The passphrase is first normalized (Unicode NFKC), so that visually
// identical passphrases entered with different input methods derive
// the same key. The seed is then produced with argon2id, using a fixed
// salt; the signer identity must be reproducible from the passphrase
// alone, so there is no per-key random salt to store.
package passphrase

import (
	"golang.org/x/crypto/argon2"
	"golang.org/x/text/unicode/norm"
)

const (
	SeedSize = 32

	salt = "receipt-go passphrase v1"

	// argon2id parameters, as recommended for interactive use in
	// RFC 9106, section 4.
	argonTime    = 1
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
)

type Seed [SeedSize]byte

// Normalize returns the NFKC normal form of p.
func Normalize(p string) string {
	return norm.NFKC.String(p)
}

func Derive(p string) (seed Seed) {
	key := argon2.IDKey([]byte(Normalize(p)), []byte(salt),
		argonTime, argonMemory, argonThreads, SeedSize)
	copy(seed[:], key)
	return
}

// package check implements the integrity checks applied to a receipt
// before it is accepted: the committed message hash must match the
// message, and the receipt must verify.
package check

import (
	"errors"
	"fmt"

	"sigsum.org/receipt-go/pkg/crypto"
	"sigsum.org/receipt-go/pkg/log"
	"sigsum.org/receipt-go/pkg/receipt"
)

var ErrMessageMismatch = errors.New("Message commitment does not match given message!")

// Receipt logs the commitment, then checks message binding and
// validity, in that order. Verify is called exactly once. On success,
// the commitment is returned.
func Receipt(r *receipt.Receipt, message string) (*receipt.Commitment, error) {
	c, err := r.Message()
	if err != nil {
		return nil, fmt.Errorf("reading message commitment failed: %w", err)
	}
	identity, err := r.Identity()
	if err != nil {
		return nil, fmt.Errorf("reading identity failed: %w", err)
	}
	log.Info("Commitment:")
	log.Info("\tmessage: %x", c.Msg)
	log.Info("\tidentity: %x", identity)

	log.Info("Integrity Checks:")
	if c.Msg != crypto.HashBytes([]byte(message)) {
		return nil, ErrMessageMismatch
	}
	log.Info("\tmessage: valid")

	if err := r.Verify(); err != nil {
		return nil, err
	}
	log.Info("\treceipt: valid")
	return c, nil
}

// LogFailure logs an error from Receipt, or from the steps around it,
// at error level.
func LogFailure(err error) {
	var verr *receipt.VerificationError
	if errors.As(err, &verr) {
		log.Error("Receipt is invalid!")
	}
	log.Error("%v", err)
}

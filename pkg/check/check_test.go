package check

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"sigsum.org/receipt-go/pkg/log"
	"sigsum.org/receipt-go/pkg/receipt"
	"sigsum.org/receipt-go/pkg/seal"
	"sigsum.org/receipt-go/pkg/signing"
)

const (
	testMessage    = "This is a signed message"
	testPassphrase = "passw0rd"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func mustSign(t *testing.T) *receipt.Receipt {
	signer, err := signing.New(seal.Ed25519)
	if err != nil {
		t.Fatal(err)
	}
	r, err := signer.Sign(testPassphrase, testMessage)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestValidReceipt(t *testing.T) {
	buf := captureLog(t)
	r := mustSign(t)
	c, err := Receipt(r, testMessage)
	if err != nil {
		t.Fatalf("valid receipt rejected: %v", err)
	}
	want, _ := r.Message()
	if *c != *want {
		t.Errorf("unexpected commitment %x", *c)
	}
	out := buf.String()
	for _, line := range []string{"Commitment:", "Integrity Checks:", "\tmessage: valid", "\treceipt: valid"} {
		if !strings.Contains(out, line) {
			t.Errorf("log output missing %q:\n%s", line, out)
		}
	}
	// Repeating the checks gives the same result.
	if _, err := Receipt(r, testMessage); err != nil {
		t.Errorf("second check failed: %v", err)
	}
}

func TestMismatch(t *testing.T) {
	buf := captureLog(t)
	r := mustSign(t)
	for i := 0; i < 2; i++ {
		_, err := Receipt(r, testMessage+".")
		if !errors.Is(err, ErrMessageMismatch) {
			t.Fatalf("got %v, expected ErrMessageMismatch", err)
		}
	}
	if strings.Contains(buf.String(), "receipt: valid") {
		t.Errorf("verification reached after mismatch")
	}
	LogFailure(ErrMessageMismatch)
	if !strings.Contains(buf.String(), "[ERRO] Message commitment does not match given message!") {
		t.Errorf("missing error line:\n%s", buf.String())
	}
}

func TestInvalidSeal(t *testing.T) {
	buf := captureLog(t)
	r := mustSign(t)
	s := r.Seal()
	s[0] ^= 1
	tampered := receipt.New(r.Scheme(), r.Journal(), r.PublicKey(), s)

	_, err := Receipt(tampered, testMessage)
	var verr *receipt.VerificationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, expected VerificationError", err)
	}
	if !strings.Contains(buf.String(), "\tmessage: valid") {
		t.Errorf("message check not reported before verification")
	}
	LogFailure(err)
	if !strings.Contains(buf.String(), "[ERRO] Receipt is invalid!") {
		t.Errorf("missing error line:\n%s", buf.String())
	}
}

func TestNoJournal(t *testing.T) {
	captureLog(t)
	_, err := Receipt(receipt.New(seal.Ed25519, nil, nil, nil), testMessage)
	if !errors.Is(err, receipt.ErrNoJournal) {
		t.Errorf("got %v, expected ErrNoJournal", err)
	}
}

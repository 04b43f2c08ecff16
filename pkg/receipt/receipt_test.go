package receipt

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"sigsum.org/receipt-go/pkg/crypto"
	"sigsum.org/receipt-go/pkg/passphrase"
	"sigsum.org/receipt-go/pkg/seal"
)

func newTestReceipt(t *testing.T, scheme seal.Scheme, msg string) *Receipt {
	t.Helper()
	return newTestReceiptWithPassphrase(t, scheme, "passw0rd", msg)
}

func newTestReceiptWithPassphrase(t *testing.T, scheme seal.Scheme, p, msg string) *Receipt {
	t.Helper()
	seed := passphrase.Derive(p)
	sealer, err := seal.NewSealer(scheme, &seed)
	if err != nil {
		t.Fatal(err)
	}
	c := Commitment{
		Msg:      crypto.HashBytes([]byte(msg)),
		Identity: seal.Identity(scheme, sealer.Public()),
	}
	journal := c.Encode()
	sig, err := sealer.Seal(journal)
	if err != nil {
		t.Fatal(err)
	}
	return New(scheme, journal, sealer.Public(), sig)
}

func TestCommitmentEncoding(t *testing.T) {
	c := Commitment{
		Msg:      crypto.HashBytes([]byte("msg")),
		Identity: crypto.HashBytes([]byte("id")),
	}
	b := c.Encode()
	if len(b) != JournalSize {
		t.Fatalf("unexpected journal size %d", len(b))
	}
	var got Commitment
	if err := got.Decode(b); err != nil {
		t.Fatal(err)
	}
	if got != c {
		t.Errorf("decoded %x, expected %x", got, c)
	}
	if err := got.Decode(nil); !errors.Is(err, ErrNoJournal) {
		t.Errorf("empty journal: got %v, expected ErrNoJournal", err)
	}
	if err := got.Decode(b[:63]); err == nil {
		t.Errorf("no error on short journal")
	}
}

func TestAccessors(t *testing.T) {
	r := newTestReceipt(t, seal.Ed25519, "hello")
	c, err := r.Message()
	if err != nil {
		t.Fatal(err)
	}
	if c.Msg != crypto.HashBytes([]byte("hello")) {
		t.Errorf("unexpected message hash %x", c.Msg)
	}
	id, err := r.Identity()
	if err != nil {
		t.Fatal(err)
	}
	if id != c.Identity {
		t.Errorf("Identity() %x differs from commitment %x", id, c.Identity)
	}

	// Accessors return copies.
	j := r.Journal()
	j[0]++
	if c2, _ := r.Message(); c2.Msg != c.Msg {
		t.Errorf("receipt modified through Journal()")
	}
	s := r.Seal()
	s[0]++
	if err := r.Verify(); err != nil {
		t.Errorf("receipt modified through Seal(): %v", err)
	}
}

func TestMissingJournal(t *testing.T) {
	r := New(seal.Ed25519, nil, nil, nil)
	if _, err := r.Message(); !errors.Is(err, ErrNoJournal) {
		t.Errorf("Message: got %v, expected ErrNoJournal", err)
	}
	if _, err := r.Identity(); !errors.Is(err, ErrNoJournal) {
		t.Errorf("Identity: got %v, expected ErrNoJournal", err)
	}
	var verr *VerificationError
	if err := r.Verify(); !errors.As(err, &verr) {
		t.Errorf("Verify: got %v, expected VerificationError", err)
	}
}

func TestVerify(t *testing.T) {
	for _, scheme := range []seal.Scheme{seal.Ed25519, seal.EdDSABN254} {
		r := newTestReceipt(t, scheme, "This is a signed message")
		if err := r.Verify(); err != nil {
			t.Fatalf("%v: valid receipt failed: %v", scheme, err)
		}
		// Verify is repeatable.
		if err := r.Verify(); err != nil {
			t.Errorf("%v: second verify failed: %v", scheme, err)
		}

		for _, table := range []struct {
			desc    string
			receipt *Receipt
		}{
			{"journal message", func() *Receipt {
				j := r.Journal()
				j[0] ^= 1
				return New(scheme, j, r.PublicKey(), r.Seal())
			}()},
			{"journal identity", func() *Receipt {
				j := r.Journal()
				j[JournalSize-1] ^= 1
				return New(scheme, j, r.PublicKey(), r.Seal())
			}()},
			{"seal", func() *Receipt {
				s := r.Seal()
				s[10] ^= 1
				return New(scheme, r.Journal(), r.PublicKey(), s)
			}()},
			{"public key", func() *Receipt {
				other := newTestReceiptWithPassphrase(t, scheme, "other", "x")
				return New(scheme, r.Journal(), other.PublicKey(), r.Seal())
			}()},
			{"scheme", New(seal.Scheme(99), r.Journal(), r.PublicKey(), r.Seal())},
		} {
			err := table.receipt.Verify()
			var verr *VerificationError
			if !errors.As(err, &verr) {
				t.Errorf("%v: tampered %s: got %v, expected VerificationError",
					scheme, table.desc, err)
			}
		}
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	for _, scheme := range []seal.Scheme{seal.Ed25519, seal.EdDSABN254} {
		r := newTestReceipt(t, scheme, "msg")
		var buf bytes.Buffer
		if err := r.ToASCII(&buf); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(buf.String(), "version=1\nscheme="+scheme.String()+"\n") {
			t.Errorf("unexpected ascii header: %q", buf.String())
		}
		var got Receipt
		if err := got.FromASCII(&buf); err != nil {
			t.Fatalf("%v: parse failed: %v", scheme, err)
		}
		if err := got.Verify(); err != nil {
			t.Errorf("%v: parsed receipt invalid: %v", scheme, err)
		}
		if !bytes.Equal(got.Seal(), r.Seal()) || !bytes.Equal(got.Journal(), r.Journal()) {
			t.Errorf("%v: round trip changed the receipt", scheme)
		}
	}
}

func TestInvalidASCII(t *testing.T) {
	r := newTestReceipt(t, seal.Ed25519, "msg")
	var buf bytes.Buffer
	if err := r.ToASCII(&buf); err != nil {
		t.Fatal(err)
	}
	valid := buf.String()
	for _, table := range []struct {
		desc  string
		input string
	}{
		{"empty", ""},
		{"bad version", strings.Replace(valid, "version=1", "version=2", 1)},
		{"bad scheme", strings.Replace(valid, "scheme=ed25519", "scheme=rsa", 1)},
		{"missing seal", valid[:strings.Index(valid, "seal=")]},
		{"trailing garbage", valid + "foo=bar\n"},
		{"bad hex", strings.Replace(valid, "journal=", "journal=zz", 1)},
	} {
		var got Receipt
		if err := got.FromASCII(strings.NewReader(table.input)); err == nil {
			t.Errorf("%s: no error", table.desc)
		}
	}
}

func TestFile(t *testing.T) {
	r := newTestReceipt(t, seal.Ed25519, "msg")
	name := filepath.Join(t.TempDir(), "receipt")
	if err := WriteFile(name, r); err != nil {
		t.Fatal(err)
	}
	// Overwrite in place.
	if err := WriteFile(name, r); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if err := got.Verify(); err != nil {
		t.Errorf("receipt read from file invalid: %v", err)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Errorf("no error on missing file")
	}
}

package receipt

import (
	"fmt"
	"io"

	"sigsum.org/receipt-go/pkg/ascii"
	"sigsum.org/receipt-go/pkg/seal"
)

const ReceiptVersion = 1

func (r *Receipt) ToASCII(w io.Writer) error {
	if err := ascii.WriteInt(w, "version", ReceiptVersion); err != nil {
		return err
	}
	if err := ascii.WriteLine(w, "scheme", r.scheme.String()); err != nil {
		return err
	}
	if err := ascii.WriteLineHex(w, "journal", r.journal); err != nil {
		return err
	}
	if err := ascii.WriteLineHex(w, "public_key", r.publicKey); err != nil {
		return err
	}
	return ascii.WriteLineHex(w, "seal", r.seal)
}

// FromASCII parses a receipt. Only the syntax is checked; use Verify
// to check the contents.
func (r *Receipt) FromASCII(f io.Reader) error {
	p := ascii.NewParser(f)
	version, err := p.GetInt("version")
	if err != nil {
		return fmt.Errorf("invalid version line: %v", err)
	}
	if version != ReceiptVersion {
		return fmt.Errorf("unexpected version %d, wanted %d", version, ReceiptVersion)
	}
	name, err := p.GetString("scheme")
	if err != nil {
		return fmt.Errorf("invalid scheme line: %v", err)
	}
	scheme, err := seal.SchemeFromString(name)
	if err != nil {
		return err
	}
	journal, err := p.GetHex("journal")
	if err != nil {
		return fmt.Errorf("invalid journal line: %v", err)
	}
	publicKey, err := p.GetHex("public_key")
	if err != nil {
		return fmt.Errorf("invalid public_key line: %v", err)
	}
	sealBytes, err := p.GetHex("seal")
	if err != nil {
		return fmt.Errorf("invalid seal line: %v", err)
	}
	if err := p.GetEOF(); err != nil {
		return err
	}
	*r = Receipt{scheme: scheme, journal: journal, publicKey: publicKey, seal: sealBytes}
	return nil
}

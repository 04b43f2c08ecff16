package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"sigsum.org/receipt-go/internal/options"
	"sigsum.org/receipt-go/internal/version"
	"sigsum.org/receipt-go/pkg/check"
	"sigsum.org/receipt-go/pkg/crypto"
	"sigsum.org/receipt-go/pkg/log"
	"sigsum.org/receipt-go/pkg/receipt"
)

const usage = `
Verify a signing receipt, as written by sign --output. The receipt
file is given on the command line. The message is read from stdin,
unless given with the --message option; it must be byte-for-byte the
message that was signed. The passphrase is not needed.

If --identity is given, the receipt must also have been made by that
signer identity (hex).

Exit status is 0 if the message and receipt are both valid, otherwise 1.
`

type Settings struct {
	receiptFile string
	message     string
	hasMessage  bool
	identity    string
	diagnostics string
	version     bool
}

func main() {
	os.Exit(run(os.Args, os.Stdin))
}

func run(args []string, stdin io.Reader) int {
	var settings Settings
	if err := settings.parse(args); err != nil {
		if errors.Is(err, options.ErrHelp) {
			return 0
		}
		log.Error("%v", err)
		return 1
	}
	if settings.version {
		version.DisplayVersion("sign-verify")
		return 0
	}
	if err := log.SetLevelFromEnv(log.DefaultEnv); err != nil {
		log.Error("%v", err)
		return 1
	}
	if len(settings.diagnostics) > 0 {
		if err := log.SetLevelFromString(settings.diagnostics); err != nil {
			log.Error("%v", err)
			return 1
		}
	}
	if err := verify(&settings, stdin); err != nil {
		check.LogFailure(err)
		return 1
	}
	return 0
}

func verify(settings *Settings, stdin io.Reader) error {
	var want *crypto.Hash
	if len(settings.identity) > 0 {
		identity, err := crypto.HashFromHex(settings.identity)
		if err != nil {
			return fmt.Errorf("invalid --identity: %v", err)
		}
		want = &identity
	}
	message := settings.message
	if !settings.hasMessage {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading message from stdin failed: %v", err)
		}
		message = string(b)
	}
	r, err := receipt.ReadFile(settings.receiptFile)
	if err != nil {
		return err
	}
	log.Info("Receipt: %s (%v)", settings.receiptFile, r.Scheme())
	c, err := check.Receipt(r, message)
	if err != nil {
		return err
	}
	if want != nil {
		if c.Identity != *want {
			return fmt.Errorf("receipt identity %x, expected %x", c.Identity, *want)
		}
		log.Info("\tidentity: valid")
	}
	return nil
}

func (s *Settings) parse(args []string) error {
	set, help := options.New("sign-verify", "RECEIPT-FILE [< MESSAGE]")
	messageOpt := set.FlagLong(&s.message, "message", 'm', "Message text, instead of reading stdin", "message")
	set.FlagLong(&s.identity, "identity", 'i', "Required signer identity, in hex", "identity")
	set.FlagLong(&s.diagnostics, "diagnostics", 0, "Level of diagnostic messages", "level")
	set.FlagLong(&s.version, "version", 'v', "Show program version and exit")

	positional, err := options.Parse(set, help, args)
	if errors.Is(err, options.ErrHelp) {
		options.PrintUsage(os.Stdout, set, usage[1:])
		return err
	}
	if err != nil {
		options.PrintUsage(os.Stderr, set, "")
		return err
	}
	if s.version {
		return nil
	}
	if len(positional) != 1 {
		options.PrintUsage(os.Stderr, set, "")
		return fmt.Errorf("expected exactly one RECEIPT-FILE argument, got %d", len(positional))
	}
	s.receiptFile = positional[0]
	s.hasMessage = messageOpt.Seen()
	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"

	"sigsum.org/receipt-go/internal/options"
	"sigsum.org/receipt-go/internal/version"
	"sigsum.org/receipt-go/pkg/check"
	"sigsum.org/receipt-go/pkg/log"
	"sigsum.org/receipt-go/pkg/receipt"
	"sigsum.org/receipt-go/pkg/seal"
	"sigsum.org/receipt-go/pkg/signing"
)

const usage = `
Sign a message with a key derived from a passphrase, producing a
signing receipt. The receipt commits to the SHA-256 hash of the
message and to the signer identity. Before exiting, the receipt is
checked: the committed hash must match the message, and the receipt
seal must verify.

The --diagnostics option specifies level of diagnostic messages, one
of "fatal", "error", "warning", "info" (default), or "debug". If not
given, the level is read from the SIGN_LOG environment variable.

Exit status is 0 if the message and receipt are both valid, otherwise 1.
`

type Settings struct {
	message     string
	passphrase  string
	scheme      seal.Scheme
	outputFile  string
	diagnostics string
	version     bool
}

// Creates the signing service for the selected scheme.
type newServiceFunc func(seal.Scheme) (signing.Service, error)

func main() {
	os.Exit(run(os.Args, func(scheme seal.Scheme) (signing.Service, error) {
		return signing.New(scheme)
	}))
}

func run(args []string, newService newServiceFunc) int {
	var settings Settings
	if err := settings.parse(args); err != nil {
		if errors.Is(err, options.ErrHelp) {
			return 0
		}
		log.Error("%v", err)
		return 1
	}
	if settings.version {
		version.DisplayVersion("sign")
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
	service, err := newService(settings.scheme)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if err := signAndCheck(service, &settings); err != nil {
		check.LogFailure(err)
		return 1
	}
	return 0
}

func signAndCheck(service signing.Service, settings *Settings) error {
	r, err := service.Sign(settings.passphrase, settings.message)
	if err != nil {
		return fmt.Errorf("signing failed: %w", err)
	}
	log.Info("Inputs")
	log.Info("\tmessage: %q", settings.message)
	if _, err := check.Receipt(r, settings.message); err != nil {
		return err
	}
	if len(settings.outputFile) > 0 {
		if err := receipt.WriteFile(settings.outputFile, r); err != nil {
			return err
		}
		log.Debug("receipt written to %q", settings.outputFile)
	}
	return nil
}

func (s *Settings) parse(args []string) error {
	set, help := options.New("sign", "MESSAGE")
	scheme := seal.Ed25519.String()
	set.FlagLong(&s.passphrase, "passphrase", 'p', "Passphrase the signing key is derived from", "passphrase")
	set.FlagLong(&scheme, "scheme", 0, "Seal scheme: ed25519 (default) or eddsa-bn254", "name")
	set.FlagLong(&s.outputFile, "output", 'o', "Write the receipt to this file", "output-file")
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
		return fmt.Errorf("expected exactly one MESSAGE argument, got %d", len(positional))
	}
	s.message = positional[0]
	if err := options.CheckString("--passphrase", s.passphrase); err != nil {
		return err
	}
	s.scheme, err = seal.SchemeFromString(scheme)
	return err
}

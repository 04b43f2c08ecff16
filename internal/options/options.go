// package options provides helpers for command line parsing with
// getopt, shared by the receipt tools.
package options

import (
	"errors"
	"fmt"
	"io"

	getopt "github.com/pborman/getopt/v2"
)

// ErrHelp is returned by Parse when --help was given.
var ErrHelp = errors.New("help requested")

// New creates an option set for a tool, with a --help flag.
func New(program, params string) (*getopt.Set, *bool) {
	set := getopt.New()
	set.SetProgram(program)
	set.SetParameters(params)
	help := false
	set.FlagLong(&help, "help", 'h', "Show usage message and exit")
	return set, &help
}

// Parse processes args (args[0] being the program name) and returns
// the positional arguments. Unlike plain getopt, options may follow
// positional arguments, e.g., "sign MESSAGE --passphrase P"; all
// arguments after "--" are positional.
func Parse(set *getopt.Set, help *bool, args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{""}
	}
	var positional []string
	for {
		err := set.Getopt(args, nil)
		// Check help first; if seen, ignore other errors.
		if *help {
			return nil, ErrHelp
		}
		if err != nil {
			return nil, err
		}
		rest := set.Args()
		if set.State() == getopt.DashDash {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = append([]string{args[0]}, rest[1:]...)
	}
}

// PrintUsage writes the usage text followed by getopt's option list.
func PrintUsage(w io.Writer, set *getopt.Set, usage string) {
	fmt.Fprint(w, usage)
	set.PrintUsage(w)
}

// CheckString checks that a required option has a non-empty value.
func CheckString(optionName, value string) error {
	if value == "" {
		return fmt.Errorf("%s is a required option", optionName)
	}
	return nil
}

// Package ascii implements an ASCII key-value parser and writer.
//
// Each line has the form key=value, terminated by a single newline
// character. Binary values are lower-case hex.
package ascii

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func IntFromDecimal(s string) (uint64, error) {
	// Use ParseUint, to not accept leading +/-.
	return strconv.ParseUint(s, 10, 63)
}

type Parser struct {
	scanner *bufio.Scanner
}

func NewParser(input io.Reader) Parser {
	p := Parser{bufio.NewScanner(input)}
	// This is like bufio.ScanLines but it doesn't strip CRs
	// and fails on final unterminated lines.
	p.scanner.Split(func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			return i + 1, data[0:i], nil
		}
		if atEOF {
			if len(data) > 0 {
				return 0, nil, io.ErrUnexpectedEOF
			}
			return 0, nil, io.EOF
		}
		return 0, nil, nil
	})
	return p
}

func (p *Parser) GetEOF() error {
	if p.scanner.Scan() {
		return fmt.Errorf("garbage at end of message: %q",
			p.scanner.Text())
	}
	return p.scanner.Err()
}

// next scans the next line, expecting it to contain a key/value pair separated
// by =, where the key is name. It returns the value.
func (p *Parser) next(name string) (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := p.scanner.Text()
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", fmt.Errorf("invalid input line: %q", line)
	}
	if key != name {
		return "", fmt.Errorf("invalid input line, expected %v, got key: %q", name, key)
	}

	return value, nil
}

func (p *Parser) GetInt(name string) (uint64, error) {
	v, err := p.next(name)
	if err != nil {
		return 0, err
	}
	return IntFromDecimal(v)
}

func (p *Parser) GetString(name string) (string, error) {
	v, err := p.next(name)
	if err != nil {
		return "", err
	}
	if len(v) == 0 {
		return "", fmt.Errorf("empty value for %v", name)
	}
	return v, nil
}

// GetHex parses a non-empty, lower-case hex value of any length.
func (p *Parser) GetHex(name string) ([]byte, error) {
	v, err := p.next(name)
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return nil, fmt.Errorf("empty value for %v", name)
	}
	if strings.ToLower(v) != v {
		return nil, fmt.Errorf("invalid value for %v, hex must be lower-case", name)
	}
	return hex.DecodeString(v)
}

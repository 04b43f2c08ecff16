package receipt

import (
	"fmt"
	"os"

	"github.com/dchest/safefile"
)

// WriteFile writes r to fileName, atomically replacing any old file.
func WriteFile(fileName string, r *Receipt) error {
	f, err := safefile.Create(fileName, 0644)
	if err != nil {
		return fmt.Errorf("failed to create receipt file %q: %w", fileName, err)
	}
	defer f.Close()

	if err := r.ToASCII(f); err != nil {
		return fmt.Errorf("failed to write receipt file %q: %w", fileName, err)
	}
	return f.Commit()
}

func ReadFile(fileName string) (*Receipt, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open receipt file %q: %w", fileName, err)
	}
	defer f.Close()
	var r Receipt
	if err := r.FromASCII(f); err != nil {
		return nil, fmt.Errorf("invalid receipt file %q: %w", fileName, err)
	}
	return &r, nil
}

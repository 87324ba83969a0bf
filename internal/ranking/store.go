// Package ranking keeps clear times in a plain text file, one per line.
package ranking

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
)

// Top is how many records Load returns.
const Top = 10

type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Save appends one record.
func (s *Store) Save(record string) error {
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open ranking: %w", err)
	}
	if _, err := fmt.Fprintln(f, record); err != nil {
		f.Close()
		return fmt.Errorf("write ranking: %w", err)
	}
	return f.Close()
}

// Load returns the best records in ascending text order. A missing file is
// an empty ranking, not an error.
func (s *Store) Load() ([]string, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ranking: %w", err)
	}
	defer f.Close()

	var recs []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			recs = append(recs, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read ranking: %w", err)
	}

	slices.Sort(recs)
	if len(recs) > Top {
		recs = recs[:Top]
	}
	return recs, nil
}

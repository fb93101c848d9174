// Package repeat finds substrings that occur more than once in a sequence.
//
// The default search is exhaustive: every substring with a length between
// Options.MinLength and MaxLength is re-scanned against the whole sequence.
// That costs O(n^3 * MaxLength) and is intended for amplicon or marker
// length sequences. Options.Indexed switches to a k-mer position index that
// produces the same table in roughly O(n * MaxLength).
package repeat

import (
	"errors"
	"fmt"

	"github.com/aria-lang/seqscan/internal/kmer"
	"github.com/aria-lang/seqscan/internal/motif"
)

// MaxLength caps the length of a reported repeat regardless of the input.
const MaxLength = 20

// Default thresholds.
const (
	DefaultMinLength = 4
	DefaultMinCount  = 2
)

// ErrInvalidOptions is returned for thresholds below 1.
var ErrInvalidOptions = errors.New("invalid repeat options")

// Options controls the repeat search.
type Options struct {
	MinLength int  `json:"min_length" yaml:"min_length"`
	MinCount  int  `json:"min_count" yaml:"min_count"`
	Indexed   bool `json:"indexed" yaml:"indexed"`
}

// DefaultOptions returns MinLength 4, MinCount 2, exhaustive search.
func DefaultOptions() Options {
	return Options{
		MinLength: DefaultMinLength,
		MinCount:  DefaultMinCount,
	}
}

// Validate checks that both thresholds are positive.
func (o Options) Validate() error {
	if o.MinLength < 1 {
		return fmt.Errorf("%w: min length must be positive, got %d", ErrInvalidOptions, o.MinLength)
	}
	if o.MinCount < 1 {
		return fmt.Errorf("%w: min count must be positive, got %d", ErrInvalidOptions, o.MinCount)
	}
	return nil
}

// FindDefault runs Find with DefaultOptions.
func FindDefault(sequence string) *Table {
	table, _ := Find(sequence, DefaultOptions())
	return table
}

// Find returns every substring of length in [opts.MinLength, MaxLength] that
// occurs at least opts.MinCount times, with all of its start offsets.
func Find(sequence string, opts Options) (*Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Indexed {
		return findIndexed(sequence, opts)
	}
	return findExhaustive(sequence, opts), nil
}

// findExhaustive scans every (start, length) window and re-scans the whole
// sequence for it. Substrings seen earlier are recomputed; the table keeps
// the first insertion position and the identical offsets.
func findExhaustive(sequence string, opts Options) *Table {
	table := NewTable()
	n := len(sequence)

	for i := 0; i <= n-opts.MinLength; i++ {
		maxLen := min(MaxLength, n-i)
		for j := opts.MinLength; j <= maxLen; j++ {
			substring := sequence[i : i+j]
			positions := motif.Find(sequence, substring)
			if len(positions) >= opts.MinCount {
				table.Set(substring, positions)
			}
		}
	}
	return table
}

// findIndexed produces the exhaustive table from one k-mer index per
// length. Entries are ordered the way the exhaustive scan first discovers
// them: by first occurrence, then by length.
func findIndexed(sequence string, opts Options) (*Table, error) {
	maxLen := min(MaxLength, len(sequence))

	var found []kmer.KMerPositions
	for k := opts.MinLength; k <= maxLen; k++ {
		idx, err := kmer.NewIndex(sequence, k)
		if err != nil {
			return nil, fmt.Errorf("indexing %d-mers: %w", k, err)
		}
		repeated, err := idx.Repeated(opts.MinCount)
		if err != nil {
			return nil, fmt.Errorf("indexing %d-mers: %w", k, err)
		}
		found = append(found, repeated...)
	}

	sortByDiscovery(found)

	table := NewTable()
	for _, r := range found {
		table.Set(r.KMer, r.Positions)
	}
	return table, nil
}

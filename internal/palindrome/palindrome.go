// Package palindrome finds reverse-complement palindromes: substrings that
// read the same on both strands.
package palindrome

import (
	"errors"
	"fmt"

	"github.com/aria-lang/seqscan/internal/sequence"
)

// Default length range.
const (
	DefaultMinLength = 4
	DefaultMaxLength = 12
)

// lengthStep is the stride between tested lengths. A substring made only of
// A, C, G, T can equal its reverse complement only at even length.
const lengthStep = 2

// ErrInvalidOptions is returned for a minimum length below 1.
var ErrInvalidOptions = errors.New("invalid palindrome options")

// Options controls the palindrome search.
//
// Lengths MinLength, MinLength+2, ... up to MaxLength are tested. An odd
// MinLength therefore tests odd lengths only.
type Options struct {
	MinLength int `json:"min_length" yaml:"min_length"`
	MaxLength int `json:"max_length" yaml:"max_length"`
}

// DefaultOptions returns the 4..12 range.
func DefaultOptions() Options {
	return Options{MinLength: DefaultMinLength, MaxLength: DefaultMaxLength}
}

// Validate checks that MinLength is positive. A MaxLength below MinLength is
// allowed and yields no hits.
func (o Options) Validate() error {
	if o.MinLength < 1 {
		return fmt.Errorf("%w: min length must be positive, got %d", ErrInvalidOptions, o.MinLength)
	}
	return nil
}

// Hit is a palindromic substring and its start offset.
type Hit struct {
	Sequence string `json:"sequence" yaml:"sequence"`
	Position int    `json:"position" yaml:"position"`
}

func (h Hit) String() string {
	return fmt.Sprintf("%s at position %d", h.Sequence, h.Position)
}

// FindDefault runs Find with DefaultOptions.
func FindDefault(seq string) []Hit {
	hits, _ := Find(seq, DefaultOptions())
	return hits
}

// Find returns every palindromic (substring, offset) pair in scan order:
// by start offset, then by increasing length. Nested palindromes sharing a
// start offset are all reported.
func Find(seq string, opts Options) ([]Hit, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	hits := make([]Hit, 0)
	n := len(seq)

	for i := 0; i <= n-opts.MinLength; i++ {
		maxLen := min(opts.MaxLength, n-i)
		for j := opts.MinLength; j <= maxLen; j += lengthStep {
			substr := seq[i : i+j]
			if sequence.IsPalindrome(substr) {
				hits = append(hits, Hit{Sequence: substr, Position: i})
			}
		}
	}
	return hits, nil
}

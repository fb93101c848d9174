package sequence

import (
	"fmt"
	"strings"
)

// StandardBases is the alphabet every scanner treats as nucleotides.
const StandardBases = "ACGT"

// SequenceError is the base error type for sequence inspection.
type SequenceError interface {
	error
	IsSequenceError()
}

// InvalidBaseError describes the first non-standard character of a sequence.
type InvalidBaseError struct {
	Position int
	Found    rune
	Total    int
}

func (e *InvalidBaseError) Error() string {
	if e.Total > 1 {
		return fmt.Sprintf("non-standard base '%c' at position %d (%d in total)", e.Found, e.Position, e.Total)
	}
	return fmt.Sprintf("non-standard base '%c' at position %d", e.Found, e.Position)
}

func (e *InvalidBaseError) IsSequenceError() {}

// Validate reports characters outside A, C, G, T. The scanners accept such
// characters, so callers use the result for diagnostics only.
func Validate(bases string) error {
	var first *InvalidBaseError
	for i, b := range bases {
		if IsStandardBase(b) {
			continue
		}
		if first == nil {
			first = &InvalidBaseError{Position: i, Found: b}
		}
		first.Total++
	}
	if first == nil {
		return nil
	}
	return first
}

// IsStandardBase checks if a character is one of the uppercase nucleotides.
func IsStandardBase(c rune) bool {
	return strings.ContainsRune(StandardBases, c)
}

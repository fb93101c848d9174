// Package sequence provides the nucleotide complement table and the
// reverse-complement helpers shared by the scanners.
//
// Characters outside the A/C/G/T alphabet are never rejected: they are
// passed through unchanged by every transform in this package.
package sequence

// complement is the fixed Watson-Crick pairing table. Bases missing from the
// table map to themselves.
var complement = map[rune]rune{
	'A': 'T',
	'T': 'A',
	'G': 'C',
	'C': 'G',
}

// Complement returns the pairing partner of a base, or the base itself when
// it is not one of A, C, G, T.
func Complement(b rune) rune {
	if c, ok := complement[b]; ok {
		return c
	}
	return b
}

// Reverse returns s with its characters in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	n := len(runes)
	for i := 0; i < n/2; i++ {
		runes[i], runes[n-1-i] = runes[n-1-i], runes[i]
	}
	return string(runes)
}

// ReverseComplement reverses s and complements every base.
//
// Unknown characters keep their (mirrored) position, so "ANT" becomes "ANT".
func ReverseComplement(s string) string {
	runes := []rune(s)
	n := len(runes)
	out := make([]rune, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(runes[n-1-i])
	}
	return string(out)
}

// IsPalindrome reports whether s equals its own reverse complement.
func IsPalindrome(s string) bool {
	return s == ReverseComplement(s)
}

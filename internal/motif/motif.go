// Package motif implements exact substring search over nucleotide sequences.
//
// Matching is case-sensitive and overlapping: a hit at offset i does not
// prevent a hit at i+1. Offsets are zero-based byte positions.
package motif

// Find returns every offset p where sequence[p:p+len(motif)] == motif, in
// increasing order.
//
// An empty motif, or a motif longer than the sequence, has no occurrences.
// The result is never nil.
func Find(sequence, motif string) []int {
	positions := make([]int, 0)

	m := len(motif)
	if m == 0 || m > len(sequence) {
		return positions
	}

	for i := 0; i <= len(sequence)-m; i++ {
		if sequence[i:i+m] == motif {
			positions = append(positions, i)
		}
	}
	return positions
}

// Count returns the number of (possibly overlapping) occurrences of motif.
func Count(sequence, motif string) int {
	return len(Find(sequence, motif))
}

// Contains reports whether motif occurs at least once.
func Contains(sequence, motif string) bool {
	m := len(motif)
	if m == 0 || m > len(sequence) {
		return false
	}
	for i := 0; i <= len(sequence)-m; i++ {
		if sequence[i:i+m] == motif {
			return true
		}
	}
	return false
}

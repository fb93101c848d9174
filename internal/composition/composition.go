// Package composition counts nucleotides and computes GC content.
//
// Only the uppercase bases A, C, G and T are counted. Lowercase letters and
// ambiguity codes contribute to the length but to none of the counts.
package composition

import "fmt"

// Counts holds exact per-base counts.
type Counts struct {
	A int `json:"A" yaml:"A"`
	T int `json:"T" yaml:"T"`
	G int `json:"G" yaml:"G"`
	C int `json:"C" yaml:"C"`
}

// Count tallies A, T, G and C in sequence.
func Count(sequence string) Counts {
	var c Counts
	for i := 0; i < len(sequence); i++ {
		switch sequence[i] {
		case 'A':
			c.A++
		case 'T':
			c.T++
		case 'G':
			c.G++
		case 'C':
			c.C++
		}
	}
	return c
}

// Total returns A+T+G+C.
func (c Counts) Total() int {
	return c.A + c.T + c.G + c.C
}

// Other returns how many of length characters were not counted.
func (c Counts) Other(length int) int {
	return length - c.Total()
}

// Bases returns the counts in report order (A, T, G, C).
func (c Counts) Bases() []BaseCount {
	return []BaseCount{
		{Base: "A", Count: c.A},
		{Base: "T", Count: c.T},
		{Base: "G", Count: c.G},
		{Base: "C", Count: c.C},
	}
}

func (c Counts) String() string {
	return fmt.Sprintf("A=%d, T=%d, G=%d, C=%d", c.A, c.T, c.G, c.C)
}

// BaseCount pairs a base letter with its count.
type BaseCount struct {
	Base  string
	Count int
}

// GCContent returns the percentage of G and C bases, in [0, 100].
// An empty sequence has a GC content of 0.
func GCContent(sequence string) float64 {
	if len(sequence) == 0 {
		return 0
	}
	c := Count(sequence)
	return float64(c.G+c.C) / float64(len(sequence)) * 100
}

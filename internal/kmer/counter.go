// Package kmer indexes fixed-length substrings (k-mers) of a sequence by
// their start positions.
//
// A single left-to-right pass yields every k-mer with all of its
// occurrences, which is the same information an exhaustive motif re-scan of
// each substring produces, at linear cost per k.
package kmer

import (
	"fmt"
	"sort"
)

// KMerPositions is a k-mer together with its ascending start offsets.
type KMerPositions struct {
	KMer      string
	Positions []int
}

// Index maps every k-mer of a sequence to its start offsets.
//
// Characters are indexed verbatim: no case folding, and ambiguous bases are
// not skipped.
type Index struct {
	K         int
	Positions map[string][]int
	Total     int
}

// NewIndex builds the position index of all k-mers in seq.
func NewIndex(seq string, k int) (*Index, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive")
	}

	idx := &Index{
		K:         k,
		Positions: make(map[string][]int),
	}
	for i := 0; i <= len(seq)-k; i++ {
		kmer := seq[i : i+k]
		idx.Positions[kmer] = append(idx.Positions[kmer], i)
		idx.Total++
	}
	return idx, nil
}

// GetPositions returns the offsets of kmer, or nil if it does not occur.
func (idx *Index) GetPositions(kmer string) ([]int, error) {
	if len(kmer) != idx.K {
		return nil, fmt.Errorf("k-mer length %d doesn't match k=%d", len(kmer), idx.K)
	}
	return idx.Positions[kmer], nil
}

// GetCount returns the number of occurrences of kmer.
func (idx *Index) GetCount(kmer string) (int, error) {
	positions, err := idx.GetPositions(kmer)
	if err != nil {
		return 0, err
	}
	return len(positions), nil
}

// UniqueCount returns the number of distinct k-mers.
func (idx *Index) UniqueCount() int {
	return len(idx.Positions)
}

// Repeated returns the k-mers occurring at least minCount times, ordered by
// their first occurrence.
func (idx *Index) Repeated(minCount int) ([]KMerPositions, error) {
	if minCount <= 0 {
		return nil, fmt.Errorf("min_count must be positive")
	}

	result := make([]KMerPositions, 0)
	for kmer, positions := range idx.Positions {
		if len(positions) >= minCount {
			result = append(result, KMerPositions{KMer: kmer, Positions: positions})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Positions[0] < result[j].Positions[0]
	})
	return result, nil
}

// MostFrequent returns the n most frequent k-mers. Ties are broken by first
// occurrence.
func (idx *Index) MostFrequent(n int) ([]KMerPositions, error) {
	if n <= 0 {
		return nil, fmt.Errorf("n must be positive")
	}

	all, err := idx.Repeated(1)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return len(all[i].Positions) > len(all[j].Positions)
	})

	if n > len(all) {
		n = len(all)
	}
	return all[:n], nil
}

func (idx *Index) String() string {
	return fmt.Sprintf("KMerIndex { k: %d, unique: %d, total: %d }", idx.K, idx.UniqueCount(), idx.Total)
}

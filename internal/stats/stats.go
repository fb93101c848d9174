// Package stats provides statistical summaries over a set of sequence
// reports.
package stats

import (
	"fmt"
	"sort"

	"github.com/aria-lang/seqscan/internal/analysis"
)

// SetStats represents aggregated statistics for multiple sequences.
type SetStats struct {
	Count         int     `json:"count" yaml:"count"`
	TotalBases    int     `json:"total_bases" yaml:"total_bases"`
	MinLength     int     `json:"min_length" yaml:"min_length"`
	MaxLength     int     `json:"max_length" yaml:"max_length"`
	MeanLength    float64 `json:"mean_length" yaml:"mean_length"`
	MedianLength  int     `json:"median_length" yaml:"median_length"`
	MeanGCContent float64 `json:"mean_gc_content" yaml:"mean_gc_content"`
	N50           int     `json:"n50" yaml:"n50"`
	// TotalOther counts characters outside uppercase A, C, G, T.
	TotalOther       int `json:"total_other" yaml:"total_other"`
	TotalRepeats     int `json:"total_repeats" yaml:"total_repeats"`
	TotalPalindromes int `json:"total_palindromes" yaml:"total_palindromes"`
}

// FromReports calculates statistics for a collection of reports.
func FromReports(reports []*analysis.Report) (*SetStats, error) {
	if len(reports) == 0 {
		return nil, fmt.Errorf("report list cannot be empty")
	}

	count := len(reports)
	lengths := make([]int, count)
	totalBases := 0

	for i, r := range reports {
		lengths[i] = r.Length
		totalBases += r.Length
	}

	minLen := lengths[0]
	maxLen := lengths[0]
	for _, l := range lengths {
		if l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
	}

	meanLen := float64(totalBases) / float64(count)

	sortedLengths := make([]int, count)
	copy(sortedLengths, lengths)
	sort.Ints(sortedLengths)

	mid := count / 2
	var medianLen int
	if count%2 == 0 {
		medianLen = (sortedLengths[mid-1] + sortedLengths[mid]) / 2
	} else {
		medianLen = sortedLengths[mid]
	}

	// N50: length where 50% of bases are in sequences at least that long
	sortedDesc := make([]int, count)
	copy(sortedDesc, lengths)
	sort.Sort(sort.Reverse(sort.IntSlice(sortedDesc)))

	halfTotal := totalBases / 2
	runningSum := 0
	n50 := sortedDesc[0]

	for _, length := range sortedDesc {
		runningSum += length
		if runningSum >= halfTotal {
			n50 = length
			break
		}
	}

	gcSum := 0.0
	totalOther := 0
	totalRepeats := 0
	totalPalindromes := 0
	for _, r := range reports {
		gcSum += r.GCContent
		totalOther += r.Composition.Other(r.Length)
		if r.Repeats != nil {
			totalRepeats += r.Repeats.Len()
		}
		totalPalindromes += len(r.Palindromes)
	}

	return &SetStats{
		Count:            count,
		TotalBases:       totalBases,
		MinLength:        minLen,
		MaxLength:        maxLen,
		MeanLength:       meanLen,
		MedianLength:     medianLen,
		MeanGCContent:    gcSum / float64(count),
		N50:              n50,
		TotalOther:       totalOther,
		TotalRepeats:     totalRepeats,
		TotalPalindromes: totalPalindromes,
	}, nil
}

func (s *SetStats) String() string {
	return fmt.Sprintf(`SetStats {
  count: %d
  total_bases: %d
  length range: %d - %d
  mean length: %.1f
  median length: %d
  mean GC: %.2f%%
  N50: %d
  other bases: %d
  repeats: %d
  palindromes: %d
}`, s.Count, s.TotalBases, s.MinLength, s.MaxLength,
		s.MeanLength, s.MedianLength, s.MeanGCContent, s.N50, s.TotalOther,
		s.TotalRepeats, s.TotalPalindromes)
}

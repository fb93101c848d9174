package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/seqscan/internal/analysis"
)

func TestFromReports(t *testing.T) {
	reports := []*analysis.Report{
		analysis.Analyze("s1", "ATGC"),     // len=4, GC=50
		analysis.Analyze("s2", "ATGCATGC"), // len=8, GC=50
		analysis.Analyze("s3", "GGCN"),     // len=4, GC=75, one other
	}

	stats, err := FromReports(reports)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 16, stats.TotalBases)
	assert.Equal(t, 4, stats.MinLength)
	assert.Equal(t, 8, stats.MaxLength)
	assert.InDelta(t, 16.0/3.0, stats.MeanLength, 0.0001)
	assert.Equal(t, 4, stats.MedianLength) // sorted: 4, 4, 8; middle = 4
	assert.InDelta(t, 175.0/3.0, stats.MeanGCContent, 0.0001)
	assert.Equal(t, 1, stats.TotalOther)
	assert.Equal(t, 1, stats.TotalRepeats) // ATGC in s2
}

func TestFromReportsEmpty(t *testing.T) {
	_, err := FromReports([]*analysis.Report{})
	require.Error(t, err)
}

func TestEvenMedian(t *testing.T) {
	reports := []*analysis.Report{
		analysis.Analyze("a", generateSeq(4)),
		analysis.Analyze("b", generateSeq(10)),
	}

	stats, err := FromReports(reports)
	require.NoError(t, err)
	assert.Equal(t, 7, stats.MedianLength)
}

func TestN50Calculation(t *testing.T) {
	// Lengths 100, 80, 60, 40, 20: total 300, half 150, so N50 is 80.
	reports := []*analysis.Report{
		analysis.Analyze("s1", generateSeq(100)),
		analysis.Analyze("s2", generateSeq(80)),
		analysis.Analyze("s3", generateSeq(60)),
		analysis.Analyze("s4", generateSeq(40)),
		analysis.Analyze("s5", generateSeq(20)),
	}

	stats, err := FromReports(reports)
	require.NoError(t, err)

	assert.Equal(t, 80, stats.N50)
}

func TestSetStatsString(t *testing.T) {
	stats, err := FromReports([]*analysis.Report{analysis.Analyze("s1", "GGCC")})
	require.NoError(t, err)

	out := stats.String()
	assert.Contains(t, out, "count: 1")
	assert.Contains(t, out, "mean GC: 100.00%")
}

func generateSeq(length int) string {
	bases := []byte{'A', 'T', 'G', 'C'}
	result := make([]byte, length)
	for i := range result {
		result[i] = bases[i%4]
	}
	return string(result)
}

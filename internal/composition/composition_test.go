package composition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCContent(t *testing.T) {
	tests := []struct {
		name     string
		sequence string
		want     float64
	}{
		{"empty", "", 0},
		{"all GC", "GGCC", 100},
		{"all AT", "ATAT", 0},
		{"mixed 50%", "ATGC", 50},
		{"single G", "G", 100},
		{"with N", "ATGCN", 40},
		{"lowercase not counted", "gcGC", 50},
		{"one third", "GAA", 100.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GCContent(tt.sequence)
			assert.InDelta(t, tt.want, got, 0.0001)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestCount(t *testing.T) {
	counts := Count("AATTTGGGCCCCN")

	assert.Equal(t, 2, counts.A)
	assert.Equal(t, 3, counts.T)
	assert.Equal(t, 3, counts.G)
	assert.Equal(t, 4, counts.C)
	assert.Equal(t, 12, counts.Total())
	assert.Equal(t, 1, counts.Other(13))
}

func TestCountIgnoresLowercaseAndAmbiguity(t *testing.T) {
	counts := Count("acgtRYN")

	assert.Equal(t, Counts{}, counts)
	assert.Equal(t, 7, counts.Other(7))
}

func TestBasesOrder(t *testing.T) {
	got := Count("ATTGGGCCCC").Bases()

	assert.Equal(t, []BaseCount{
		{Base: "A", Count: 1},
		{Base: "T", Count: 2},
		{Base: "G", Count: 3},
		{Base: "C", Count: 4},
	}, got)
	assert.Equal(t, "A=1, T=2, G=3, C=4", Count("ATTGGGCCCC").String())
}

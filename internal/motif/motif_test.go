package motif

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		sequence string
		motif    string
		want     []int
	}{
		{"single hit", "GATTACA", "TTA", []int{2}},
		{"multiple hits", "ACGTACGT", "ACGT", []int{0, 4}},
		{"overlapping", "AAAA", "AA", []int{0, 1, 2}},
		{"whole sequence", "ACGT", "ACGT", []int{0}},
		{"no hit", "ACGT", "TTT", []int{}},
		{"case sensitive", "acgtACGT", "ACGT", []int{4}},
		{"motif longer than sequence", "ACG", "ACGT", []int{}},
		{"empty motif", "ACGT", "", []int{}},
		{"empty sequence", "", "A", []int{}},
		{"non-standard characters", "ANNANN", "NN", []int{1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Find(tt.sequence, tt.motif)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindSoundAndComplete(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bases := []byte("ACGT")

	for n := 0; n < 200; n++ {
		seq := randomBases(rng, bases, 1+rng.Intn(40))
		motif := randomBases(rng, bases, 1+rng.Intn(4))

		got := Find(seq, motif)

		want := make([]int, 0)
		for p := 0; p+len(motif) <= len(seq); p++ {
			if seq[p:p+len(motif)] == motif {
				want = append(want, p)
			}
		}
		assert.Equal(t, want, got, "seq=%s motif=%s", seq, motif)

		for i := 1; i < len(got); i++ {
			assert.Less(t, got[i-1], got[i])
		}
	}
}

func TestCountAndContains(t *testing.T) {
	assert.Equal(t, 3, Count("AAAA", "AA"))
	assert.Equal(t, 0, Count("AAAA", ""))
	assert.True(t, Contains("GATTACA", "TAC"))
	assert.False(t, Contains("GATTACA", "GGG"))
	assert.False(t, Contains("GATTACA", ""))
	assert.False(t, Contains("GA", "GAT"))
}

func randomBases(rng *rand.Rand, bases []byte, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = bases[rng.Intn(len(bases))]
	}
	return string(out)
}

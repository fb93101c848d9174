package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplement(t *testing.T) {
	tests := []struct {
		base rune
		want rune
	}{
		{'A', 'T'},
		{'T', 'A'},
		{'G', 'C'},
		{'C', 'G'},
		{'N', 'N'},
		{'a', 'a'},
		{'-', '-'},
	}

	for _, tt := range tests {
		t.Run(string(tt.base), func(t *testing.T) {
			assert.Equal(t, tt.want, Complement(tt.base))
		})
	}
}

func TestReverse(t *testing.T) {
	assert.Equal(t, "CGTA", Reverse("ATGC"))
	assert.Equal(t, "A", Reverse("A"))
	assert.Equal(t, "", Reverse(""))
}

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		name     string
		sequence string
		want     string
	}{
		{"ATGC", "ATGC", "GCAT"},
		{"palindrome", "GAATTC", "GAATTC"},
		{"simple", "AAGT", "ACTT"},
		{"unknown passes through", "ANGT", "ACNT"},
		{"lowercase untouched", "acgt", "tgca"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReverseComplement(tt.sequence))
		})
	}
}

func TestReverseComplementIsInvolution(t *testing.T) {
	for _, s := range []string{"ACGTTGCA", "GATTACA", "NNACGX", "T"} {
		assert.Equal(t, s, ReverseComplement(ReverseComplement(s)), s)
	}
}

func TestIsPalindrome(t *testing.T) {
	assert.True(t, IsPalindrome("ACGT"))
	assert.True(t, IsPalindrome("GAATTC"))
	assert.True(t, IsPalindrome("ANT"))
	assert.True(t, IsPalindrome(""))
	assert.False(t, IsPalindrome("AAAA"))
	assert.False(t, IsPalindrome("ACG"))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("ACGTACGT"))
	require.NoError(t, Validate(""))

	err := Validate("ACNGTn")
	require.Error(t, err)

	var baseErr *InvalidBaseError
	require.ErrorAs(t, err, &baseErr)
	assert.Equal(t, 2, baseErr.Position)
	assert.Equal(t, 'N', baseErr.Found)
	assert.Equal(t, 2, baseErr.Total)
	assert.Contains(t, err.Error(), "2 in total")
}

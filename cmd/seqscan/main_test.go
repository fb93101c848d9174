package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/seqscan/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := rootCmd()
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAnalyzeMatchesGolden(t *testing.T) {
	golden, err := os.ReadFile("../../internal/report/testdata/example.golden")
	require.NoError(t, err)

	out, _, err := execute(t, "analyze", "../../internal/report/testdata/example.fasta")
	require.NoError(t, err)
	assert.Equal(t, string(golden), out)
}

func TestRootRunsAnalyze(t *testing.T) {
	out, _, err := execute(t, "--workers", "2", "../../internal/report/testdata/example.fasta")
	require.NoError(t, err)
	assert.Contains(t, out, "Analysis for sequence: s1")
	assert.Contains(t, out, "Analysis for sequence: s2")
}

func TestAnalyzeJSON(t *testing.T) {
	out, _, err := execute(t, "analyze", "--format", "json", "../../internal/report/testdata/example.fasta")
	require.NoError(t, err)
	assert.Contains(t, out, `"sequence_id": "s1"`)
}

func TestAnalyzeMissingFile(t *testing.T) {
	_, _, err := execute(t, "analyze", filepath.Join(t.TempDir(), "missing.fasta"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening file")
}

func TestAnalyzeUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "analyze", "--format", "xml", "../../internal/report/testdata/example.fasta")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
}

func TestAnalyzeWarnsOnNonStandardBases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "n.fasta")
	require.NoError(t, os.WriteFile(path, []byte(">n1\nACNGT\n"), 0o644))

	out, stderr, err := execute(t, "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Length: 5 bp")
	assert.Contains(t, stderr, "non-standard bases")
}

func TestMotif(t *testing.T) {
	out, _, err := execute(t, "motif", "--seq", "AAAA", "--motif", "AA")
	require.NoError(t, err)
	assert.Equal(t, "sequence: 3 occurrences at positions [0, 1, 2]\n", out)

	_, _, err = execute(t, "motif", "--seq", "AAAA")
	require.Error(t, err)
}

func TestGC(t *testing.T) {
	out, _, err := execute(t, "gc", "--seq", "GGCN")
	require.NoError(t, err)
	assert.Equal(t, "sequence: 75.00% GC, A=0, T=0, G=2, C=1, other=1\n", out)
}

func TestRepeats(t *testing.T) {
	out, _, err := execute(t, "repeats", "--seq", "ACGTACGT")
	require.NoError(t, err)
	assert.Equal(t, "sequence: 1 repeats\n  ACGT: 2 occurrences at positions [0, 4]\n", out)

	_, _, err = execute(t, "repeats", "--seq", "ACGT", "--min-count", "0")
	require.Error(t, err)
}

func TestPalindromes(t *testing.T) {
	out, _, err := execute(t, "palindromes", "--seq", "GAATTC", "--max-length", "6")
	require.NoError(t, err)
	assert.Equal(t, "sequence: 2 palindromes\n  GAATTC at position 0\n  AATT at position 1\n", out)
}

func TestKmers(t *testing.T) {
	out, _, err := execute(t, "kmers", "--seq", "AAAT", "-k", "2", "-n", "1")
	require.NoError(t, err)
	assert.Equal(t, "sequence: 2 distinct of 3 total 2-mers\n  AA: 2\n", out)
}

func TestStats(t *testing.T) {
	out, _, err := execute(t, "stats", "../../internal/report/testdata/example.fasta")
	require.NoError(t, err)
	assert.Contains(t, out, "count: 2")
	assert.Contains(t, out, "total_bases: 17")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "seqscan version dev")
}

func TestApplyServeOverrides(t *testing.T) {
	cfg := config.Config{Server: config.ServerEnv{Host: "localhost", Port: 8080}}

	assert.Equal(t, "localhost:8080", applyServeOverrides(cfg, "", 0).Addr())
	assert.Equal(t, "0.0.0.0:9090", applyServeOverrides(cfg, "0.0.0.0", 9090).Addr())
}

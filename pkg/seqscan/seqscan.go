// Package seqscan provides a high-level API for scanning DNA sequences for
// motifs, repeats and reverse-complement palindromes.
//
// Example usage:
//
//	records, err := seqscan.ReadFASTA("example.fasta")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, rec := range records.All() {
//	    report := seqscan.Analyze(rec.ID, rec.Sequence)
//	    fmt.Printf("%s: GC %.2f%%\n", report.ID, report.GCContent)
//	}
package seqscan

import (
	"context"
	"io"

	"github.com/aria-lang/seqscan/internal/analysis"
	"github.com/aria-lang/seqscan/internal/composition"
	"github.com/aria-lang/seqscan/internal/fasta"
	"github.com/aria-lang/seqscan/internal/motif"
	"github.com/aria-lang/seqscan/internal/palindrome"
	"github.com/aria-lang/seqscan/internal/repeat"
	"github.com/aria-lang/seqscan/internal/report"
	"github.com/aria-lang/seqscan/internal/sequence"
	"github.com/aria-lang/seqscan/internal/stats"
)

// Re-export types for convenience
type (
	Records           = fasta.Records
	Record            = fasta.Record
	Report            = analysis.Report
	Options           = analysis.Options
	RepeatOptions     = repeat.Options
	RepeatTable       = repeat.Table
	PalindromeOptions = palindrome.Options
	Palindrome        = palindrome.Hit
	BaseCounts        = composition.Counts
	SetStats          = stats.SetStats
	ReportOptions     = report.Options
)

// MaxRepeatLength is the longest repeat ever reported.
const MaxRepeatLength = repeat.MaxLength

// ReadFASTA reads sequences from a FASTA file ("-" for stdin, ".gz" allowed).
func ReadFASTA(path string) (*Records, error) {
	return fasta.ReadFile(path)
}

// ParseFASTA parses FASTA format from a reader.
func ParseFASTA(r io.Reader) (*Records, error) {
	return fasta.Parse(r)
}

// FindMotif returns all (overlapping) start offsets of motif in seq.
func FindMotif(seq, m string) []int {
	return motif.Find(seq, m)
}

// GCContent returns the GC percentage of seq.
func GCContent(seq string) float64 {
	return composition.GCContent(seq)
}

// CountBases returns the A/T/G/C counts of seq.
func CountBases(seq string) BaseCounts {
	return composition.Count(seq)
}

// FindRepeats finds repeats with the given thresholds.
func FindRepeats(seq string, opts RepeatOptions) (*RepeatTable, error) {
	return repeat.Find(seq, opts)
}

// FindPalindromes finds reverse-complement palindromes in the given range.
func FindPalindromes(seq string, opts PalindromeOptions) ([]Palindrome, error) {
	return palindrome.Find(seq, opts)
}

// ReverseComplement returns the reverse complement of seq.
func ReverseComplement(seq string) string {
	return sequence.ReverseComplement(seq)
}

// DefaultOptions returns the default analysis thresholds.
func DefaultOptions() Options {
	return analysis.DefaultOptions()
}

// Analyze builds the default report for one sequence.
func Analyze(id, seq string) *Report {
	return analysis.Analyze(id, seq)
}

// AnalyzeWith builds a report with custom thresholds.
func AnalyzeWith(id, seq string, opts Options) (*Report, error) {
	return analysis.AnalyzeWith(id, seq, opts)
}

// AnalyzeAll analyzes every record with up to workers goroutines.
func AnalyzeAll(ctx context.Context, records *Records, opts Options, workers int) ([]*Report, error) {
	return analysis.AnalyzeAll(ctx, records.All(), opts, workers)
}

// Summarize aggregates a set of reports.
func Summarize(reports []*Report) (*SetStats, error) {
	return stats.FromReports(reports)
}

// WriteReports renders reports in the named format (text, json, yaml).
func WriteReports(w io.Writer, format string, reports []*Report, opts ReportOptions) error {
	return report.Write(format, w, reports, opts)
}

// Version returns the seqscan version.
func Version() string {
	return "1.0.0"
}

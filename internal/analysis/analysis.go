// Package analysis composes the scanners into one report per sequence.
package analysis

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/aria-lang/seqscan/internal/composition"
	"github.com/aria-lang/seqscan/internal/fasta"
	"github.com/aria-lang/seqscan/internal/palindrome"
	"github.com/aria-lang/seqscan/internal/repeat"
)

// Report is the analysis of a single sequence. It is built once and not
// modified afterwards.
type Report struct {
	ID          string             `json:"sequence_id" yaml:"sequence_id"`
	Length      int                `json:"length" yaml:"length"`
	GCContent   float64            `json:"gc_content" yaml:"gc_content"`
	Repeats     *repeat.Table      `json:"repeats" yaml:"repeats"`
	Palindromes []palindrome.Hit   `json:"palindromes" yaml:"palindromes"`
	Composition composition.Counts `json:"base_composition" yaml:"base_composition"`
}

// Options bundles the thresholds of the repeat and palindrome searches.
type Options struct {
	Repeats     repeat.Options     `json:"repeats" yaml:"repeats"`
	Palindromes palindrome.Options `json:"palindromes" yaml:"palindromes"`
}

// DefaultOptions returns the default thresholds of both finders.
func DefaultOptions() Options {
	return Options{
		Repeats:     repeat.DefaultOptions(),
		Palindromes: palindrome.DefaultOptions(),
	}
}

// Validate checks both option sets.
func (o Options) Validate() error {
	if err := o.Repeats.Validate(); err != nil {
		return err
	}
	return o.Palindromes.Validate()
}

// Analyze builds the report for one sequence with default thresholds.
func Analyze(id, seq string) *Report {
	return &Report{
		ID:          id,
		Length:      len(seq),
		GCContent:   composition.GCContent(seq),
		Repeats:     repeat.FindDefault(seq),
		Palindromes: palindrome.FindDefault(seq),
		Composition: composition.Count(seq),
	}
}

// AnalyzeWith builds the report for one sequence with custom thresholds.
func AnalyzeWith(id, seq string, opts Options) (*Report, error) {
	repeats, err := repeat.Find(seq, opts.Repeats)
	if err != nil {
		return nil, fmt.Errorf("finding repeats in %s: %w", id, err)
	}

	palindromes, err := palindrome.Find(seq, opts.Palindromes)
	if err != nil {
		return nil, fmt.Errorf("finding palindromes in %s: %w", id, err)
	}

	return &Report{
		ID:          id,
		Length:      len(seq),
		GCContent:   composition.GCContent(seq),
		Repeats:     repeats,
		Palindromes: palindromes,
		Composition: composition.Count(seq),
	}, nil
}

// AnalyzeAll analyzes every record with up to workers goroutines. Reports
// come back in record order. The first failure, or cancellation of ctx,
// stops the remaining work.
func AnalyzeAll(ctx context.Context, records []fasta.Record, opts Options, workers int) ([]*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	reports := make([]*Report, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := AnalyzeWith(rec.ID, rec.Sequence, opts)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aria-lang/seqscan/internal/composition"
	"github.com/aria-lang/seqscan/internal/kmer"
	"github.com/aria-lang/seqscan/internal/motif"
	"github.com/aria-lang/seqscan/internal/palindrome"
	"github.com/aria-lang/seqscan/internal/repeat"
)

func motifCmd(g *globals) *cobra.Command {
	var (
		in      inputFlags
		pattern string
	)

	cmd := &cobra.Command{
		Use:   "motif [file]",
		Short: "Print every (overlapping) offset of a motif",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern == "" {
				return fmt.Errorf("--motif is required")
			}
			cfg, logger, err := setup(cmd, g)
			if err != nil {
				return err
			}
			records, err := in.load(cfg, logger, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, rec := range records {
				positions := motif.Find(rec.Sequence, pattern)
				fmt.Fprintf(out, "%s: %d occurrences at positions %s\n", rec.ID, len(positions), formatInts(positions))
			}
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&pattern, "motif", "m", "", "Motif to search for")

	return cmd
}

func gcCmd(g *globals) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "gc [file]",
		Short: "Print GC content and base composition",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, g)
			if err != nil {
				return err
			}
			records, err := in.load(cfg, logger, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, rec := range records {
				counts := composition.Count(rec.Sequence)
				fmt.Fprintf(out, "%s: %.2f%% GC, %s", rec.ID, composition.GCContent(rec.Sequence), counts)
				if other := counts.Other(len(rec.Sequence)); other > 0 {
					fmt.Fprintf(out, ", other=%d", other)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	in.register(cmd)

	return cmd
}

func repeatsCmd(g *globals) *cobra.Command {
	var (
		in   inputFlags
		opts = repeat.DefaultOptions()
	)

	cmd := &cobra.Command{
		Use:   "repeats [file]",
		Short: "Print substrings that occur more than once",
		Long: fmt.Sprintf(`Print substrings of length min-length..%d that occur at least
min-count times, in discovery order. Flags override SEQSCAN_REPEAT_*.`, repeat.MaxLength),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, g)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("min-length") {
				opts.MinLength = cfg.Repeat.MinLength
			}
			if !cmd.Flags().Changed("min-count") {
				opts.MinCount = cfg.Repeat.MinCount
			}
			if !cmd.Flags().Changed("indexed") {
				opts.Indexed = cfg.Repeat.Indexed
			}

			records, err := in.load(cfg, logger, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, rec := range records {
				table, err := repeat.Find(rec.Sequence, opts)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %d repeats\n", rec.ID, table.Len())
				for _, e := range table.Entries() {
					fmt.Fprintf(out, "  %s: %d occurrences at positions %s\n", e.Repeat, len(e.Positions), formatInts(e.Positions))
				}
			}
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().IntVar(&opts.MinLength, "min-length", opts.MinLength, "Shortest repeat searched")
	cmd.Flags().IntVar(&opts.MinCount, "min-count", opts.MinCount, "Fewest occurrences reported")
	cmd.Flags().BoolVar(&opts.Indexed, "indexed", opts.Indexed, "Use the k-mer index")

	return cmd
}

func palindromesCmd(g *globals) *cobra.Command {
	var (
		in   inputFlags
		opts = palindrome.DefaultOptions()
	)

	cmd := &cobra.Command{
		Use:   "palindromes [file]",
		Short: "Print reverse-complement palindromes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, g)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("min-length") {
				opts.MinLength = cfg.Palindrome.MinLength
			}
			if !cmd.Flags().Changed("max-length") {
				opts.MaxLength = cfg.Palindrome.MaxLength
			}

			records, err := in.load(cfg, logger, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, rec := range records {
				hits, err := palindrome.Find(rec.Sequence, opts)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %d palindromes\n", rec.ID, len(hits))
				for _, h := range hits {
					fmt.Fprintf(out, "  %s\n", h)
				}
			}
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().IntVar(&opts.MinLength, "min-length", opts.MinLength, "Shortest window checked")
	cmd.Flags().IntVar(&opts.MaxLength, "max-length", opts.MaxLength, "Longest window checked")

	return cmd
}

func kmersCmd(g *globals) *cobra.Command {
	var (
		in  inputFlags
		k   int
		top int
	)

	cmd := &cobra.Command{
		Use:   "kmers [file]",
		Short: "Print the most frequent k-mers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, g)
			if err != nil {
				return err
			}
			records, err := in.load(cfg, logger, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, rec := range records {
				idx, err := kmer.NewIndex(rec.Sequence, k)
				if err != nil {
					return fmt.Errorf("%s: %w", rec.ID, err)
				}
				frequent, err := idx.MostFrequent(top)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %d distinct of %d total %d-mers\n", rec.ID, idx.UniqueCount(), idx.Total, k)
				for _, kp := range frequent {
					fmt.Fprintf(out, "  %s: %d\n", kp.KMer, len(kp.Positions))
				}
			}
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().IntVarP(&k, "size", "k", 4, "K-mer length")
	cmd.Flags().IntVarP(&top, "top", "n", 10, "Number of k-mers printed")

	return cmd
}

// formatInts renders offsets as "[0, 4]".
func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aria-lang/seqscan/internal/analysis"
	"github.com/aria-lang/seqscan/internal/config"
	"github.com/aria-lang/seqscan/internal/report"
	"github.com/aria-lang/seqscan/internal/stats"
)

// analyzeFlags overrides configuration for the full report.
type analyzeFlags struct {
	format          string
	workers         int
	indexed         bool
	color           bool
	minRepeatLength int
	summary         bool
}

func (f *analyzeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "o", "", "Report format: "+strings.Join(report.Formats(), ", ")+" (default: text)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "Sequences analyzed concurrently (default: 1)")
	cmd.Flags().BoolVar(&f.indexed, "indexed", false, "Use the k-mer index for the repeat search")
	cmd.Flags().BoolVar(&f.color, "color", false, "Style text report headings")
	cmd.Flags().IntVar(&f.minRepeatLength, "min-repeat-length", 0, "Shortest repeat printed in the text report (default: 6)")
	cmd.Flags().BoolVar(&f.summary, "summary", false, "Log a summary of the whole set after the reports")
}

// apply copies explicitly set flags over cfg.
func (f analyzeFlags) apply(cmd *cobra.Command, cfg config.Config) config.Config {
	if cmd.Flags().Changed("format") {
		cfg.Format = strings.ToLower(f.format)
	}
	if cmd.Flags().Changed("workers") && f.workers > 0 {
		cfg.Workers = f.workers
	}
	if cmd.Flags().Changed("indexed") {
		cfg.Repeat.Indexed = f.indexed
	}
	if cmd.Flags().Changed("color") {
		cfg.Report.Color = f.color
	}
	if cmd.Flags().Changed("min-repeat-length") {
		cfg.Report.MinRepeatLength = f.minRepeatLength
	}
	return cfg
}

func analyzeCmd(g *globals) *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze every sequence of a FASTA file",
		Long: `Analyze every sequence of a FASTA file and print one report per record.

A path of "-" reads standard input and a ".gz" suffix is decompressed.

Environment variables:
  SEQSCAN_INPUT                       FASTA file used when no path is given (default: example.fasta)
  SEQSCAN_FORMAT                      Report format: text, json, yaml (default: text)
  SEQSCAN_WORKERS                     Sequences analyzed concurrently (default: 1)
  SEQSCAN_REPEAT_MIN_LENGTH           Shortest repeat searched (default: 4)
  SEQSCAN_REPEAT_MIN_COUNT            Fewest occurrences of a repeat (default: 2)
  SEQSCAN_REPEAT_INDEXED              Use the k-mer index (default: false)
  SEQSCAN_PALINDROME_MIN_LENGTH       Shortest palindrome window (default: 4)
  SEQSCAN_PALINDROME_MAX_LENGTH       Longest palindrome window (default: 12)
  SEQSCAN_REPORT_MIN_REPEAT_LENGTH    Shortest repeat printed (default: 6)
  SEQSCAN_REPORT_COLOR                Style text headings (default: false)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, g, flags, args)
		},
	}
	flags.register(cmd)

	return cmd
}

func runAnalyze(cmd *cobra.Command, g *globals, flags analyzeFlags, args []string) error {
	cfg, logger, err := setup(cmd, g)
	if err != nil {
		return err
	}
	cfg = flags.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	records, err := readRecords(inputPath("", cfg, args), logger)
	if err != nil {
		return err
	}

	reports, err := analysis.AnalyzeAll(cmd.Context(), records, cfg.AnalysisOptions(), cfg.Workers)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if err := report.Write(cfg.Format, cmd.OutOrStdout(), reports, cfg.ReportOptions()); err != nil {
		return err
	}

	if flags.summary && len(reports) > 0 {
		summary, err := stats.FromReports(reports)
		if err != nil {
			return err
		}
		logger.Info("summary",
			"sequences", summary.Count,
			"bases", summary.TotalBases,
			"mean_gc", fmt.Sprintf("%.2f", summary.MeanGCContent),
			"n50", summary.N50,
		)
	}
	return nil
}

func statsCmd(g *globals) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Summarize a FASTA file",
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
			if len(records) == 0 {
				return fmt.Errorf("no sequences found")
			}

			reports, err := analysis.AnalyzeAll(cmd.Context(), records, cfg.AnalysisOptions(), cfg.Workers)
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}
			summary, err := stats.FromReports(reports)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary.String())
			return nil
		},
	}
	in.register(cmd)

	return cmd
}

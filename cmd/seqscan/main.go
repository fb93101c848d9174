// Package main is the entry point for the seqscan CLI.
//
// Running seqscan with no subcommand analyzes the configured FASTA file
// (example.fasta by default) and prints the text report.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aria-lang/seqscan/internal/config"
	"github.com/aria-lang/seqscan/internal/fasta"
	applog "github.com/aria-lang/seqscan/internal/log"
	"github.com/aria-lang/seqscan/internal/sequence"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	envFile   string
	logLevel  string
	logFormat string
}

func rootCmd() *cobra.Command {
	g := &globals{}
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "seqscan [file]",
		Short: "Scan DNA sequences for motifs, repeats and palindromes",
		Long: `seqscan reads FASTA files and reports, per sequence, the length, GC
content, base composition, repeated substrings and reverse-complement
palindromes.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. SEQSCAN_* environment variables
  4. Command line flags`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, g, flags, args)
		},
	}

	cmd.PersistentFlags().StringVar(&g.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error (default: info)")
	cmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "Log format: text, json, logfmt (default: text)")
	flags.register(cmd)

	cmd.AddCommand(analyzeCmd(g))
	cmd.AddCommand(motifCmd(g))
	cmd.AddCommand(gcCmd(g))
	cmd.AddCommand(repeatsCmd(g))
	cmd.AddCommand(palindromesCmd(g))
	cmd.AddCommand(kmersCmd(g))
	cmd.AddCommand(statsCmd(g))
	cmd.AddCommand(serveCmd(g))
	cmd.AddCommand(versionCmd())

	return cmd
}

// setup loads configuration and builds the logger. Logs go to stderr so
// reports on stdout stay parseable.
func setup(cmd *cobra.Command, g *globals) (config.Config, *log.Logger, error) {
	cfg, err := config.LoadConfig(g.envFile)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	if g.logFormat != "" {
		cfg.LogFormat = g.logFormat
	}

	logger, err := applog.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

// inputFlags selects a literal sequence or a FASTA file.
type inputFlags struct {
	seq  string
	file string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.seq, "seq", "s", "", "Literal sequence to scan instead of a FASTA file")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "FASTA file to scan (default: SEQSCAN_INPUT)")
}

// load returns the records to scan. A literal sequence wins over a file;
// with neither, the first positional argument or the configured input is read.
func (f inputFlags) load(cfg config.Config, logger *log.Logger, args []string) ([]fasta.Record, error) {
	if f.seq != "" {
		return []fasta.Record{{ID: "sequence", Sequence: f.seq}}, nil
	}
	return readRecords(inputPath(f.file, cfg, args), logger)
}

func inputPath(file string, cfg config.Config, args []string) string {
	switch {
	case file != "":
		return file
	case len(args) > 0:
		return args[0]
	default:
		return cfg.Input
	}
}

// readRecords parses path and warns about records with non-standard bases.
// Such records are still scanned.
func readRecords(path string, logger *log.Logger) ([]fasta.Record, error) {
	records, err := fasta.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("read fasta", "path", path, "records", records.Len())

	all := records.All()
	for _, rec := range all {
		if err := sequence.Validate(rec.Sequence); err != nil {
			logger.Warn("non-standard bases", "id", rec.ID, "err", err)
		}
	}
	return all, nil
}

// Package config provides application configuration.
//
// Values come from, in increasing precedence: struct tag defaults, an
// optional .env file, SEQSCAN_* environment variables, and command line
// flags applied by the caller.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/aria-lang/seqscan/internal/analysis"
	"github.com/aria-lang/seqscan/internal/palindrome"
	"github.com/aria-lang/seqscan/internal/report"
	"github.com/aria-lang/seqscan/internal/repeat"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SEQSCAN"

// Defaults shared by struct tags and callers. Struct tag defaults must be
// literals; config_test.go keeps the two in sync.
const (
	DefaultInput             = "example.fasta"
	DefaultFormat            = "text"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultWorkers           = 1
	DefaultHost              = "localhost"
	DefaultPort              = 8080
	DefaultMaxSequenceLength = 5000
	DefaultMaxBodyBytes      = 1 << 20
)

// Config holds all environment-based configuration.
type Config struct {
	// Input is the FASTA file analyzed when no path is given.
	// Env: SEQSCAN_INPUT (default: example.fasta)
	Input string `envconfig:"INPUT" default:"example.fasta"`

	// Format selects the report writer: text, json or yaml.
	// Env: SEQSCAN_FORMAT (default: text)
	Format string `envconfig:"FORMAT" default:"text"`

	// LogLevel is debug, info, warn or error.
	// Env: SEQSCAN_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is text or json.
	// Env: SEQSCAN_LOG_FORMAT (default: text)
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	// Workers bounds the number of sequences analyzed concurrently.
	// Env: SEQSCAN_WORKERS (default: 1)
	Workers int `envconfig:"WORKERS" default:"1"`

	Repeat     RepeatEnv     `envconfig:"REPEAT"`
	Palindrome PalindromeEnv `envconfig:"PALINDROME"`
	Report     ReportEnv     `envconfig:"REPORT"`
	Server     ServerEnv     `envconfig:"SERVER"`
}

// RepeatEnv configures the repeat search.
type RepeatEnv struct {
	// Env: SEQSCAN_REPEAT_MIN_LENGTH (default: 4)
	MinLength int `envconfig:"MIN_LENGTH" default:"4"`
	// Env: SEQSCAN_REPEAT_MIN_COUNT (default: 2)
	MinCount int `envconfig:"MIN_COUNT" default:"2"`
	// Indexed enables the k-mer index search. Output is unchanged.
	// Env: SEQSCAN_REPEAT_INDEXED (default: false)
	Indexed bool `envconfig:"INDEXED" default:"false"`
}

// PalindromeEnv configures the palindrome search.
type PalindromeEnv struct {
	// Env: SEQSCAN_PALINDROME_MIN_LENGTH (default: 4)
	MinLength int `envconfig:"MIN_LENGTH" default:"4"`
	// Env: SEQSCAN_PALINDROME_MAX_LENGTH (default: 12)
	MaxLength int `envconfig:"MAX_LENGTH" default:"12"`
}

// ReportEnv configures report rendering.
type ReportEnv struct {
	// MinRepeatLength hides shorter repeats from the text report.
	// Env: SEQSCAN_REPORT_MIN_REPEAT_LENGTH (default: 6)
	MinRepeatLength int `envconfig:"MIN_REPEAT_LENGTH" default:"6"`
	// Env: SEQSCAN_REPORT_COLOR (default: false)
	Color bool `envconfig:"COLOR" default:"false"`
}

// ServerEnv configures the HTTP API.
type ServerEnv struct {
	// Env: SEQSCAN_SERVER_HOST (default: localhost)
	Host string `envconfig:"HOST" default:"localhost"`
	// Env: SEQSCAN_SERVER_PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`
	// MaxSequenceLength rejects longer sequences; repeat search is cubic.
	// Env: SEQSCAN_SERVER_MAX_SEQUENCE_LENGTH (default: 5000)
	MaxSequenceLength int `envconfig:"MAX_SEQUENCE_LENGTH" default:"5000"`
	// Env: SEQSCAN_SERVER_MAX_BODY_BYTES (default: 1048576)
	MaxBodyBytes int64 `envconfig:"MAX_BODY_BYTES" default:"1048576"`
}

// LoadFromEnv reads SEQSCAN_* environment variables.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// LoadConfig loads the optional .env file, then the environment, and
// validates the result.
func LoadConfig(envPath string) (Config, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}

	cfg, err := LoadFromEnv()
	if err != nil {
		return Config{}, err
	}

	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize lower-cases enumerated values and clamps Workers to at least 1.
func (c Config) Normalize() Config {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c
}

// Validate checks thresholds and enumerated values.
func (c Config) Validate() error {
	if err := c.AnalysisOptions().Validate(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.Server.MaxSequenceLength < 1 {
		return fmt.Errorf("max sequence length must be positive, got %d", c.Server.MaxSequenceLength)
	}
	return nil
}

// AnalysisOptions converts the search settings.
func (c Config) AnalysisOptions() analysis.Options {
	return analysis.Options{
		Repeats: repeat.Options{
			MinLength: c.Repeat.MinLength,
			MinCount:  c.Repeat.MinCount,
			Indexed:   c.Repeat.Indexed,
		},
		Palindromes: palindrome.Options{
			MinLength: c.Palindrome.MinLength,
			MaxLength: c.Palindrome.MaxLength,
		},
	}
}

// ReportOptions converts the rendering settings.
func (c Config) ReportOptions() report.Options {
	return report.Options{
		MinRepeatLength: c.Report.MinRepeatLength,
		Color:           c.Report.Color,
	}
}

// Addr returns host:port for the HTTP API.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

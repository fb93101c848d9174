package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aria-lang/seqscan/internal/analysis"
)

// WriteJSON encodes the reports as an indented JSON array. Every repeat is
// included.
func WriteJSON(w io.Writer, reports []*analysis.Report, _ Options) error {
	if reports == nil {
		reports = []*analysis.Report{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// WriteYAML encodes the reports as a YAML sequence. Every repeat is included.
func WriteYAML(w io.Writer, reports []*analysis.Report, _ Options) error {
	if reports == nil {
		reports = []*analysis.Report{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

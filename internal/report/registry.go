// Package report renders analysis reports. Writers are registered per
// format name; text, json and yaml are built in.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/aria-lang/seqscan/internal/analysis"
)

// DefaultMinRepeatLength hides shorter repeats from the text report. The
// underlying reports keep every repeat.
const DefaultMinRepeatLength = 6

// Options tunes rendering.
type Options struct {
	MinRepeatLength int
	Color           bool
}

// DefaultOptions returns the console defaults.
func DefaultOptions() Options {
	return Options{MinRepeatLength: DefaultMinRepeatLength}
}

// WriterFunc renders reports to w.
type WriterFunc func(w io.Writer, reports []*analysis.Report, opts Options) error

var writers = map[string]WriterFunc{}

// Register installs fn for format. Registering a format again replaces it.
func Register(format string, fn WriterFunc) {
	writers[format] = fn
}

// Formats lists the registered format names.
func Formats() []string {
	out := make([]string, 0, len(writers))
	for f := range writers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write renders reports with the writer registered for format.
func Write(format string, w io.Writer, reports []*analysis.Report, opts Options) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, reports, opts)
}

func init() {
	Register("text", WriteText)
	Register("json", WriteJSON)
	Register("yaml", WriteYAML)
}

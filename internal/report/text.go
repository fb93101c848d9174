package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aria-lang/seqscan/internal/analysis"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// WriteText prints the human-readable console report. Repeats shorter than
// opts.MinRepeatLength are omitted.
func WriteText(w io.Writer, reports []*analysis.Report, opts Options) error {
	bw := bufio.NewWriter(w)

	heading := func(s string) string {
		if opts.Color {
			return headingStyle.Render(s)
		}
		return s
	}

	for _, r := range reports {
		fmt.Fprintf(bw, "\n%s\n", heading("Analysis for sequence: "+r.ID))
		fmt.Fprintf(bw, "Length: %d bp\n", r.Length)
		fmt.Fprintf(bw, "GC Content: %.2f%%\n", r.GCContent)

		fmt.Fprintf(bw, "\n%s\n", heading("Base Composition:"))
		for _, bc := range r.Composition.Bases() {
			fmt.Fprintf(bw, "%s: %d\n", bc.Base, bc.Count)
		}

		fmt.Fprintf(bw, "\n%s\n", heading("Repeated Sequences:"))
		if r.Repeats != nil {
			for _, e := range r.Repeats.Filter(opts.MinRepeatLength).Entries() {
				fmt.Fprintf(bw, "%s: %d occurrences at positions %s\n", e.Repeat, len(e.Positions), formatPositions(e.Positions))
			}
		}

		fmt.Fprintf(bw, "\n%s\n", heading("Palindromic Sequences:"))
		for _, p := range r.Palindromes {
			fmt.Fprintf(bw, "%s\n", p)
		}
	}

	return bw.Flush()
}

// formatPositions renders offsets as "[0, 4, 9]".
func formatPositions(positions []int) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = strconv.Itoa(p)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

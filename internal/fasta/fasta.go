// Package fasta reads FASTA text into an ordered identifier -> sequence mapping.
//
// Parsing is deliberately permissive. Sequence lines that appear before the
// first header are dropped, and a header with an empty identifier opens a
// record that is never emitted. When an identifier repeats, the later record
// replaces the earlier sequence but keeps the earlier position.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// HeaderPrefix marks the start of a new record.
const HeaderPrefix = '>'

// maxLineSize bounds a single input line. Unwrapped FASTA files put the whole
// sequence on one line.
const maxLineSize = 16 * 1024 * 1024

// Record is one identifier and its concatenated sequence.
type Record struct {
	ID       string `json:"id" yaml:"id"`
	Sequence string `json:"sequence" yaml:"sequence"`
}

// Records is an insertion-ordered mapping from identifier to sequence.
type Records struct {
	ids  []string
	seqs map[string]string
}

// NewRecords returns an empty mapping.
func NewRecords() *Records {
	return &Records{seqs: make(map[string]string)}
}

// Set stores seq under id. An existing id keeps its position.
func (r *Records) Set(id, seq string) {
	if _, ok := r.seqs[id]; !ok {
		r.ids = append(r.ids, id)
	}
	r.seqs[id] = seq
}

// Get returns the sequence stored for id.
func (r *Records) Get(id string) (string, bool) {
	seq, ok := r.seqs[id]
	return seq, ok
}

// Len returns the number of distinct identifiers.
func (r *Records) Len() int {
	return len(r.ids)
}

// IDs returns the identifiers in first-seen order.
func (r *Records) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// All returns every record in first-seen order.
func (r *Records) All() []Record {
	out := make([]Record, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, Record{ID: id, Sequence: r.seqs[id]})
	}
	return out
}

// Map returns a copy of the mapping without ordering.
func (r *Records) Map() map[string]string {
	out := make(map[string]string, len(r.seqs))
	for id, seq := range r.seqs {
		out[id] = seq
	}
	return out
}

// ReadFile parses the FASTA file at path. "-" reads standard input and a
// ".gz" suffix is decompressed on the fly.
func ReadFile(path string) (*Records, error) {
	rc, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer rc.Close()

	records, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

// Parse reads FASTA records from r.
func Parse(r io.Reader) (*Records, error) {
	records := NewRecords()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var currentID string
	var currentSeq strings.Builder

	flush := func() {
		if currentID != "" {
			records.Set(currentID, currentSeq.String())
		}
		currentSeq.Reset()
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) > 0 && line[0] == HeaderPrefix {
			flush()
			currentID = strings.TrimSpace(line[1:])
			continue
		}
		if currentID != "" {
			currentSeq.WriteString(line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	flush()
	return records, nil
}

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, err
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}
	return fh, nil
}

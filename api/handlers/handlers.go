// Package handlers provides HTTP handlers for the seqscan API.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/aria-lang/seqscan/pkg/seqscan"
)

// Handlers serves the analysis endpoints. Every request is independent;
// the struct only carries limits and defaults.
type Handlers struct {
	opts              seqscan.Options
	maxSequenceLength int
	workers           int
	logger            *log.Logger
}

// New creates handlers using opts as default thresholds. Sequences longer
// than maxSequenceLength are rejected.
func New(opts seqscan.Options, maxSequenceLength, workers int, logger *log.Logger) *Handlers {
	if workers < 1 {
		workers = 1
	}
	return &Handlers{
		opts:              opts,
		maxSequenceLength: maxSequenceLength,
		workers:           workers,
		logger:            logger,
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// decode reads a JSON body into v, answering the request itself on failure.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// checkLength rejects sequences above the configured limit.
func (h *Handlers) checkLength(w http.ResponseWriter, id, seq string) bool {
	if h.maxSequenceLength > 0 && len(seq) > h.maxSequenceLength {
		msg := fmt.Sprintf("sequence length %d exceeds limit %d", len(seq), h.maxSequenceLength)
		if id != "" {
			msg = id + ": " + msg
		}
		writeError(w, http.StatusRequestEntityTooLarge, msg)
		return false
	}
	return true
}

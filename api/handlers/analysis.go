package handlers

import (
	"errors"
	"net/http"

	"github.com/aria-lang/seqscan/pkg/seqscan"
)

// RepeatsRequest asks for repeats. Zero thresholds use the server defaults.
type RepeatsRequest struct {
	Sequence  string `json:"sequence"`
	MinLength int    `json:"min_length,omitempty"`
	MinCount  int    `json:"min_count,omitempty"`
	Indexed   bool   `json:"indexed,omitempty"`
}

// RepeatsResponse holds the repeat table in discovery order.
type RepeatsResponse struct {
	Options seqscan.RepeatOptions `json:"options"`
	Count   int                   `json:"count"`
	Repeats *seqscan.RepeatTable  `json:"repeats"`
}

// Repeats handles repeat search requests.
func (h *Handlers) Repeats(w http.ResponseWriter, r *http.Request) {
	var req RepeatsRequest
	if !decode(w, r, &req) {
		return
	}
	if !h.checkLength(w, "", req.Sequence) {
		return
	}

	opts := h.opts.Repeats
	if req.MinLength != 0 {
		opts.MinLength = req.MinLength
	}
	if req.MinCount != 0 {
		opts.MinCount = req.MinCount
	}
	opts.Indexed = opts.Indexed || req.Indexed

	table, err := seqscan.FindRepeats(req.Sequence, opts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, RepeatsResponse{
		Options: opts,
		Count:   table.Len(),
		Repeats: table,
	})
}

// PalindromesRequest asks for palindromes. Zero lengths use the server
// defaults.
type PalindromesRequest struct {
	Sequence  string `json:"sequence"`
	MinLength int    `json:"min_length,omitempty"`
	MaxLength int    `json:"max_length,omitempty"`
}

// PalindromesResponse lists palindromes in scan order.
type PalindromesResponse struct {
	Options     seqscan.PalindromeOptions `json:"options"`
	Count       int                       `json:"count"`
	Palindromes []seqscan.Palindrome      `json:"palindromes"`
}

// Palindromes handles palindrome search requests.
func (h *Handlers) Palindromes(w http.ResponseWriter, r *http.Request) {
	var req PalindromesRequest
	if !decode(w, r, &req) {
		return
	}
	if !h.checkLength(w, "", req.Sequence) {
		return
	}

	opts := h.opts.Palindromes
	if req.MinLength != 0 {
		opts.MinLength = req.MinLength
	}
	if req.MaxLength != 0 {
		opts.MaxLength = req.MaxLength
	}

	hits, err := seqscan.FindPalindromes(req.Sequence, opts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, PalindromesResponse{
		Options:     opts,
		Count:       len(hits),
		Palindromes: hits,
	})
}

// Analyze handles full single-sequence analysis requests.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !decode(w, r, &req) {
		return
	}
	if !h.checkLength(w, req.ID, req.Sequence) {
		return
	}

	id := req.ID
	if id == "" {
		id = "sequence"
	}

	report, err := seqscan.AnalyzeWith(id, req.Sequence, h.opts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// FASTAResponse holds one report per record and the set summary.
type FASTAResponse struct {
	Reports []*seqscan.Report `json:"reports"`
	Summary *seqscan.SetStats `json:"summary,omitempty"`
}

// FASTA analyzes every record of a FASTA request body.
func (h *Handlers) FASTA(w http.ResponseWriter, r *http.Request) {
	records, err := seqscan.ParseFASTA(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid FASTA body: "+err.Error())
		return
	}

	for _, rec := range records.All() {
		if !h.checkLength(w, rec.ID, rec.Sequence) {
			return
		}
	}

	reports, err := seqscan.AnalyzeAll(r.Context(), records, h.opts, h.workers)
	if err != nil {
		h.logger.Error("fasta analysis failed", "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := FASTAResponse{Reports: reports}
	if len(reports) > 0 {
		summary, err := seqscan.Summarize(reports)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.Summary = summary
	}

	h.logger.Debug("analyzed fasta", "records", len(reports))
	writeJSON(w, http.StatusOK, resp)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/aria-lang/seqscan/internal/sequence"
	"github.com/aria-lang/seqscan/pkg/seqscan"
)

// SequenceRequest represents a request with a sequence.
type SequenceRequest struct {
	ID       string `json:"id,omitempty"`
	Sequence string `json:"sequence"`
}

// MotifRequest asks for the offsets of a motif.
type MotifRequest struct {
	Sequence string `json:"sequence"`
	Motif    string `json:"motif"`
}

// MotifResponse lists motif offsets.
type MotifResponse struct {
	Motif     string `json:"motif"`
	Count     int    `json:"count"`
	Positions []int  `json:"positions"`
}

// Motif handles motif search requests.
func (h *Handlers) Motif(w http.ResponseWriter, r *http.Request) {
	var req MotifRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Motif == "" {
		writeError(w, http.StatusBadRequest, "motif cannot be empty")
		return
	}
	if !h.checkLength(w, "", req.Sequence) {
		return
	}

	positions := seqscan.FindMotif(req.Sequence, req.Motif)
	writeJSON(w, http.StatusOK, MotifResponse{
		Motif:     req.Motif,
		Count:     len(positions),
		Positions: positions,
	})
}

// GCContentResponse represents the response for GC content.
type GCContentResponse struct {
	Length      int                `json:"length"`
	GCContent   float64            `json:"gc_content"`
	Composition seqscan.BaseCounts `json:"base_composition"`
}

// GCContent handles GC content calculation requests.
func (h *Handlers) GCContent(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !decode(w, r, &req) {
		return
	}
	if !h.checkLength(w, req.ID, req.Sequence) {
		return
	}

	writeJSON(w, http.StatusOK, GCContentResponse{
		Length:      len(req.Sequence),
		GCContent:   seqscan.GCContent(req.Sequence),
		Composition: seqscan.CountBases(req.Sequence),
	})
}

// ReverseComplementResponse represents the response for reverse complement.
type ReverseComplementResponse struct {
	ReverseComplement string `json:"reverse_complement"`
	Palindromic       bool   `json:"palindromic"`
}

// ReverseComplement handles reverse complement requests.
func (h *Handlers) ReverseComplement(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !decode(w, r, &req) {
		return
	}
	if !h.checkLength(w, req.ID, req.Sequence) {
		return
	}

	rc := seqscan.ReverseComplement(req.Sequence)
	writeJSON(w, http.StatusOK, ReverseComplementResponse{
		ReverseComplement: rc,
		Palindromic:       rc == req.Sequence,
	})
}

// ValidateResponse represents validation result.
type ValidateResponse struct {
	Valid    bool   `json:"valid"`
	Message  string `json:"message,omitempty"`
	Position *int   `json:"position,omitempty"`
}

// Validate reports whether a sequence uses only A, C, G, T. Non-standard
// characters are accepted by every other endpoint.
func (h *Handlers) Validate(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !decode(w, r, &req) {
		return
	}

	err := sequence.Validate(req.Sequence)
	if err == nil {
		writeJSON(w, http.StatusOK, ValidateResponse{Valid: true})
		return
	}

	resp := ValidateResponse{Valid: false, Message: err.Error()}
	var baseErr *sequence.InvalidBaseError
	if errors.As(err, &baseErr) {
		resp.Position = &baseErr.Position
	}
	writeJSON(w, http.StatusOK, resp)
}

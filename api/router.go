// Package api assembles the seqscan HTTP API.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aria-lang/seqscan/api/handlers"
	"github.com/aria-lang/seqscan/api/middleware"
	"github.com/aria-lang/seqscan/pkg/seqscan"
)

// Settings configures the router.
type Settings struct {
	Options           seqscan.Options
	MaxSequenceLength int
	MaxBodyBytes      int64
	Workers           int
	Timeout           time.Duration
}

// NewRouter builds the chi router with all API routes.
func NewRouter(s Settings, logger *log.Logger) http.Handler {
	h := handlers.New(s.Options, s.MaxSequenceLength, s.Workers, logger)

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))
	if s.MaxBodyBytes > 0 {
		r.Use(middleware.MaxBodySize(s.MaxBodyBytes))
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze", h.Analyze)
		r.Post("/fasta", h.FASTA)
		r.Post("/motif", h.Motif)
		r.Post("/repeats", h.Repeats)
		r.Post("/palindromes", h.Palindromes)

		r.Route("/sequence", func(r chi.Router) {
			r.Post("/gc-content", h.GCContent)
			r.Post("/reverse-complement", h.ReverseComplement)
			r.Post("/validate", h.Validate)
		})
	})

	return r
}

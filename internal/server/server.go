package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/rizeos/skill-match/internal/config"
	"github.com/rizeos/skill-match/internal/embedding"
	"github.com/rizeos/skill-match/internal/extract"
	"github.com/rizeos/skill-match/internal/nlp"
	"github.com/rizeos/skill-match/internal/pdftext"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	validate   *validator.Validate
	pdf        pdftext.Extractor
	pipeline   *extract.Pipeline

	// Capability providers are initialized lazily, at most once, on first
	// use; after that they are read-only and shared across requests.
	newEmbedder func(ctx context.Context) (embedding.Provider, error)
	embedOnce   sync.Once
	embedder    embedding.Provider
	embedErr    error

	newTagger func(ctx context.Context) (nlp.Provider, error)
	tagOnce   sync.Once
	tagger    nlp.Provider
	tagErr    error
}

// New creates a new server instance.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:      cfg,
		validate: validator.New(),
		pdf:      pdftext.NewDocconvExtractor(),
		newEmbedder: func(ctx context.Context) (embedding.Provider, error) {
			return embedding.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
		},
		newTagger: func(_ context.Context) (nlp.Provider, error) {
			return nlp.NewProseProvider(), nil
		},
	}
	s.pipeline = &extract.Pipeline{
		Tagger: s.taggerProvider,
		Limit:  cfg.MaxSkills,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /skills/extract", s.handleExtractSkills)
	mux.HandleFunc("POST /match", s.handleMatch)
	mux.HandleFunc("POST /recommendations/recruiter", s.handleRecruiterRecommendations)
	mux.HandleFunc("POST /recommendations/seeker", s.handleSeekerRecommendations)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withRecovery(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.embedder != nil {
		_ = s.embedder.Close()
	}

	log.Println("Server stopped")
	return nil
}

// embedProvider returns the process-wide embedding provider, initializing
// it on first use. Initialization failures are sticky: the provider stays
// unavailable for the life of the process rather than retrying.
func (s *Server) embedProvider(ctx context.Context) (embedding.Provider, error) {
	s.embedOnce.Do(func() {
		s.embedder, s.embedErr = s.newEmbedder(ctx)
	})
	return s.embedder, s.embedErr
}

// taggerProvider returns the process-wide NLP provider, initializing it on
// first use.
func (s *Server) taggerProvider(ctx context.Context) (nlp.Provider, error) {
	s.tagOnce.Do(func() {
		s.tagger, s.tagErr = s.newTagger(ctx)
	})
	return s.tagger, s.tagErr
}

// withCORS adds permissive CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging with a per-request ID.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		start := time.Now()
		log.Printf("[%s] %s %s %s", requestID, r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}

// withRecovery converts handler panics into generic 500 responses so no
// request ever crashes the process.
func (s *Server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic in %s %s: %v", r.Method, r.URL.Path, rec)
				s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("%v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

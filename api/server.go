// Package api - Thin, deterministic API layer
// The API is ONLY responsible for input ingestion, engine
// orchestration, and output serialization. It NEVER performs pricing
// logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"talent-quote/core/catalog"
	"talent-quote/core/compare"
	"talent-quote/core/quote"
	"talent-quote/internal/config"
	"talent-quote/internal/errors"
	"talent-quote/internal/logging"
)

// Server is the API server
type Server struct {
	mux      *http.ServeMux
	accessor *catalog.Accessor
	pricing  config.PricingConfig
	validate *validator.Validate
	version  string
	logger   *zap.Logger
}

// NewServer creates an API server over a catalog accessor
func NewServer(version string, accessor *catalog.Accessor, pricing config.PricingConfig) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		accessor: accessor,
		pricing:  pricing,
		validate: validator.New(),
		version:  version,
		logger:   logging.Named("api"),
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /quote", s.handleQuote)
	s.mux.HandleFunc("POST /compare", s.handleCompare)

	// Supporting endpoints
	s.mux.HandleFunc("GET /catalog", s.handleCatalog)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleQuote handles POST /quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	engine, err := s.engine(r)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	proposal, err := engine.Aggregate(toSelection(&req))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, &QuoteResponse{
		RequestID: uuid.NewString(),
		Proposal:  proposal,
		Metadata: ResponseMetadata{
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

// handleCompare handles POST /compare
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	engine, err := s.engine(r)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	proposal, err := engine.Aggregate(toSelection(&req.QuoteRequest))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, &CompareResponse{
		RequestID:  uuid.NewString(),
		Comparison: compare.Build(proposal, toModalities(req.Modalities)),
		Metadata: ResponseMetadata{
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

// handleCatalog handles GET /catalog
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	cat, err := s.accessor.Get(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, &CatalogResponse{
		BusinessUnits: cat.BusinessUnits(),
		Addons:        cat.Addons(),
		Assessments:   cat.Assessments(),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "talent-quote",
	}, http.StatusOK)
}

// engine builds a quote engine over the cached catalog snapshot.
// Catalog load failure fails closed with a retryable error.
func (s *Server) engine(r *http.Request) (*quote.Engine, error) {
	cat, err := s.accessor.Get(r.Context())
	if err != nil {
		return nil, err
	}
	return quote.NewEngine(cat, s.pricing), nil
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// writeDomainError maps the domain error taxonomy to status codes
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	code := "INTERNAL_ERROR"
	status := http.StatusInternalServerError

	if domainErr, ok := err.(*errors.Error); ok {
		code = string(domainErr.Type)
		switch domainErr.Type {
		case errors.TypeInvalidSelection, errors.TypeMissingRetainerScheme,
			errors.TypeNotFound, errors.TypeNotSupported:
			status = http.StatusUnprocessableEntity
		case errors.TypeCatalogUnavailable:
			status = http.StatusServiceUnavailable
		}
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.writeError(w, code, err.Error(), status)
}

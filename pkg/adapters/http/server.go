package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/creational"
	"github.com/aretw0/creational/pkg/computer"
	"github.com/aretw0/creational/pkg/document"
	"github.com/aretw0/creational/pkg/domain"
	"github.com/aretw0/creational/pkg/ports"
	"github.com/aretw0/creational/pkg/prompt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Engine defines what the HTTP adapter needs from the catalog.
type Engine interface {
	BuildComputer(spec computer.Spec) creational.Outcome
	BuildPreset(name string) (creational.Outcome, error)
	Presets() []string
	OrderHamburger(selector string) (creational.Outcome, error)
	GenerateReport(selector string) (creational.Outcome, error)
	ServeMeal(selector string) (creational.Outcome, error)
	AssembleVehicle(selector string) (creational.Outcome, error)
	CloneDocument(ctx context.Context, name string, o document.Overrides) (creational.Outcome, error)
	Template(ctx context.Context, name string) (*document.Document, error)
	RegisterTemplate(ctx context.Context, name string, doc *document.Document) error
	Templates(ctx context.Context) ([]string, error)
}

// Server exposes the catalog as a JSON API.
type Server struct {
	Engine  Engine
	Metrics http.Handler
	Logger  *slog.Logger

	limiter *rate.Limiter
}

// Option configures the handler.
type Option func(*Server)

// WithMetricsHandler mounts h at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithLogger sets the logger used for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithRateLimit limits the API to limit requests per second with the given
// burst. /metrics is not limited.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(s *Server) {
		s.limiter = rate.NewLimiter(limit, burst)
	}
}

// MaxBodyBytes caps every request body.
const MaxBodyBytes = 64 << 10

// SelectionRequest is the body of every factory endpoint.
// Factory Method endpoints read Type, Abstract Factory endpoints read Family.
type SelectionRequest struct {
	Type   string `json:"type,omitempty"`
	Family string `json:"family,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Options []string `json:"options,omitempty"`
}

// PatternResponse is a catalog entry with its markdown explanation.
type PatternResponse struct {
	creational.PatternInfo
	Explanation string `json:"explanation"`
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{
		Engine: engine,
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)

	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(s.rateLimit)
		}
		s.routes(r)
	})

	return enableCORS(r)
}

func (s *Server) routes(r chi.Router) {
	r.Get("/patterns", s.ListPatterns)
	r.Get("/patterns/{id}", s.GetPattern)

	r.Post("/computers", s.BuildComputer)
	r.Get("/computers/presets", s.ListPresets)
	r.Get("/computers/presets/{name}", s.BuildPreset)

	r.Post("/hamburgers", s.selection(func(req SelectionRequest) (creational.Outcome, error) {
		return s.Engine.OrderHamburger(req.Type)
	}))
	r.Post("/reports", s.selection(func(req SelectionRequest) (creational.Outcome, error) {
		return s.Engine.GenerateReport(req.Type)
	}))
	r.Post("/meals", s.selection(func(req SelectionRequest) (creational.Outcome, error) {
		return s.Engine.ServeMeal(req.Family)
	}))
	r.Post("/vehicles", s.selection(func(req SelectionRequest) (creational.Outcome, error) {
		return s.Engine.AssembleVehicle(req.Family)
	}))

	r.Get("/templates", s.ListTemplates)
	r.Get("/templates/{name}", s.GetTemplate)
	r.Put("/templates/{name}", s.PutTemplate)
	r.Post("/templates/{name}/clone", s.CloneTemplate)
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			s.writeJSON(w, http.StatusTooManyRequests, ErrorResponse{Error: "rate limit exceeded"})
			return
		}

		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", int(s.limiter.Limit())))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", int(s.limiter.Tokens())))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(time.Second).Unix()))

		next.ServeHTTP(w, r)
	})
}

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestIDHeader carries the request id on requests and responses.
const RequestIDHeader = "X-Request-Id"

// requestID keeps a client supplied UUID or generates one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// RequestID returns the id assigned to the request carried by ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListPatterns handles GET /patterns.
func (s *Server) ListPatterns(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, creational.Patterns())
}

// GetPattern handles GET /patterns/{id}.
func (s *Server) GetPattern(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	info, err := creational.Lookup(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	md, err := creational.Explain(id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, PatternResponse{PatternInfo: info, Explanation: md})
}

// BuildComputer handles POST /computers.
func (s *Server) BuildComputer(w http.ResponseWriter, r *http.Request) {
	var spec computer.Spec
	if !s.decode(w, r, &spec) {
		return
	}
	s.writeJSON(w, http.StatusOK, s.Engine.BuildComputer(spec))
}

// ListPresets handles GET /computers/presets.
func (s *Server) ListPresets(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Engine.Presets())
}

// BuildPreset handles GET /computers/presets/{name}.
func (s *Server) BuildPreset(w http.ResponseWriter, r *http.Request) {
	out, err := s.Engine.BuildPreset(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) selection(create func(SelectionRequest) (creational.Outcome, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectionRequest
		if !s.decode(w, r, &req) {
			return
		}

		// Selectors come from untrusted clients and end up in logs and metric labels.
		for _, v := range []*string{&req.Type, &req.Family} {
			clean, err := prompt.CleanSelector(*v)
			if err != nil {
				s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
				return
			}
			*v = clean
		}

		out, err := create(req)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, out)
	}
}

// ListTemplates handles GET /templates.
func (s *Server) ListTemplates(w http.ResponseWriter, r *http.Request) {
	names, err := s.Engine.Templates(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, names)
}

// GetTemplate handles GET /templates/{name}.
func (s *Server) GetTemplate(w http.ResponseWriter, r *http.Request) {
	doc, err := s.Engine.Template(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, doc)
}

// PutTemplate handles PUT /templates/{name}.
func (s *Server) PutTemplate(w http.ResponseWriter, r *http.Request) {
	var doc document.Document
	if !s.decode(w, r, &doc) {
		return
	}
	if err := s.Engine.RegisterTemplate(r.Context(), chi.URLParam(r, "name"), &doc); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CloneTemplate handles POST /templates/{name}/clone. The body (overrides) is optional.
func (s *Server) CloneTemplate(w http.ResponseWriter, r *http.Request) {
	var o document.Overrides
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		s.writeBodyError(w, r, err)
		return
	}
	out, err := s.Engine.CloneDocument(r.Context(), chi.URLParam(r, "name"), o)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeBodyError(w, r, err)
		return false
	}
	return true
}

func (s *Server) writeBodyError(w http.ResponseWriter, r *http.Request, err error) {
	s.Logger.Warn("invalid request body", "path", r.URL.Path, "request_id", RequestID(r.Context()), "error", err)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		s.writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
		return
	}
	s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var invalid *domain.InvalidOptionError
	switch {
	case errors.As(err, &invalid):
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Options: invalid.Options})
	case errors.Is(err, ports.ErrInvalidTemplateName):
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, ports.ErrTemplateNotFound):
		s.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		s.Logger.Error("request failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dgallion1/willclause/internal/clauses"
	"github.com/dgallion1/willclause/internal/config"
	"github.com/dgallion1/willclause/internal/will"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ClauseLister produces the clause library.
type ClauseLister interface {
	ListClauses(ctx context.Context) clauses.Listing
}

// WillStore persists will documents.
type WillStore interface {
	Create(ctx context.Context, f will.File) (*will.Will, error)
	Update(ctx context.Context, id int64, f will.File) (*will.Will, error)
	Get(ctx context.Context, id int64) (*will.Will, error)
}

// Server is the HTTP API of the will editor backend.
type Server struct {
	router  chi.Router
	clauses ClauseLister
	wills   WillStore
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(cl ClauseLister, wills WillStore, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		clauses: cl,
		wills:   wills,
		log:     log,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Get("/api/clauses", s.handleListClauses)
		r.Post("/api/clauses/bookmark-name", s.handleBookmarkName)

		r.Post("/api/wills", s.handleCreateWill)
		r.Put("/api/wills/{id}", s.handleUpdateWill)
		r.Get("/api/wills/{id}", s.handleGetWill)
		r.Get("/api/wills/{id}/outline", s.handleWillOutline)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

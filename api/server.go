package api

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"happysearch/search"
)

// Server wires the search engine and the static web root into an HTTP handler.
type Server struct {
	engine  *search.Engine
	webRoot string
	logger  *zap.Logger
	router  chi.Router
}

func NewServer(engine *search.Engine, webDir string, logger *zap.Logger) (*Server, error) {
	root, err := filepath.Abs(webDir)
	if err != nil {
		return nil, fmt.Errorf("resolving web dir: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	s := &Server{
		engine:  engine,
		webRoot: root,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Use(s.requestID, s.logRequests)

	r.Get("/api/search", s.handleSearch)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		s.serveFile(w, "index.html")
	})
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		s.serveFile(w, chi.URLParam(r, "*"))
	})

	s.router = r
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

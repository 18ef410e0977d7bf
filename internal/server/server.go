package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/vinnych/portfolio/internal/logging"
	"github.com/vinnych/portfolio/internal/site"
	"github.com/vinnych/portfolio/internal/viewport"
)

// Config holds server configuration.
type Config struct {
	Port      int
	StaticDir string // optional directory served for unmatched paths
	AllowAll  bool   // allow all CORS origins (dev mode)
	Viewport  viewport.Options
}

// Server serves the portfolio page, its projects API and the viewport socket.
type Server struct {
	cfg        Config
	renderer   *site.Renderer
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. Every page request runs the renderer.
func New(cfg Config, renderer *site.Renderer, logger *zap.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		renderer: renderer,
		logger:   logging.OrNop(logger),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Get("/", s.handlePage)
		r.Get("/index.html", s.handlePage)
		r.Get("/api/projects", s.handleProjects)
	})
	r.Get("/ws/viewport", s.handleViewport)

	r.Get("/style.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Write([]byte(site.CSS()))
	})
	r.Get("/script.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		w.Write([]byte(site.Script()))
	})

	if s.cfg.StaticDir != "" {
		if _, err := os.Stat(s.cfg.StaticDir); err == nil {
			r.Handle("/*", http.FileServer(http.Dir(s.cfg.StaticDir)))
		}
	}

	return r
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page, err := s.renderer.Render(r.Context(), false)
	if err != nil {
		if r.Context().Err() != nil {
			return
		}
		s.logger.Error("rendering page", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Doc.Render(w); err != nil {
		s.logger.Warn("writing page", zap.Error(err))
	}
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	page, err := s.renderer.Render(r.Context(), false)
	if err != nil {
		s.logger.Warn("loading projects", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	json.NewEncoder(w).Encode(site.NewProjectsPayload(page.Result))
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("portfolio server listening", zap.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Package server exposes the trigger surface over HTTP: an on-demand run
// endpoint, a scrape-only diagnostics endpoint and subscription management.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/dewmyth/screenwatch/pkg/domain"
	"github.com/dewmyth/screenwatch/pkg/pipeline"
)

//go:generate moq -out mocks/pipeline.go -pkg mocks -skip-ensure -fmt goimports . Pipeline
//go:generate moq -out mocks/subscribers.go -pkg mocks -skip-ensure -fmt goimports . SubscriberStore
//go:generate moq -out mocks/movies.go -pkg mocks -skip-ensure -fmt goimports . MovieLister

// Pipeline interface for on-demand operations
type Pipeline interface {
	Run(ctx context.Context) pipeline.Result
	Scrape(ctx context.Context) ([]domain.Impression, error)
}

// SubscriberStore interface for subscription management
type SubscriberStore interface {
	Subscribe(ctx context.Context, email string) (domain.SubscribeOutcome, error)
}

// MovieLister provides read access to the stored movie history
type MovieLister interface {
	GetMovies(ctx context.Context) ([]domain.Movie, error)
}

// Config holds server settings
type Config struct {
	Listen  string
	Timeout time.Duration
	Version string
	Debug   bool
}

// Server represents HTTP server instance
type Server struct {
	config      Config
	pipeline    Pipeline
	subscribers SubscriberStore
	movies      MovieLister

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(cfg Config, p Pipeline, subscribers SubscriberStore, movies MovieLister) *Server {
	s := &Server{
		config:      cfg,
		pipeline:    p,
		subscribers: subscribers,
		movies:      movies,
		router:      routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	log.Printf("[INFO] starting server on %s", s.config.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.config.Listen,
		Handler:      s.router,
		ReadTimeout:  s.config.Timeout,
		WriteTimeout: s.config.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("screenwatch", "dewmyth", s.config.Version))
	s.router.Use(rest.Ping)

	if s.config.Debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /run", s.runHandler)
		r.HandleFunc("GET /scrape", s.scrapeHandler)
		r.HandleFunc("GET /movies", s.moviesHandler)
		r.HandleFunc("POST /subscribe", s.subscribeHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

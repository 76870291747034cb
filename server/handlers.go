package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/mail"
	"time"

	"github.com/dewmyth/screenwatch/pkg/domain"
	"github.com/dewmyth/screenwatch/pkg/scrape"
)

// runResponse mirrors the run result without internal error detail
type runResponse struct {
	NewMovies int    `json:"new_movies"`
	Error     string `json:"error,omitempty"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.config.Version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// runHandler triggers an ingestion run and returns its outcome. A failed run is
// still a completed request; the details stay in the logs.
func (s *Server) runHandler(w http.ResponseWriter, r *http.Request) {
	res := s.pipeline.Run(r.Context())

	resp := runResponse{NewMovies: res.NewMovies}
	if res.Err != nil {
		if errors.Is(res.Err, scrape.ErrNoImpressions) {
			resp.Error = "no impression data found"
		} else {
			resp.Error = "run failed"
		}
	}

	renderJSON(w, r, http.StatusOK, resp)
}

// scrapeHandler returns the currently extracted candidate list without
// persisting or notifying, for diagnostics
func (s *Server) scrapeHandler(w http.ResponseWriter, r *http.Request) {
	impressions, err := s.pipeline.Scrape(r.Context())
	if err != nil {
		log.Printf("[ERROR] scrape failed: %v", err)
		if errors.Is(err, scrape.ErrNoImpressions) {
			renderError(w, r, scrape.ErrNoImpressions, http.StatusNotFound)
			return
		}
		renderError(w, r, fmt.Errorf("scrape failed"), http.StatusBadGateway)
		return
	}

	if impressions == nil {
		impressions = []domain.Impression{}
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"count":       len(impressions),
		"impressions": impressions,
	})
}

// moviesHandler returns the stored movie history, newest first
func (s *Server) moviesHandler(w http.ResponseWriter, r *http.Request) {
	movies, err := s.movies.GetMovies(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to load movies: %v", err)
		renderError(w, r, fmt.Errorf("failed to load movies"), http.StatusInternalServerError)
		return
	}

	if movies == nil {
		movies = []domain.Movie{}
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"count":  len(movies),
		"movies": movies,
	})
}

// subscribeRequest is the subscription payload
type subscribeRequest struct {
	Email string `json:"email"`
}

// subscribeHandler adds an email address to the notification list
func (s *Server) subscribeHandler(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if req.Email == "" {
		renderError(w, r, fmt.Errorf("email is required"), http.StatusBadRequest)
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		renderError(w, r, fmt.Errorf("invalid email address"), http.StatusBadRequest)
		return
	}

	outcome, err := s.subscribers.Subscribe(r.Context(), req.Email)
	if err != nil {
		log.Printf("[ERROR] failed to subscribe %s: %v", req.Email, err)
		renderError(w, r, fmt.Errorf("failed to add email subscription"), http.StatusInternalServerError)
		return
	}

	switch outcome {
	case domain.SubscribeExists:
		renderJSON(w, r, http.StatusOK, map[string]string{
			"message": "Email already exists in the subscription list.",
		})
	default:
		renderJSON(w, r, http.StatusCreated, map[string]string{
			"message": fmt.Sprintf("Email subscription - %s added successfully.", req.Email),
		})
	}
}

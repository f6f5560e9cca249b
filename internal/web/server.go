// Package web provides the JSON HTTP API for the erooms marketplace.
package web

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/erooms-in/erooms/internal/auth"
	"github.com/erooms-in/erooms/internal/config"
	"github.com/erooms-in/erooms/internal/listing"
	"github.com/erooms-in/erooms/internal/logging"
	"github.com/erooms-in/erooms/internal/store"
)

// Server is the HTTP API server.
type Server struct {
	listings *listing.Repository
	users    *auth.Service
	sessions *auth.Sessions
	config   *config.Service
	router   chi.Router
}

// NewServer wires the API over the given store.
func NewServer(st store.Store, sessionSecret string) *Server {
	cfg := config.NewService(st)

	s := &Server{
		listings: listing.NewRepository(st, cfg),
		users:    auth.NewService(st),
		sessions: auth.NewSessions(st, sessionSecret),
		config:   cfg,
	}

	cfg.Subscribe(func(c config.AppConfig) {
		slog.Info("configuration updated", "site", c.SiteName, "maintenance", c.MaintenanceMode)
	})

	r := chi.NewRouter()
	r.Use(logging.RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/config", s.handleGetConfig)
		r.Get("/listings", s.handleListListings)
		r.Get("/listings/{id}", s.handleGetListing)

		r.Post("/auth/signup", s.handleSignup)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)

		// Authenticated surface.
		r.Group(func(r chi.Router) {
			r.Use(s.requireUser)

			r.Get("/me", s.handleMe)
			r.Post("/me/searches", s.handleSaveSearch)
			r.Delete("/me/searches/{searchID}", s.handleDeleteSearch)

			r.Post("/listings", s.handleCreateListing)
			r.Get("/owner/listings", s.handleOwnerListings)

			// Admin-only surface.
			r.Group(func(r chi.Router) {
				r.Use(s.requireRole(auth.RoleAdmin))

				r.Put("/listings/{id}", s.handleUpdateListing)
				r.Delete("/listings/{id}", s.handleDeleteListing)
				r.Post("/listings/{id}/approve", s.handleApproveListing)
				r.Get("/admin/listings", s.handleAdminListings)
				r.Get("/admin/stats", s.handleAdminStats)
				r.Put("/config", s.handleUpdateConfig)
			})
		})
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

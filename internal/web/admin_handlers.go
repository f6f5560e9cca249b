package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/erooms-in/erooms/internal/config"
	"github.com/erooms-in/erooms/internal/listing"
)

// handleAdminListings serves the full registry, pending included, with
// an optional case-insensitive text search over name and area.
func (s *Server) handleAdminListings(w http.ResponseWriter, r *http.Request) {
	all, err := s.listings.All()
	if err != nil {
		apiError(w, "loading listings failed", http.StatusInternalServerError)
		return
	}

	term := strings.ToLower(r.URL.Query().Get("q"))
	if term == "" {
		apiJSON(w, all, http.StatusOK)
		return
	}

	matched := make([]listing.Listing, 0)
	for _, l := range all {
		if strings.Contains(strings.ToLower(l.ListingName), term) ||
			strings.Contains(strings.ToLower(l.Area), term) {
			matched = append(matched, l)
		}
	}
	apiJSON(w, matched, http.StatusOK)
}

// adminStats is the admin overview summary.
type adminStats struct {
	TotalListings   int `json:"totalListings"`
	PendingListings int `json:"pendingListings"`
	TotalUsers      int `json:"totalUsers"`
}

func (s *Server) handleAdminStats(w http.ResponseWriter, _ *http.Request) {
	all, err := s.listings.All()
	if err != nil {
		apiError(w, "loading listings failed", http.StatusInternalServerError)
		return
	}

	stats := adminStats{TotalListings: len(all)}
	for _, l := range all {
		if l.ApprovalStatus == listing.StatusPending {
			stats.PendingListings++
		}
	}
	stats.TotalUsers = len(s.users.Users())

	apiJSON(w, stats, http.StatusOK)
}

// handleGetConfig serves the application configuration.
func (s *Server) handleGetConfig(w http.ResponseWriter, _ *http.Request) {
	apiJSON(w, s.config.Load(), http.StatusOK)
}

// handleUpdateConfig replaces the application configuration.
func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var cfg config.AppConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		apiError(w, "invalid config payload", http.StatusBadRequest)
		return
	}

	if err := s.config.Save(cfg); err != nil {
		apiError(w, "saving config failed", http.StatusInternalServerError)
		return
	}

	apiJSON(w, s.config.Load(), http.StatusOK)
}

type saveSearchRequest struct {
	Name    string           `json:"name"`
	Filters listing.Criteria `json:"filters"`
}

// handleSaveSearch stores a named filter snapshot on the caller.
func (s *Server) handleSaveSearch(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r)

	var req saveSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		apiError(w, "search name is required", http.StatusBadRequest)
		return
	}

	search, ok, err := s.users.SaveSearch(user.ID, req.Name, req.Filters)
	if err != nil {
		apiError(w, "saving search failed", http.StatusInternalServerError)
		return
	}
	if !ok {
		apiError(w, "user not found", http.StatusNotFound)
		return
	}

	apiJSON(w, search, http.StatusCreated)
}

// handleDeleteSearch removes one of the caller's saved searches.
func (s *Server) handleDeleteSearch(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r)

	if err := s.users.DeleteSearch(user.ID, chi.URLParam(r, "searchID")); err != nil {
		apiError(w, "deleting search failed", http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]string{"status": "deleted"}, http.StatusOK)
}

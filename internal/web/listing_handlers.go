package web

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/erooms-in/erooms/internal/auth"
	"github.com/erooms-in/erooms/internal/listing"
)

// criteriaFromQuery builds filter criteria from request query params.
// Absent selectors read as the "All" sentinel; pills arrive as a
// comma-separated list.
func criteriaFromQuery(r *http.Request) listing.Criteria {
	q := r.URL.Query()
	c := listing.DefaultCriteria()

	if v := q.Get("coaching"); v != "" {
		c.Coaching = v
	}
	if v := q.Get("gender"); v != "" {
		c.Gender = v
	}
	if v := q.Get("area"); v != "" {
		c.Area = v
	}
	if v := q.Get("pills"); v != "" {
		for _, pill := range strings.Split(v, ",") {
			if pill = strings.TrimSpace(pill); pill != "" {
				c.ActivePills = append(c.ActivePills, pill)
			}
		}
	}

	return c
}

// handleListListings serves the public feed: approved listings matching
// the filter criteria, in stored order.
func (s *Server) handleListListings(w http.ResponseWriter, r *http.Request) {
	c := criteriaFromQuery(r)

	matched, err := s.listings.Filtered(c)
	if err != nil {
		apiError(w, "loading listings failed", http.StatusInternalServerError)
		return
	}

	apiJSON(w, map[string]interface{}{
		"listings":    matched,
		"isFiltering": c.IsFiltering(),
	}, http.StatusOK)
}

// handleGetListing serves one listing by id. Pending listings are only
// visible to their owner or an admin.
func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	l, ok, err := s.listings.Get(id)
	if err != nil {
		apiError(w, "loading listings failed", http.StatusInternalServerError)
		return
	}
	if !ok {
		apiError(w, "listing not found", http.StatusNotFound)
		return
	}

	if l.ApprovalStatus != listing.StatusApproved {
		user, authed := s.bearerUser(r)
		if !authed || (user.Role != auth.RoleAdmin && user.ID != l.OwnerID) {
			apiError(w, "listing not found", http.StatusNotFound)
			return
		}
	}

	apiJSON(w, l, http.StatusOK)
}

// handleCreateListing accepts an owner or admin submission. Owner
// submissions always enter the review queue as Pending; admins may
// create listings directly Approved.
func (s *Server) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r)
	if user.Role != auth.RoleOwner && user.Role != auth.RoleAdmin {
		apiError(w, "forbidden", http.StatusForbidden)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		apiError(w, "reading body failed", http.StatusBadRequest)
		return
	}

	if err := validateSubmission(body); err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var l listing.Listing
	if err := json.Unmarshal(body, &l); err != nil {
		apiError(w, "invalid listing payload", http.StatusBadRequest)
		return
	}

	l.ID = ""
	l.OwnerID = user.ID
	if user.Role != auth.RoleAdmin || l.ApprovalStatus != listing.StatusApproved {
		l.ApprovalStatus = listing.StatusPending
	}

	saved, err := s.listings.Add(l)
	if err != nil {
		apiError(w, "saving listing failed", http.StatusInternalServerError)
		return
	}

	apiJSON(w, saved, http.StatusCreated)
}

// handleOwnerListings serves the caller's own listings, pending ones
// included.
func (s *Server) handleOwnerListings(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r)

	all, err := s.listings.All()
	if err != nil {
		apiError(w, "loading listings failed", http.StatusInternalServerError)
		return
	}

	mine := make([]listing.Listing, 0)
	for _, l := range all {
		if l.OwnerID == user.ID {
			mine = append(mine, l)
		}
	}

	apiJSON(w, mine, http.StatusOK)
}

// handleUpdateListing replaces a listing wholesale (admin edit).
// Unknown ids are a no-op at the repository; the API still answers 200
// so retries stay harmless.
func (s *Server) handleUpdateListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		apiError(w, "reading body failed", http.StatusBadRequest)
		return
	}
	if err := validateSubmission(body); err != nil {
		apiError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var l listing.Listing
	if err := json.Unmarshal(body, &l); err != nil {
		apiError(w, "invalid listing payload", http.StatusBadRequest)
		return
	}

	if err := s.listings.Update(id, l); err != nil {
		apiError(w, "saving listing failed", http.StatusInternalServerError)
		return
	}

	apiJSON(w, map[string]string{"status": "updated"}, http.StatusOK)
}

// handleDeleteListing removes a listing. Unknown ids are a no-op.
func (s *Server) handleDeleteListing(w http.ResponseWriter, r *http.Request) {
	if err := s.listings.Delete(chi.URLParam(r, "id")); err != nil {
		apiError(w, "deleting listing failed", http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]string{"status": "deleted"}, http.StatusOK)
}

// handleApproveListing moves a listing to Approved. Idempotent; unknown
// ids are a no-op.
func (s *Server) handleApproveListing(w http.ResponseWriter, r *http.Request) {
	if err := s.listings.Approve(chi.URLParam(r, "id")); err != nil {
		apiError(w, "approving listing failed", http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]string{"status": "approved"}, http.StatusOK)
}

// bearerUser resolves the session user from the Authorization header
// outside the requireUser subtree, for endpoints that are public but
// show more to authenticated callers.
func (s *Server) bearerUser(r *http.Request) (auth.User, bool) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return auth.User{}, false
	}
	user, err := s.sessions.Verify(token)
	if err != nil {
		return auth.User{}, false
	}
	return user, true
}

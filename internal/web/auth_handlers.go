package web

import (
	"encoding/json"
	"net/http"

	"github.com/erooms-in/erooms/internal/auth"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type sessionResponse struct {
	Token string    `json:"token"`
	User  auth.User `json:"user"`
}

// handleSignup registers a new account and logs it in. A duplicate
// email answers 409; it is an expected unhappy path, not a server
// error.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if !s.config.Load().AllowNewRegistrations {
		apiError(w, "registrations are currently closed", http.StatusForbidden)
		return
	}

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	role := auth.Role(req.Role)
	if role == auth.RoleAdmin {
		// Admin accounts are not self-service.
		apiError(w, "invalid role", http.StatusBadRequest)
		return
	}

	user, ok, err := s.users.Register(auth.Registration{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		apiError(w, "registration failed", http.StatusInternalServerError)
		return
	}
	if !ok {
		apiError(w, "could not register, email exists", http.StatusConflict)
		return
	}

	token, err := s.sessions.Issue(user)
	if err != nil {
		apiError(w, "creating session failed", http.StatusInternalServerError)
		return
	}

	apiJSON(w, sessionResponse{Token: token, User: user}, http.StatusCreated)
}

// handleLogin authenticates email+password+role and issues a session.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, ok := s.users.Authenticate(req.Email, req.Password, auth.Role(req.Role))
	if !ok {
		apiError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := s.sessions.Issue(user)
	if err != nil {
		apiError(w, "creating session failed", http.StatusInternalServerError)
		return
	}

	apiJSON(w, sessionResponse{Token: token, User: user}, http.StatusOK)
}

// handleLogout clears the recorded session.
func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	if err := s.sessions.Clear(); err != nil {
		apiError(w, "logout failed", http.StatusInternalServerError)
		return
	}
	apiJSON(w, map[string]string{"status": "logged out"}, http.StatusOK)
}

// handleMe returns the authenticated user's stored record, saved
// searches included.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	session, _ := userFrom(r)

	if user, ok := s.users.ByID(session.ID); ok {
		apiJSON(w, user, http.StatusOK)
		return
	}

	// Token users that predate the users blob (e.g. the super admin)
	// still get their session identity back.
	apiJSON(w, session, http.StatusOK)
}

// Package auth manages registered users, login sessions, and the saved
// searches stored against a user. There is no real security model here
// beyond password hashing: the session is a trust stub.
package auth

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/erooms-in/erooms/internal/listing"
	"github.com/erooms-in/erooms/internal/store"
)

// Role is a user's role in the marketplace.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleOwner   Role = "owner"
	RoleStudent Role = "student"
)

// ValidRole returns true if s is a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleOwner, RoleStudent:
		return true
	}
	return false
}

// Status is an account's moderation status.
type Status string

const (
	StatusActive    Status = "Active"
	StatusSuspended Status = "Suspended"
	StatusFlagged   Status = "Flagged"
)

// SavedSearch is a named snapshot of filter criteria kept on a user.
type SavedSearch struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Filters   listing.Criteria `json:"filters"`
	Timestamp string           `json:"timestamp"`
}

// User is a registered account. The password never leaves storage as
// anything but a bcrypt hash.
type User struct {
	ID            string        `json:"id"`
	Username      string        `json:"username"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone,omitempty"`
	Role          Role          `json:"role"`
	Status        Status        `json:"status,omitempty"`
	JoinedAt      string        `json:"joinedAt,omitempty"`
	PasswordHash  string        `json:"passwordHash,omitempty"`
	SavedSearches []SavedSearch `json:"savedSearches,omitempty"`
}

// Public returns a copy safe to hand to callers: no password hash.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// The hardcoded super admin predates registration and lives outside the
// users blob.
const (
	superAdminEmail    = "admin"
	superAdminPassword = "123"
)

func superAdmin() User {
	return User{
		ID:       "admin-1",
		Username: "Super Admin",
		Email:    superAdminEmail,
		Role:     RoleAdmin,
		Status:   StatusActive,
	}
}

// Service manages users persisted under the users key.
type Service struct {
	store store.Store
	mu    sync.Mutex
}

// NewService creates a user service over the given store.
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Users returns all registered users. An absent or malformed blob
// degrades to an empty list; it is never an error the caller sees.
func (s *Service) Users() []User {
	raw, ok, err := s.store.Get(store.KeyUsers)
	if err != nil || !ok {
		return []User{}
	}

	var users []User
	if jsonErr := json.Unmarshal([]byte(raw), &users); jsonErr != nil {
		return []User{}
	}

	for i := range users {
		if users[i].Status == "" {
			users[i].Status = StatusActive
		}
	}
	return users
}

// Registration is the input to Register.
type Registration struct {
	Username string
	Email    string
	Phone    string
	Password string
	Role     Role
}

// Register creates a new account. A duplicate email is signaled with
// ok=false, not an error: the caller owns the user-facing messaging.
func (s *Service) Register(reg Registration) (User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Email))
	if email == "" || reg.Password == "" {
		return User{}, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.Users()
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return User{}, false, nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, false, fmt.Errorf("hashing password: %w", err)
	}

	role := reg.Role
	if !ValidRole(string(role)) {
		role = RoleStudent
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(reg.Username),
		Email:        email,
		Phone:        strings.TrimSpace(reg.Phone),
		Role:         role,
		Status:       StatusActive,
		JoinedAt:     time.Now().UTC().Format(time.RFC3339),
		PasswordHash: string(hash),
	}

	if err := s.persist(append(users, u)); err != nil {
		return User{}, false, err
	}

	return u.Public(), true, nil
}

// Authenticate checks email, password, and role against the registered
// users, with the hardcoded super admin checked first. A failed login
// is ok=false, never an error.
func (s *Service) Authenticate(email, password string, role Role) (User, bool) {
	if role == RoleAdmin && email == superAdminEmail && password == superAdminPassword {
		return superAdmin(), true
	}

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.Users() {
		if !strings.EqualFold(u.Email, email) || u.Role != role {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
			return u.Public(), true
		}
	}

	return User{}, false
}

// ByID returns the user with the given id. The super admin resolves
// like any other user.
func (s *Service) ByID(id string) (User, bool) {
	if id == superAdmin().ID {
		return superAdmin(), true
	}
	for _, u := range s.Users() {
		if u.ID == id {
			return u.Public(), true
		}
	}
	return User{}, false
}

// SaveSearch stores a named criteria snapshot on the user. Unknown
// user ids are signaled with ok=false.
func (s *Service) SaveSearch(userID, name string, c listing.Criteria) (SavedSearch, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.Users()
	for i := range users {
		if users[i].ID != userID {
			continue
		}
		search := SavedSearch{
			ID:        uuid.NewString(),
			Name:      name,
			Filters:   c,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}
		users[i].SavedSearches = append(users[i].SavedSearches, search)
		if err := s.persist(users); err != nil {
			return SavedSearch{}, false, err
		}
		return search, true, nil
	}

	return SavedSearch{}, false, nil
}

// DeleteSearch removes a saved search from the user. Unknown user or
// search ids are a silent no-op.
func (s *Service) DeleteSearch(userID, searchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.Users()
	for i := range users {
		if users[i].ID != userID {
			continue
		}
		kept := users[i].SavedSearches[:0]
		for _, search := range users[i].SavedSearches {
			if search.ID != searchID {
				kept = append(kept, search)
			}
		}
		if len(kept) == len(users[i].SavedSearches) {
			return nil
		}
		users[i].SavedSearches = kept
		return s.persist(users)
	}

	return nil
}

func (s *Service) persist(users []User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encoding users: %w", err)
	}
	return s.store.Set(store.KeyUsers, string(data))
}

package auth

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/erooms-in/erooms/internal/store"
)

const sessionExpiry = 30 * 24 * time.Hour // 30 days

// Claims are the JWT session claims.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Sessions issues and verifies session tokens and mirrors the current
// session user under the session key so a restarted process can tell
// who was last signed in.
type Sessions struct {
	store  store.Store
	secret []byte
}

// NewSessions creates a session manager with the given signing secret.
func NewSessions(st store.Store, secret string) *Sessions {
	return &Sessions{store: st, secret: []byte(secret)}
}

// Issue creates a signed session token for the user and records the
// session user in storage.
func (s *Sessions) Issue(u User) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionExpiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}

	data, err := json.Marshal(u.Public())
	if err != nil {
		return "", fmt.Errorf("encoding session user: %w", err)
	}
	if err := s.store.Set(store.KeySession, string(data)); err != nil {
		return "", fmt.Errorf("recording session: %w", err)
	}

	return token, nil
}

// Verify parses and validates a session token, returning the session
// user it describes.
func (s *Sessions) Verify(token string) (User, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return User{}, fmt.Errorf("parsing session token: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return User{}, fmt.Errorf("invalid session token")
	}

	return User{
		ID:       claims.Subject,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     Role(claims.Role),
	}, nil
}

// Current returns the session user recorded in storage, if any.
func (s *Sessions) Current() (User, bool) {
	raw, ok, err := s.store.Get(store.KeySession)
	if err != nil || !ok {
		return User{}, false
	}

	var u User
	if jsonErr := json.Unmarshal([]byte(raw), &u); jsonErr != nil {
		return User{}, false
	}
	return u, true
}

// Clear removes the recorded session.
func (s *Sessions) Clear() error {
	return s.store.Delete(store.KeySession)
}

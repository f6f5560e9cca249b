package auth

import (
	"testing"

	"github.com/erooms-in/erooms/internal/store"
)

func TestIssueAndVerify(t *testing.T) {
	st := store.NewMemory()
	sessions := NewSessions(st, "test-secret")

	u := User{ID: "u1", Username: "Asha", Email: "asha@example.com", Role: RoleStudent}
	token, err := sessions.Issue(u)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := sessions.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got.ID != "u1" || got.Role != RoleStudent || got.Email != "asha@example.com" {
		t.Errorf("verified user = %+v", got)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	st := store.NewMemory()
	token, err := NewSessions(st, "secret-a").Issue(User{ID: "u1", Role: RoleOwner})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewSessions(st, "secret-b").Verify(token); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	sessions := NewSessions(store.NewMemory(), "test-secret")
	if _, err := sessions.Verify("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestSessionRecordedAndCleared(t *testing.T) {
	st := store.NewMemory()
	sessions := NewSessions(st, "test-secret")

	if _, ok := sessions.Current(); ok {
		t.Error("expected no session before login")
	}

	if _, err := sessions.Issue(User{ID: "u1", Username: "Asha", Role: RoleStudent}); err != nil {
		t.Fatalf("issue: %v", err)
	}

	current, ok := sessions.Current()
	if !ok {
		t.Fatal("expected a recorded session after issue")
	}
	if current.ID != "u1" {
		t.Errorf("session user = %+v", current)
	}

	if err := sessions.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := sessions.Current(); ok {
		t.Error("expected session gone after clear")
	}
}

func TestCurrentMalformedSessionIgnored(t *testing.T) {
	st := store.NewMemory()
	if err := st.Set(store.KeySession, "{broken"); err != nil {
		t.Fatalf("set: %v", err)
	}

	if _, ok := NewSessions(st, "s").Current(); ok {
		t.Error("malformed session blob must read as no session")
	}
}

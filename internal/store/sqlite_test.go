package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "creates new database",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "erooms.db")
			},
		},
		{
			name: "creates nested directories",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "a", "b", "erooms.db")
			},
		},
		{
			name: "opens existing database",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "erooms.db")
				d, err := Open(path)
				if err != nil {
					t.Fatalf("setup: %v", err)
				}
				if err := d.Close(); err != nil {
					t.Fatalf("setup close: %v", err)
				}
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setup(t)
			d, err := Open(path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer func() {
				if err := d.Close(); err != nil {
					t.Errorf("close: %v", err)
				}
			}()

			if _, err := os.Stat(path); os.IsNotExist(err) {
				t.Error("database file was not created")
			}
		})
	}
}

func TestWALMode(t *testing.T) {
	d := openTestDB(t)

	var mode string
	if err := d.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want %q", mode, "wal")
	}
}

func TestGetAbsentKey(t *testing.T) {
	s := NewSQLite(openTestDB(t))

	_, ok, err := s.Get("never_written")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected ok=false for absent key")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	s := NewSQLite(openTestDB(t))

	if err := s.Set(KeyListings, `[{"id":"1"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}

	v, ok, err := s.Get(KeyListings)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after set")
	}
	if v != `[{"id":"1"}]` {
		t.Errorf("value = %q, want %q", v, `[{"id":"1"}]`)
	}
}

func TestSetOverwrites(t *testing.T) {
	s := NewSQLite(openTestDB(t))

	if err := s.Set(KeyConfig, "first"); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := s.Set(KeyConfig, "second"); err != nil {
		t.Fatalf("second set: %v", err)
	}

	v, ok, err := s.Get(KeyConfig)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if v != "second" {
		t.Errorf("value = %q, want %q", v, "second")
	}
}

func TestDelete(t *testing.T) {
	s := NewSQLite(openTestDB(t))

	if err := s.Set(KeySession, `{"id":"u1"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Delete(KeySession); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, ok, err := s.Get(KeySession)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected key to be gone after delete")
	}

	// Deleting again is a no-op.
	if err := s.Delete(KeySession); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	s := NewSQLite(openTestDB(t))

	if err := s.Set(KeyListings, "listings"); err != nil {
		t.Fatalf("set listings: %v", err)
	}
	if err := s.Set(KeyUsers, "users"); err != nil {
		t.Fatalf("set users: %v", err)
	}

	v, _, err := s.Get(KeyListings)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != "listings" {
		t.Errorf("listings value = %q", v)
	}
}

func TestDefaultPath(t *testing.T) {
	p, err := DefaultPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filepath.Base(p) != "erooms.db" {
		t.Errorf("expected filename erooms.db, got %s", filepath.Base(p))
	}

	dir := filepath.Base(filepath.Dir(p))
	if dir != "erooms" {
		t.Errorf("expected directory erooms, got %s", dir)
	}
}

// openTestDB creates a temporary database for testing.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "erooms.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if err := d.Close(); err != nil {
			t.Errorf("close test db: %v", err)
		}
	})
	return d
}

package listing

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/erooms-in/erooms/internal/config"
	"github.com/erooms-in/erooms/internal/store"
)

// Repository owns the in-memory listing collection for the process and
// keeps the persisted blob in sync. Every mutation rewrites the whole
// collection; two processes writing concurrently are last-write-wins,
// which is an accepted limitation of the blob store, not a guarantee.
type Repository struct {
	store  store.Store
	config *config.Service

	mu       sync.RWMutex
	listings []Listing
	loaded   bool
}

// NewRepository creates a listing repository over the given store and
// configuration service. Configuration is re-read lazily whenever a
// normalization needs the institute vocabulary.
func NewRepository(st store.Store, cfg *config.Service) *Repository {
	return &Repository{store: st, config: cfg}
}

// Load reads the persisted listings into memory. An absent blob is
// seeded with the starter set and written back; a blob that fails to
// parse degrades to an empty collection rather than erroring. Every
// record read from storage is normalized on the way in.
func (r *Repository) Load() ([]Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok, err := r.store.Get(store.KeyListings)
	if err != nil {
		return nil, fmt.Errorf("reading listings: %w", err)
	}

	if !ok {
		seeded := Seed()
		if err := r.persistLocked(seeded); err != nil {
			return nil, fmt.Errorf("seeding listings: %w", err)
		}
		r.listings = seeded
		r.loaded = true
		return r.snapshotLocked(), nil
	}

	var elems []json.RawMessage
	if jsonErr := json.Unmarshal([]byte(raw), &elems); jsonErr != nil {
		// Unparseable blob: degrade to empty rather than crash or
		// resurrect a seed set the user may have deleted.
		r.listings = []Listing{}
		r.loaded = true
		return r.snapshotLocked(), nil
	}

	institutes := r.config.Load().Institutes
	listings := make([]Listing, 0, len(elems))
	for _, e := range elems {
		listings = append(listings, Decode(e, institutes))
	}

	r.listings = listings
	r.loaded = true
	return r.snapshotLocked(), nil
}

// All returns the full in-memory collection, loading it on first use.
func (r *Repository) All() ([]Listing, error) {
	r.mu.RLock()
	if r.loaded {
		defer r.mu.RUnlock()
		return r.snapshotLocked(), nil
	}
	r.mu.RUnlock()

	return r.Load()
}

// Get returns the listing with the given id.
// ok is false when no such listing exists.
func (r *Repository) Get(id string) (Listing, bool, error) {
	listings, err := r.All()
	if err != nil {
		return Listing{}, false, err
	}
	for _, l := range listings {
		if l.ID == id {
			return l, true, nil
		}
	}
	return Listing{}, false, nil
}

// Filtered returns the approved listings matching the criteria,
// preserving collection order.
func (r *Repository) Filtered(c Criteria) ([]Listing, error) {
	listings, err := r.All()
	if err != nil {
		return nil, err
	}
	return Filter(listings, c), nil
}

// Add normalizes the listing, appends it, and persists the collection.
// A listing without an id gets a fresh one.
func (r *Repository) Add(l Listing) (Listing, error) {
	if _, err := r.All(); err != nil {
		return Listing{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if l.ID == "" {
		l.ID = NewID()
	}
	l = Normalize(l, r.config.Load().Institutes)

	next := append(r.snapshotLocked(), l)
	if err := r.persistLocked(next); err != nil {
		return Listing{}, fmt.Errorf("saving listing: %w", err)
	}
	r.listings = next

	return l, nil
}

// Update replaces the listing with the given id. Unknown ids are a
// silent no-op.
func (r *Repository) Update(id string, l Listing) error {
	if _, err := r.All(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.snapshotLocked()
	found := false
	for i := range next {
		if next[i].ID == id {
			l.ID = id
			next[i] = Normalize(l, r.config.Load().Institutes)
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if err := r.persistLocked(next); err != nil {
		return fmt.Errorf("saving listing: %w", err)
	}
	r.listings = next
	return nil
}

// Delete removes the listing with the given id. Unknown ids are a
// silent no-op.
func (r *Repository) Delete(id string) error {
	if _, err := r.All(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Listing, 0, len(r.listings))
	for _, l := range r.listings {
		if l.ID != id {
			next = append(next, l)
		}
	}
	if len(next) == len(r.listings) {
		return nil
	}

	if err := r.persistLocked(next); err != nil {
		return fmt.Errorf("saving listings: %w", err)
	}
	r.listings = next
	return nil
}

// Approve sets ApprovalStatus to Approved on the listing with the given
// id, leaving every other field untouched. Unknown ids are a silent
// no-op; approving an approved listing changes nothing.
func (r *Repository) Approve(id string) error {
	if _, err := r.All(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.snapshotLocked()
	found := false
	for i := range next {
		if next[i].ID == id {
			if next[i].ApprovalStatus == StatusApproved {
				return nil
			}
			next[i].ApprovalStatus = StatusApproved
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if err := r.persistLocked(next); err != nil {
		return fmt.Errorf("saving listing: %w", err)
	}
	r.listings = next
	return nil
}

// snapshotLocked copies the collection so callers cannot mutate the
// repository's slice. Callers must hold at least a read lock.
func (r *Repository) snapshotLocked() []Listing {
	out := make([]Listing, len(r.listings))
	copy(out, r.listings)
	return out
}

// persistLocked rewrites the whole collection to storage.
func (r *Repository) persistLocked(listings []Listing) error {
	data, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("encoding listings: %w", err)
	}
	return r.store.Set(store.KeyListings, string(data))
}

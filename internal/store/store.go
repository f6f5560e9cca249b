// Package store provides the key-value persistence layer.
//
// The application persists whole JSON blobs under well-known keys:
// reads return the raw string, writes replace the previous value
// wholesale. There is no
// transactionality across keys; callers tolerate partially written
// state by normalizing everything they read back.
package store

// Well-known storage keys. The key names carry the v2 suffix where the
// persisted shape has changed in the past, so older blobs are simply
// never found rather than misparsed.
const (
	KeyListings = "erooms_properties_v2"
	KeyUsers    = "erooms_registered_users"
	KeyConfig   = "erooms_app_config"
	KeySession  = "erooms_auth_user"
)

// Store is an opaque key-value blob store.
// Get reports ok=false when the key has never been written.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

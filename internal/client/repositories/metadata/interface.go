// Package metadata implements the client's persistent key-value store.
// It durably holds the session token and the serialized user record across
// process restarts; the in-memory session stays authoritative once loaded.
package metadata

import "context"

// Keys under which the session mirror is persisted. Both entries must be
// present together or the stored session is treated as absent.
const (
	KeyAuthToken = "auth_token"
	KeyUserData  = "user_data"
)

// Repository is a string-keyed blob store.
type Repository interface {
	// Get returns the value for key, or (nil, nil) if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

package port

import "context"

// SettingsStore is the host's persistent key-value store.
type SettingsStore interface {
	// Load returns the raw payload stored under key.
	// found is false when nothing has been stored yet.
	Load(ctx context.Context, key string) (data []byte, found bool, err error)

	// Save replaces the payload stored under key.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes the payload stored under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

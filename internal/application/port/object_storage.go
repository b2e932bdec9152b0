package port

import "context"

// ObjectStorage stores font binaries. Every call is atomic: a failed Put
// leaves nothing behind and a failed Remove leaves the object intact.
type ObjectStorage interface {
	Put(ctx context.Context, path string, data []byte) error
	Get(ctx context.Context, path string) ([]byte, error)
	Remove(ctx context.Context, path string) error
}

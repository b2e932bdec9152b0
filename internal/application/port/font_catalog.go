package port

import (
	"context"

	"github.com/bnema/fontkeeper/internal/domain/entity"
)

// FontCatalog is the registry of installed fonts that management use cases mutate.
type FontCatalog interface {
	Snapshot() entity.Settings
	FindByID(id string) (entity.FontRecord, bool)
	FindByFamily(family string) (entity.FontRecord, bool)
	HasStoragePath(path string) bool

	// Install rejects a duplicate family with entity.ErrDuplicateFont.
	Install(ctx context.Context, rec entity.FontRecord) error
	// Activate ignores unknown ids and reports whether anything changed.
	Activate(ctx context.Context, id string) bool
	Deactivate(ctx context.Context)
	// Remove drops the record and best-effort deletes its stored asset.
	Remove(ctx context.Context, id string) (entity.FontRecord, bool)
	// SetFontSizeDelta clamps and stores the delta, returning the stored value.
	SetFontSizeDelta(ctx context.Context, delta float64) int

	// Batch defers change notification until fn returns.
	Batch(ctx context.Context, fn func() error) error
}

// StyleEngine applies catalog state to the host until closed.
type StyleEngine interface {
	// Close removes every style the engine injected and releases cached assets.
	Close(ctx context.Context) error
}

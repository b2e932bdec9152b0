package fontengine

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/domain/entity"
	"github.com/bnema/fontkeeper/internal/logging"
)

// Listener observes catalog mutations. It receives a snapshot taken after the
// mutation; listeners that must not act on stale state re-read the catalog.
type Listener func(ctx context.Context, snapshot entity.Settings)

// AssetRevoker releases cached asset handles of deleted records.
type AssetRevoker interface {
	Revoke(id string)
}

// Catalog is the registry of installed fonts plus the active font and size
// delta. Every mutation notifies listeners once, or once per outermost Batch.
type Catalog struct {
	storage port.ObjectStorage
	revoker AssetRevoker

	mu         sync.Mutex
	settings   entity.Settings
	listeners  map[int]Listener
	nextID     int
	batchDepth int
	dirty      bool
}

var _ port.FontCatalog = (*Catalog)(nil)

// NewCatalog creates a catalog over storage. revoker may be nil.
func NewCatalog(storage port.ObjectStorage, revoker AssetRevoker) *Catalog {
	return &Catalog{
		storage:   storage,
		revoker:   revoker,
		settings:  entity.DefaultSettings(),
		listeners: map[int]Listener{},
	}
}

// Load replaces the catalog state without notifying listeners. The settings
// are normalized so the catalog invariants hold regardless of the source.
func (c *Catalog) Load(settings entity.Settings) {
	raw, err := entity.EncodeSettings(settings)
	normalized := entity.DefaultSettings()
	if err == nil {
		normalized = entity.DecodeSettings(raw)
	}
	if _, ok := normalized.Active(); !ok {
		normalized.ActiveFont = ""
	}

	c.mu.Lock()
	c.settings = normalized
	c.mu.Unlock()
}

// Snapshot returns a deep copy of the current settings.
func (c *Catalog) Snapshot() entity.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings.Clone()
}

// OnChange registers l and returns a function that unregisters it.
func (c *Catalog) OnChange(l Listener) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// Fonts returns the installed records in import order.
func (c *Catalog) Fonts() []entity.FontRecord {
	return c.Snapshot().InstalledFonts
}

// FindByID looks a record up by id.
func (c *Catalog) FindByID(id string) (entity.FontRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings.FindByID(id)
}

// FindByFamily looks a record up by family.
func (c *Catalog) FindByFamily(family string) (entity.FontRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings.FindByFamily(family)
}

// HasStoragePath reports whether a record already owns path.
func (c *Catalog) HasStoragePath(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return lo.ContainsBy(c.settings.InstalledFonts, func(f entity.FontRecord) bool {
		return f.StoragePath == path
	})
}

// ResolveActive returns the active record, or false when the host default applies.
func (c *Catalog) ResolveActive() (entity.FontRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings.Active()
}

// Install appends rec and activates it when no font is active. A record
// whose family or storage path is already present is rejected.
func (c *Catalog) Install(ctx context.Context, rec entity.FontRecord) error {
	if !rec.Valid() {
		return fmt.Errorf("%w: record %q is missing id, family or storage path", entity.ErrInvalidFontFile, rec.Name)
	}

	c.mu.Lock()
	if _, dup := c.settings.FindByFamily(rec.Family); dup {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", entity.ErrDuplicateFont, rec.Family)
	}
	if _, dup := c.settings.FindByID(rec.ID); dup {
		c.mu.Unlock()
		return fmt.Errorf("%w: id %s", entity.ErrDuplicateFont, rec.ID)
	}
	if lo.ContainsBy(c.settings.InstalledFonts, func(f entity.FontRecord) bool { return f.StoragePath == rec.StoragePath }) {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", entity.ErrDuplicateFont, rec.StoragePath)
	}
	c.settings.InstalledFonts = append(c.settings.InstalledFonts, rec)
	if _, ok := c.settings.Active(); !ok {
		c.settings.ActiveFont = rec.Family
	}
	c.mu.Unlock()

	logging.FromContext(logging.WithFamily(logging.WithFontID(ctx, rec.ID), rec.Family)).Info().Msg("font installed")
	c.changed(ctx)
	return nil
}

// Activate makes the record with id the active font. Unknown ids are ignored.
func (c *Catalog) Activate(ctx context.Context, id string) bool {
	c.mu.Lock()
	rec, ok := c.settings.FindByID(id)
	if ok {
		c.settings.ActiveFont = rec.Family
	}
	c.mu.Unlock()

	if !ok {
		logging.FromContext(logging.WithFontID(ctx, id)).Debug().Msg("activate ignored: unknown font")
		return false
	}
	c.changed(ctx)
	return true
}

// Deactivate restores the host default font.
func (c *Catalog) Deactivate(ctx context.Context) {
	c.mu.Lock()
	c.settings.ActiveFont = ""
	c.mu.Unlock()
	c.changed(ctx)
}

// SetFontSizeDelta stores the clamped delta and returns it.
func (c *Catalog) SetFontSizeDelta(ctx context.Context, delta float64) int {
	clamped := entity.ClampFontSizeDelta(delta)
	c.mu.Lock()
	c.settings.FontSizeDelta = clamped
	c.mu.Unlock()
	c.changed(ctx)
	return clamped
}

// Remove deletes the record with id. Its stored asset is removed best-effort:
// a storage failure is logged and the record is dropped regardless.
func (c *Catalog) Remove(ctx context.Context, id string) (entity.FontRecord, bool) {
	log := logging.FromContext(logging.WithFontID(ctx, id))

	rec, ok := c.FindByID(id)
	if !ok {
		log.Debug().Msg("remove ignored: unknown font")
		return entity.FontRecord{}, false
	}

	if c.storage != nil {
		if err := c.storage.Remove(ctx, rec.StoragePath); err != nil {
			log.Warn().Err(err).Str("path", rec.StoragePath).Msg("failed to remove font asset")
		}
	}

	c.mu.Lock()
	c.settings.InstalledFonts = lo.Reject(c.settings.InstalledFonts, func(f entity.FontRecord, _ int) bool {
		return f.ID == id
	})
	if c.settings.ActiveFont == rec.Family {
		c.settings.ActiveFont = ""
	}
	c.mu.Unlock()

	if c.revoker != nil {
		c.revoker.Revoke(id)
	}

	log.Info().Str("family", rec.Family).Msg("font removed")
	c.changed(ctx)
	return rec, true
}

// Batch runs fn with change notification deferred; listeners fire once at
// the end if anything changed, even when fn fails.
func (c *Catalog) Batch(ctx context.Context, fn func() error) error {
	c.mu.Lock()
	c.batchDepth++
	c.mu.Unlock()

	err := fn()

	c.mu.Lock()
	c.batchDepth--
	fire := c.batchDepth == 0 && c.dirty
	if fire {
		c.dirty = false
	}
	c.mu.Unlock()

	if fire {
		c.notify(ctx)
	}
	return err
}

func (c *Catalog) changed(ctx context.Context) {
	c.mu.Lock()
	if c.batchDepth > 0 {
		c.dirty = true
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	c.notify(ctx)
}

func (c *Catalog) notify(ctx context.Context) {
	c.mu.Lock()
	snapshot := c.settings.Clone()
	ids := lo.Keys(c.listeners)
	c.mu.Unlock()

	// Registration order.
	slices.Sort(ids)
	for _, id := range ids {
		c.mu.Lock()
		l, ok := c.listeners[id]
		c.mu.Unlock()
		if ok {
			l(ctx, snapshot.Clone())
		}
	}
}

package fontengine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/samber/lo"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/domain/entity"
	"github.com/bnema/fontkeeper/internal/logging"
)

// Options wires an Engine to its collaborators.
type Options struct {
	Profile     HostProfile
	Store       port.SettingsStore
	SettingsKey string
	Storage     port.ObjectStorage
	Document    port.HostDocument
	Loader      AssetLoader
	Fonts       port.FontFaceLoader
	Mode        port.HostMode

	// Detector, when set, picks the first installed family of DetectChain
	// and places it right after the active family.
	Detector    port.FontDetector
	DetectChain []string
}

// Engine owns one font catalog and the styles derived from it. Start loads
// persisted settings and applies them; every later catalog mutation is
// persisted and recomposed; Close removes all styles and releases assets.
type Engine struct {
	opts     Options
	catalog  *Catalog
	composer *StyleComposer

	persistMu sync.Mutex

	mu          sync.Mutex
	started     bool
	unsubscribe []func()
}

// New validates opts and builds an engine. Nothing touches the document or
// the store until Start.
func New(opts Options) (*Engine, error) {
	switch {
	case opts.Store == nil:
		return nil, errors.New("fontengine: settings store is required")
	case opts.Document == nil:
		return nil, errors.New("fontengine: host document is required")
	case opts.Loader == nil:
		return nil, errors.New("fontengine: asset loader is required")
	case opts.SettingsKey == "":
		return nil, errors.New("fontengine: settings key is required")
	}

	e := &Engine{opts: opts}
	e.catalog = NewCatalog(opts.Storage, opts.Loader)
	e.composer = NewStyleComposer(ComposerOptions{
		Document: opts.Document,
		Loader:   opts.Loader,
		Fonts:    opts.Fonts,
		Profile:  opts.Profile,
		Source:   e.catalog.Snapshot,
	})
	return e, nil
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// Composer returns the engine's style composer.
func (e *Engine) Composer() *StyleComposer { return e.composer }

// ReadOnly reports whether management actions are currently refused.
func (e *Engine) ReadOnly() bool {
	return e.opts.Mode != nil && e.opts.Mode.ReadOnly()
}

// Start loads settings, subscribes persistence and composition to catalog
// changes and applies the initial stylesheet. A load failure falls back to
// defaults. Calling Start twice is a no-op.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return nil
	}
	log := logging.FromContext(ctx)

	e.catalog.Load(e.loadSettings(ctx))
	e.applyDetectedFallback(ctx)

	e.unsubscribe = append(e.unsubscribe,
		e.catalog.OnChange(func(ctx context.Context, _ entity.Settings) { e.persist(ctx) }),
		e.catalog.OnChange(func(ctx context.Context, _ entity.Settings) { e.composer.Recompose(ctx) }),
	)
	e.started = true

	e.composer.Recompose(ctx)

	snap := e.catalog.Snapshot()
	log.Info().
		Int("fonts", len(snap.InstalledFonts)).
		Str("active", snap.ActiveFont).
		Int("delta", snap.FontSizeDelta).
		Bool("read_only", e.ReadOnly()).
		Msg("font engine started")
	return nil
}

// Close unsubscribes from the catalog and removes every style the engine
// injected. The catalog stays usable but changes are no longer applied.
func (e *Engine) Close(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.started {
		return nil
	}
	for _, unsub := range e.unsubscribe {
		unsub()
	}
	e.unsubscribe = nil
	e.composer.Teardown(ctx)
	e.started = false
	logging.FromContext(ctx).Debug().Msg("font engine stopped")
	return nil
}

func (e *Engine) loadSettings(ctx context.Context) entity.Settings {
	log := logging.FromContext(ctx)

	data, found, err := e.opts.Store.Load(ctx, e.opts.SettingsKey)
	if err != nil {
		log.Error().Err(err).Msg("failed to load font settings; using defaults")
		return entity.DefaultSettings()
	}
	if !found {
		return entity.DefaultSettings()
	}

	settings := entity.DecodeSettings(data)
	if normalized, err := entity.EncodeSettings(settings); err == nil && !bytes.Equal(normalized, data) {
		log.Info().Msg("font settings migrated to current format")
		if err := e.opts.Store.Save(ctx, e.opts.SettingsKey, normalized); err != nil {
			log.Warn().Err(err).Msg("failed to write migrated font settings")
		}
	}
	return settings
}

// persist writes the latest catalog state. Saves are serialized and each
// reads the catalog when it runs, so the last save reflects the newest state.
func (e *Engine) persist(ctx context.Context) error {
	e.persistMu.Lock()
	defer e.persistMu.Unlock()

	data, err := entity.EncodeSettings(e.catalog.Snapshot())
	if err == nil {
		err = e.opts.Store.Save(ctx, e.opts.SettingsKey, data)
	}
	if err != nil {
		if !errors.Is(err, entity.ErrPersistenceFailure) {
			err = fmt.Errorf("%w: %w", entity.ErrPersistenceFailure, err)
		}
		logging.FromContext(ctx).Error().Err(err).Msg("failed to save font settings")
		return err
	}
	return nil
}

func (e *Engine) applyDetectedFallback(ctx context.Context) {
	d := e.opts.Detector
	if d == nil || len(e.opts.DetectChain) == 0 || !d.IsAvailable(ctx) {
		return
	}
	best := d.SelectBestFont(ctx, port.FontCategorySansSerif, e.opts.DetectChain)
	if best == "" || best == string(port.FontCategorySansSerif) {
		return
	}
	e.composer.SetFallbackStack(lo.Uniq(append([]string{best}, e.opts.Profile.FallbackStack...)))
	logging.FromContext(ctx).Debug().Str("family", best).Msg("system fallback font selected")
}

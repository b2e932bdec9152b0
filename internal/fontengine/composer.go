package fontengine

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/domain/entity"
	"github.com/bnema/fontkeeper/internal/logging"
)

// StyleComposer derives the live stylesheet from the catalog and swaps it
// into the host document.
//
// Each Recompose takes a sequence number together with its settings snapshot
// and resolves the active asset without holding any lock. Before touching the
// document it re-checks the sequence; if a newer composition has started in
// the meantime it abandons silently, so the most recently started composition
// always determines the final state.
type StyleComposer struct {
	doc     port.HostDocument
	loader  AssetLoader
	tracker *BaseSizeTracker
	fonts   port.FontFaceLoader
	profile HostProfile
	source  func() entity.Settings

	startMu sync.Mutex
	seq     atomic.Uint64

	applyMu sync.Mutex
	stack   []string
	css     string
}

// ComposerOptions configures a StyleComposer.
type ComposerOptions struct {
	Document port.HostDocument
	Loader   AssetLoader
	// Fonts warms the active family after injection. Optional.
	Fonts   port.FontFaceLoader
	Profile HostProfile
	// Source returns the current settings.
	Source func() entity.Settings
}

// NewStyleComposer creates a composer and its base-size tracker.
func NewStyleComposer(opts ComposerOptions) *StyleComposer {
	c := &StyleComposer{
		doc:     opts.Document,
		loader:  opts.Loader,
		fonts:   opts.Fonts,
		profile: opts.Profile,
		source:  opts.Source,
		stack:   opts.Profile.FallbackStack,
	}
	c.tracker = NewBaseSizeTracker(opts.Document, opts.Profile, &c.applyMu)
	return c
}

// Tracker returns the base-size tracker driven by this composer.
func (c *StyleComposer) Tracker() *BaseSizeTracker {
	return c.tracker
}

// SetFallbackStack replaces the families that follow the active font.
// It takes effect on the next composition.
func (c *StyleComposer) SetFallbackStack(stack []string) {
	c.applyMu.Lock()
	defer c.applyMu.Unlock()
	c.stack = append([]string(nil), stack...)
}

// CSS returns the text of the stylesheet currently injected, or "".
func (c *StyleComposer) CSS() string {
	c.applyMu.Lock()
	defer c.applyMu.Unlock()
	return c.css
}

// Recompose rebuilds and injects the stylesheet. It reports whether this call
// took effect; a false result means a newer composition superseded it or the
// document rejected the style block. It never fails the caller.
func (c *StyleComposer) Recompose(ctx context.Context) bool {
	log := logging.FromContext(ctx)

	c.startMu.Lock()
	seq := c.seq.Add(1)
	settings := c.source()
	c.startMu.Unlock()

	face := c.resolveFace(ctx, settings)

	c.applyMu.Lock()
	if c.seq.Load() != seq {
		c.applyMu.Unlock()
		log.Debug().Uint64("seq", seq).Msg("composition superseded; discarding")
		return false
	}
	applied := c.applyLocked(ctx, face, settings.FontSizeDelta)
	c.applyMu.Unlock()

	if applied && face != nil {
		c.warmup(ctx, face.Family)
	}
	return applied
}

func (c *StyleComposer) resolveFace(ctx context.Context, settings entity.Settings) *FontFace {
	rec, ok := settings.Active()
	if !ok {
		return nil
	}
	ref, err := c.loader.Resolve(ctx, rec)
	if err != nil {
		logging.FromContext(logging.WithFamily(logging.WithFontID(ctx, rec.ID), rec.Family)).Warn().Err(err).
			Msg("active font unavailable; using host default")
		return nil
	}
	return &FontFace{Family: rec.Family, URL: ref, Format: rec.Format()}
}

// applyLocked swaps the stylesheet and pins the font reference it uses. The
// caller holds applyMu. Documents implementing port.StyleBatcher publish the
// removal and the insertion together.
func (c *StyleComposer) applyLocked(ctx context.Context, face *FontFace, delta int) bool {
	batch, batched := c.doc.(port.StyleBatcher)
	if batched {
		batch.BeginStyles()
	}
	applied := c.swapLocked(ctx, face, delta)
	if batched {
		if err := batch.CommitStyles(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to publish stylesheet")
			c.css = ""
			return false
		}
	}

	if applied && face != nil {
		c.loader.Pin(face.URL)
	} else {
		c.loader.Pin("")
	}
	return applied
}

func (c *StyleComposer) swapLocked(ctx context.Context, face *FontFace, delta int) bool {
	log := logging.FromContext(ctx)

	c.removeLocked(ctx)

	sheet := Stylesheet{Face: face, Stack: c.stack}
	if delta != 0 {
		c.tracker.prepareLocked(ctx)
		sheet.Size = &SizeOverride{
			Delta:      delta,
			UIBase:     c.rootSizePx(c.profile.UISizeProperty, c.profile.UISizeFallback),
			EditorBase: c.rootSizePx(c.profile.EditorSizeProperty, c.profile.EditorSizeFallback),
		}
	} else {
		c.tracker.clearLocked(ctx)
	}

	if sheet.Empty() {
		log.Debug().Msg("no font overrides; host defaults restored")
		return true
	}

	css := sheet.Render(c.profile)
	block := port.StyleBlock{ID: c.profile.StyleID(), Marker: c.profile.StyleMarker, CSS: css}
	if err := c.doc.InsertStyle(ctx, block); err != nil {
		log.Error().Err(err).Msg("failed to inject stylesheet")
		c.tracker.clearLocked(ctx)
		return false
	}
	c.css = css
	c.tracker.setDeltaLocked(delta)

	ev := log.Debug().Int("delta", delta).Int("bytes", len(css))
	if face != nil {
		ev = ev.Str("family", face.Family)
	}
	ev.Msg("stylesheet applied")
	return true
}

// removeLocked drops this engine's stylesheet, any left by earlier
// generations, and inline root overrides they may have set.
func (c *StyleComposer) removeLocked(ctx context.Context) {
	c.doc.RemoveStyles(ctx, c.profile.StyleID(), c.profile.styleMarkers()...)
	c.doc.RemoveRootProperties(c.profile.rootOverrideProperties()...)
	c.css = ""
}

func (c *StyleComposer) rootSizePx(name string, fallback float64) float64 {
	v, ok := c.doc.RootPropertyPx(name)
	if !ok || !positiveFinite(v) {
		return fallback
	}
	return v
}

func (c *StyleComposer) warmup(ctx context.Context, family string) {
	if c.fonts == nil {
		return
	}
	spec := WarmupSpec(family)
	if err := c.fonts.LoadFont(ctx, spec); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("spec", spec).Msg("font warm-up failed")
	}
}

// Teardown removes everything the composer added to the document and
// releases cached assets. In-flight compositions are abandoned.
func (c *StyleComposer) Teardown(ctx context.Context) {
	c.startMu.Lock()
	c.seq.Add(1)
	c.startMu.Unlock()

	c.applyMu.Lock()
	c.removeLocked(ctx)
	c.tracker.clearLocked(ctx)
	c.applyMu.Unlock()

	c.loader.RevokeAll()
	logging.FromContext(ctx).Debug().Msg("styles torn down")
}

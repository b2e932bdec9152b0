package fontengine

import (
	"context"
	"math"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/logging"
)

const markerValue = "1"

// BaseSizeTracker records, per element, the font size with the current delta
// subtracted, so the delta rule can be re-applied without compounding.
//
// State changes happen under guard, which the composer also holds while it
// swaps stylesheets; the subtree observer takes it too, so elements added
// mid-swap are captured against the stylesheet that ends up live.
type BaseSizeTracker struct {
	doc      port.HostDocument
	attr     string
	property string
	isTarget TextTargetFunc
	guard    sync.Locker

	ready      bool
	delta      int
	disconnect func()
	log        zerolog.Logger
}

// NewBaseSizeTracker creates a tracker for doc. guard serializes tracker
// state with stylesheet swaps.
func NewBaseSizeTracker(doc port.HostDocument, profile HostProfile, guard sync.Locker) *BaseSizeTracker {
	return &BaseSizeTracker{
		doc:      doc,
		attr:     profile.BaseSizeAttribute,
		property: profile.BaseSizeProperty,
		isTarget: TextStyleTarget(profile.IconClasses),
		guard:    guard,
		log:      zerolog.Nop(),
	}
}

// CaptureBase records el's current computed size minus delta. Non-text
// elements and non-finite or non-positive sizes are skipped.
func (t *BaseSizeTracker) CaptureBase(el port.Element, delta int) bool {
	if !t.isTarget(el) {
		return false
	}
	px, err := el.ComputedFontSize()
	if err != nil || !positiveFinite(px) {
		return false
	}
	base := px - float64(delta)
	if !positiveFinite(base) {
		return false
	}
	el.SetAttr(t.attr, markerValue)
	el.SetStyleProperty(t.property, FormatPx(base)+"px")
	return true
}

// CaptureAll applies CaptureBase to root and all of its descendants and
// returns how many elements were recorded.
func (t *BaseSizeTracker) CaptureAll(root port.Element, delta int) int {
	if root == nil {
		return 0
	}
	n := 0
	if t.CaptureBase(root, delta) {
		n++
	}
	for _, el := range root.Descendants() {
		if t.CaptureBase(el, delta) {
			n++
		}
	}
	return n
}

// Ready reports whether the document has been captured this session.
func (t *BaseSizeTracker) Ready() bool {
	t.guard.Lock()
	defer t.guard.Unlock()
	return t.ready
}

// prepareLocked captures the whole document once per session and starts
// watching for inserted subtrees. The caller holds guard and has removed the
// previous stylesheet, so computed sizes carry no delta.
func (t *BaseSizeTracker) prepareLocked(ctx context.Context) {
	log := logging.FromContext(ctx)
	t.log = *log

	if !t.ready {
		n := t.CaptureAll(t.doc.Body(), 0)
		t.ready = true
		log.Debug().Int("elements", n).Msg("captured base font sizes")
	}

	if t.disconnect != nil {
		return
	}
	disconnect, err := t.doc.ObserveSubtrees(t.onSubtreesAdded)
	if err != nil {
		log.Warn().Err(err).Msg("subtree observer unavailable; new elements keep host sizes")
		return
	}
	t.disconnect = disconnect
}

// setDeltaLocked records the delta the live stylesheet applies.
func (t *BaseSizeTracker) setDeltaLocked(delta int) {
	t.delta = delta
}

// onSubtreesAdded runs for host insertions. The new nodes already render with
// the live delta, so it is subtracted to recover their base.
func (t *BaseSizeTracker) onSubtreesAdded(added []port.Element) {
	t.guard.Lock()
	defer t.guard.Unlock()

	if t.delta == 0 {
		return
	}
	n := 0
	for _, root := range added {
		n += t.CaptureAll(root, t.delta)
	}
	t.log.Trace().Int("elements", n).Int("delta", t.delta).Msg("captured inserted subtrees")
}

// clearLocked disconnects the observer and strips every marker.
func (t *BaseSizeTracker) clearLocked(ctx context.Context) {
	if t.disconnect != nil {
		t.disconnect()
		t.disconnect = nil
	}
	t.ready = false
	t.delta = 0

	marked := t.doc.QueryByAttr(t.attr, markerValue)
	for _, el := range marked {
		el.RemoveAttr(t.attr)
		el.RemoveStyleProperty(t.property)
	}
	if len(marked) > 0 {
		logging.FromContext(ctx).Debug().Int("elements", len(marked)).Msg("cleared base font sizes")
	}
}

// Clear tears tracking down outside a composition.
func (t *BaseSizeTracker) Clear(ctx context.Context) {
	t.guard.Lock()
	defer t.guard.Unlock()
	t.clearLocked(ctx)
}

func positiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

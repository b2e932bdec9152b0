package fontengine

import "github.com/bnema/fontkeeper/internal/application/port"

// nonTextTags never carry text whose size the engine should track.
var nonTextTags = map[string]struct{}{
	"script":   {},
	"style":    {},
	"link":     {},
	"meta":     {},
	"noscript": {},
	"svg":      {},
	"path":     {},
	"g":        {},
	"use":      {},
	"symbol":   {},
	"img":      {},
	"canvas":   {},
	"video":    {},
	"audio":    {},
}

// TextTargetFunc reports whether an element's font size should be tracked.
type TextTargetFunc func(el port.Element) bool

// TextStyleTarget returns the predicate for a host: media, embedded graphics
// and metadata tags are excluded, as is anything carrying an icon class.
func TextStyleTarget(iconClasses []string) TextTargetFunc {
	return func(el port.Element) bool {
		if el == nil {
			return false
		}
		if _, skip := nonTextTags[el.Tag()]; skip {
			return false
		}
		for _, c := range iconClasses {
			if el.HasClass(c) {
				return false
			}
		}
		return true
	}
}

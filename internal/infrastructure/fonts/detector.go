// Package fonts detects installed system fonts through fontconfig.
package fonts

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/logging"
)

// Fallback chains for each font category (unexported to prevent modification).
var (
	sansSerifFallbackChain = []string{
		"Noto Sans",
		"DejaVu Sans",
		"Liberation Sans",
		"Source Han Sans SC",
		"FreeSans",
	}

	monospaceFallbackChain = []string{
		"JetBrains Mono",
		"Noto Sans Mono",
		"DejaVu Sans Mono",
		"Liberation Mono",
	}
)

// SansSerifFallbackChain returns the fallback chain for UI text.
func SansSerifFallbackChain() []string {
	return append([]string(nil), sansSerifFallbackChain...)
}

// MonospaceFallbackChain returns the fallback chain for code.
func MonospaceFallbackChain() []string {
	return append([]string(nil), monospaceFallbackChain...)
}

// ListFunc returns raw `fc-list : family` output.
type ListFunc func(ctx context.Context) ([]byte, error)

// Detector implements port.FontDetector on top of fc-list.
type Detector struct {
	list      ListFunc
	available func() bool

	mu     sync.Mutex
	cached []string
}

// NewDetector creates a detector that shells out to fc-list.
func NewDetector() *Detector {
	return &Detector{
		list: func(ctx context.Context) ([]byte, error) {
			return exec.CommandContext(ctx, "fc-list", ":", "family").Output()
		},
		available: func() bool {
			_, err := exec.LookPath("fc-list")
			return err == nil
		},
	}
}

// NewDetectorWithLister creates a detector backed by a custom lister.
func NewDetectorWithLister(list ListFunc) *Detector {
	return &Detector{list: list, available: func() bool { return true }}
}

// IsAvailable implements port.FontDetector.
func (d *Detector) IsAvailable(_ context.Context) bool {
	return d.available()
}

// GetAvailableFonts implements port.FontDetector. Results are cached after
// the first successful query.
func (d *Detector) GetAvailableFonts(ctx context.Context) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cached != nil {
		return d.cached, nil
	}

	out, err := d.list(ctx)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("failed to query system fonts")
		return nil, err
	}
	d.cached = parseFamilies(out)
	logging.FromContext(ctx).Debug().Int("count", len(d.cached)).Msg("cached system fonts")
	return d.cached, nil
}

// SelectBestFont implements port.FontDetector.
func (d *Detector) SelectBestFont(ctx context.Context, category port.FontCategory, fallbackChain []string) string {
	installed, err := d.GetAvailableFonts(ctx)
	if err != nil {
		return genericFallback(category)
	}
	set := make(map[string]struct{}, len(installed))
	for _, f := range installed {
		set[f] = struct{}{}
	}
	for _, candidate := range fallbackChain {
		if _, ok := set[candidate]; ok {
			return candidate
		}
	}
	return genericFallback(category)
}

// parseFamilies splits fc-list output into a sorted set of family names.
// Lines may carry several comma-separated aliases, e.g. "DejaVu Sans,DejaVu Sans Light".
func parseFamilies(out []byte) []string {
	set := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		for _, family := range strings.Split(scanner.Text(), ",") {
			if family = strings.TrimSpace(family); family != "" {
				set[family] = struct{}{}
			}
		}
	}
	families := make([]string, 0, len(set))
	for f := range set {
		families = append(families, f)
	}
	sort.Strings(families)
	return families
}

func genericFallback(category port.FontCategory) string {
	switch category {
	case port.FontCategorySerif:
		return "serif"
	case port.FontCategoryMonospace:
		return "monospace"
	default:
		return "sans-serif"
	}
}

var _ port.FontDetector = (*Detector)(nil)

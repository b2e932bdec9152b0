package document

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/logging"
)

// File publishes injected style blocks to a CSS file that the host loads as
// a snippet. It has no element tree, so base-size tracking is a no-op and
// root sizes come from the configured fallbacks. Every write replaces the
// file through a rename.
type File struct {
	fs   afero.Fs
	path string

	mu       sync.Mutex
	blocks   []port.StyleBlock
	batching bool
	dirty    bool
}

var (
	_ port.HostDocument = (*File)(nil)
	_ port.StyleBatcher = (*File)(nil)
)

// NewFile creates a document that writes to path on fsys.
func NewFile(fsys afero.Fs, path string) *File {
	return &File{fs: fsys, path: path}
}

// Path returns the stylesheet location.
func (f *File) Path() string { return f.path }

func (f *File) Body() port.Element { return nil }

func (f *File) InsertStyle(ctx context.Context, block port.StyleBlock) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blocks = append(f.blocks, block)
	return f.changedLocked(ctx)
}

func (f *File) RemoveStyles(ctx context.Context, id string, markers ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.blocks[:0]
	for _, b := range f.blocks {
		if b.ID == id || containsString(markers, b.Marker) {
			continue
		}
		kept = append(kept, b)
	}
	f.blocks = kept
	if err := f.changedLocked(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("path", f.path).Msg("failed to clear stylesheet")
	}
}

// BeginStyles holds back writes until CommitStyles.
func (f *File) BeginStyles() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batching = true
}

// CommitStyles writes the blocks changed since BeginStyles in one step.
func (f *File) CommitStyles(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batching = false
	if !f.dirty {
		return nil
	}
	return f.flushLocked(ctx)
}

func (f *File) changedLocked(ctx context.Context) error {
	if f.batching {
		f.dirty = true
		return nil
	}
	return f.flushLocked(ctx)
}

func (f *File) QueryByAttr(string, string) []port.Element { return nil }

func (f *File) ObserveSubtrees(func([]port.Element)) (func(), error) {
	return func() {}, nil
}

func (f *File) RootPropertyPx(string) (float64, bool) { return 0, false }

func (f *File) RemoveRootProperties(...string) {}

func (f *File) flushLocked(ctx context.Context) error {
	f.dirty = false
	dir := filepath.Dir(f.path)
	if err := f.fs.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create stylesheet dir: %w", err)
	}

	var b strings.Builder
	for _, block := range f.blocks {
		fmt.Fprintf(&b, "/* %s */\n%s\n", block.ID, block.CSS)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(f.path)+".tmp-"+uuid.NewString())
	if err := afero.WriteFile(f.fs, tmp, []byte(b.String()), 0o644); err != nil {
		_ = f.fs.Remove(tmp)
		return fmt.Errorf("write stylesheet: %w", err)
	}
	if err := f.fs.Rename(tmp, f.path); err != nil {
		_ = f.fs.Remove(tmp)
		return fmt.Errorf("replace stylesheet: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("path", f.path).Int("blocks", len(f.blocks)).Msg("stylesheet written")
	return nil
}

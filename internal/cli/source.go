package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/domain/entity"
)

// FileSource is a font file on a filesystem.
type FileSource struct {
	fs   afero.Fs
	path string
}

var _ port.FontSource = FileSource{}

// NewFileSource creates a source for path on fsys.
func NewFileSource(fsys afero.Fs, path string) FileSource {
	return FileSource{fs: fsys, path: path}
}

// Name returns the base name of the file.
func (s FileSource) Name() string {
	return filepath.Base(s.path)
}

// Open opens the file for reading.
func (s FileSource) Open() (io.ReadCloser, error) {
	return s.fs.Open(s.path)
}

// CollectSources turns command arguments into import sources. Files are
// taken as given so bad ones are reported by the import; directories
// contribute their font files, sorted by name, without recursing.
func CollectSources(fsys afero.Fs, args []string) ([]port.FontSource, error) {
	var sources []port.FontSource
	for _, arg := range args {
		info, err := fsys.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", arg, err)
		}
		if !info.IsDir() {
			sources = append(sources, NewFileSource(fsys, arg))
			continue
		}

		entries, err := afero.ReadDir(fsys, arg)
		if err != nil {
			return nil, fmt.Errorf("cannot list %s: %w", arg, err)
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
		for _, e := range entries {
			if e.IsDir() || entity.ExtFromFilename(e.Name()) == "" {
				continue
			}
			sources = append(sources, NewFileSource(fsys, filepath.Join(arg, e.Name())))
		}
	}
	return sources, nil
}

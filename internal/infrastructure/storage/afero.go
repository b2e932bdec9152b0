// Package storage implements port.ObjectStorage on an afero filesystem.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/domain/entity"
	"github.com/bnema/fontkeeper/internal/logging"
)

const (
	dirPerm  = 0o750
	filePerm = 0o640
)

// Storage keeps objects under host-style absolute paths (e.g.
// /data/public/fontkeeper/fonts/Inter.ttf) inside a single filesystem.
type Storage struct {
	fs afero.Fs
}

var _ port.ObjectStorage = (*Storage)(nil)

// New wraps fsys. Paths are cleaned and treated as rooted.
func New(fsys afero.Fs) *Storage {
	return &Storage{fs: fsys}
}

// NewOnDisk roots storage at dir on the OS filesystem.
func NewOnDisk(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return New(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

// Put writes data to a sibling temp file and renames it into place, so a
// failed write never leaves a partial object behind.
func (s *Storage) Put(ctx context.Context, p string, data []byte) error {
	p = clean(p)
	log := logging.FromContext(ctx)

	if err := s.fs.MkdirAll(path.Dir(p), dirPerm); err != nil {
		return fmt.Errorf("%w: mkdir %s: %w", entity.ErrStorageFailure, path.Dir(p), err)
	}

	tmp := path.Join(path.Dir(p), ".tmp-"+uuid.NewString())
	if err := afero.WriteFile(s.fs, tmp, data, filePerm); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("%w: write %s: %w", entity.ErrStorageFailure, p, err)
	}
	if err := s.fs.Rename(tmp, p); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("%w: commit %s: %w", entity.ErrStorageFailure, p, err)
	}

	log.Debug().Str("path", p).Int("bytes", len(data)).Msg("object stored")
	return nil
}

func (s *Storage) Get(_ context.Context, p string) ([]byte, error) {
	p = clean(p)
	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", entity.ErrStorageFailure, p, err)
	}
	return data, nil
}

// Remove deletes a file or a whole directory. Missing paths are not an error.
func (s *Storage) Remove(ctx context.Context, p string) error {
	p = clean(p)
	if p == "/" {
		return fmt.Errorf("%w: refusing to remove storage root", entity.ErrStorageFailure)
	}
	if err := s.fs.RemoveAll(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: remove %s: %w", entity.ErrStorageFailure, p, err)
	}
	logging.FromContext(ctx).Debug().Str("path", p).Msg("object removed")
	return nil
}

// Exists reports whether an object or directory is present.
func (s *Storage) Exists(_ context.Context, p string) (bool, error) {
	return afero.Exists(s.fs, clean(p))
}

// Size returns the byte size of a file, or the total of all files below a
// directory. Missing paths have size 0.
func (s *Storage) Size(_ context.Context, p string) (int64, error) {
	p = clean(p)
	info, err := s.fs.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	if !info.IsDir() {
		return info.Size(), nil
	}

	var size int64
	err = afero.Walk(s.fs, p, func(_ string, fi os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !fi.IsDir() {
			size += fi.Size()
		}
		return nil
	})
	return size, err
}

func clean(p string) string {
	return path.Clean("/" + p)
}

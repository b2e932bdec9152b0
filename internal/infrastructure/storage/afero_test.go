package storage_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontkeeper/internal/domain/entity"
	"github.com/bnema/fontkeeper/internal/infrastructure/storage"
)

const fontPath = "/data/public/fontkeeper/fonts/Inter.ttf"

func TestStorage_PutGetRemove(t *testing.T) {
	ctx := context.Background()
	fsys := afero.NewMemMapFs()
	s := storage.New(fsys)

	require.NoError(t, s.Put(ctx, fontPath, []byte{0, 1, 0, 0}))

	data, err := s.Get(ctx, fontPath)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 0, 0}, data)

	entries, err := afero.ReadDir(fsys, "/data/public/fontkeeper/fonts")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not survive a successful put")

	require.NoError(t, s.Remove(ctx, fontPath))
	require.NoError(t, s.Remove(ctx, fontPath))

	ok, err := s.Exists(ctx, fontPath)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorage_GetMissingIsStorageFailure(t *testing.T) {
	s := storage.New(afero.NewMemMapFs())
	_, err := s.Get(context.Background(), "/nope.ttf")
	assert.ErrorIs(t, err, entity.ErrStorageFailure)
}

func TestStorage_RemoveDirectoryAndSize(t *testing.T) {
	ctx := context.Background()
	s := storage.New(afero.NewMemMapFs())

	require.NoError(t, s.Put(ctx, "/data/public/fontkeeper/fonts/A.ttf", make([]byte, 10)))
	require.NoError(t, s.Put(ctx, "/data/public/fontkeeper/fonts/B.otf", make([]byte, 5)))

	size, err := s.Size(ctx, "/data/public/fontkeeper/fonts")
	require.NoError(t, err)
	assert.Equal(t, int64(15), size)

	require.NoError(t, s.Remove(ctx, "/data/public/fontkeeper/fonts"))
	size, err = s.Size(ctx, "/data/public/fontkeeper/fonts")
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestStorage_RefusesRoot(t *testing.T) {
	s := storage.New(afero.NewMemMapFs())
	assert.ErrorIs(t, s.Remove(context.Background(), "/"), entity.ErrStorageFailure)
	assert.ErrorIs(t, s.Remove(context.Background(), "../.."), entity.ErrStorageFailure)
}

type failingFs struct{ afero.Fs }

func (failingFs) Rename(string, string) error { return errors.New("disk full") }

func TestStorage_FailedPutLeavesNothing(t *testing.T) {
	mem := afero.NewMemMapFs()
	s := storage.New(failingFs{mem})

	err := s.Put(context.Background(), fontPath, []byte("OTTO"))
	require.ErrorIs(t, err, entity.ErrStorageFailure)

	entries, err := afero.ReadDir(mem, "/data/public/fontkeeper/fonts")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewOnDisk(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewOnDisk(dir)
	require.NoError(t, err)

	require.NoError(t, s.Put(context.Background(), fontPath, []byte("wOFF0000")))
	_, err = os.Stat(dir + fontPath)
	assert.NoError(t, err)
}

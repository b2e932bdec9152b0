package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontkeeper/internal/domain/entity"
	"github.com/bnema/fontkeeper/internal/infrastructure/persistence/sqlite"
)

func TestSettingsStore_LoadMissing(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "settings.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	store := sqlite.NewSettingsStore(lazy)

	data, found, err := store.Load(ctx, "font-settings")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, data)
}

func TestSettingsStore_SaveOverwriteDelete(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "settings.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	store := sqlite.NewSettingsStore(lazy)

	require.NoError(t, store.Save(ctx, "font-settings", []byte(`{"activeFont":"A"}`)))
	require.NoError(t, store.Save(ctx, "font-settings", []byte(`{"activeFont":"B"}`)))

	data, found, err := store.Load(ctx, "font-settings")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"activeFont":"B"}`, string(data))

	require.NoError(t, store.Delete(ctx, "font-settings"))
	require.NoError(t, store.Delete(ctx, "font-settings"))

	_, found, err = store.Load(ctx, "font-settings")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSettingsStore_SurvivesReopen(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "settings.db")

	first := sqlite.NewLazyDB(path)
	require.NoError(t, sqlite.NewSettingsStore(first).Save(ctx, "k", []byte("v")))
	require.NoError(t, first.Close())

	second := sqlite.NewLazyDB(path)
	t.Cleanup(func() { _ = second.Close() })
	data, found, err := sqlite.NewSettingsStore(second).Load(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v"), data)
}

func TestSettingsStore_OpenFailureIsPersistenceFailure(t *testing.T) {
	store := sqlite.NewSettingsStore(sqlite.NewLazyDB(""))
	_, _, err := store.Load(testCtx(), "k")
	assert.ErrorIs(t, err, entity.ErrPersistenceFailure)
}

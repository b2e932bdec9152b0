package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/application/port/mocks"
	"github.com/bnema/fontkeeper/internal/application/usecase"
	"github.com/bnema/fontkeeper/internal/domain/entity"
	"github.com/bnema/fontkeeper/internal/fontengine"
	"github.com/bnema/fontkeeper/internal/infrastructure/storage"
	"github.com/bnema/fontkeeper/internal/logging"
)

const fontDir = "/data/public/fontkeeper/fonts"

var (
	ttfBytes = []byte("\x00\x01\x00\x00glyphs")
	otfBytes = []byte("OTTO\x00\x0b\x00\x80")
	fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type memSource struct {
	name    string
	data    []byte
	openErr error
}

func (s memSource) Name() string { return s.name }

func (s memSource) Open() (io.ReadCloser, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

func sources(s ...memSource) []port.FontSource {
	out := make([]port.FontSource, len(s))
	for i := range s {
		out[i] = s[i]
	}
	return out
}

func passThroughBatch(catalog *mocks.MockFontCatalog) {
	catalog.EXPECT().Batch(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func() error) error { return fn() }).
		Once()
}

func newImportUseCase(catalog port.FontCatalog, store port.ObjectStorage, notifier port.Notification, mode port.HostMode) *usecase.ImportFontsUseCase {
	uc := usecase.NewImportFontsUseCase(catalog, store, notifier, mode, fontDir)
	uc.SetClock(func() time.Time { return fixedNow })
	ids := 0
	uc.SetIDGenerator(func() string {
		ids++
		return []string{"id-1", "id-2", "id-3", "id-4"}[ids-1]
	})
	return uc
}

func TestImportFontsUseCase_InstallsSniffedFormat(t *testing.T) {
	ctx := testContext()
	catalog := mocks.NewMockFontCatalog(t)
	store := mocks.NewMockObjectStorage(t)
	notifier := mocks.NewMockNotification(t)

	wantPath := fontDir + "/Fira_Sans_Bold.otf"
	passThroughBatch(catalog)
	catalog.EXPECT().FindByFamily("Fira Sans Bold").Return(entity.FontRecord{}, false)
	catalog.EXPECT().HasStoragePath(wantPath).Return(false)
	store.EXPECT().Put(mock.Anything, wantPath, otfBytes).Return(nil)
	catalog.EXPECT().Install(mock.Anything, entity.FontRecord{
		ID:          "id-1",
		Name:        "Fira Sans Bold",
		Family:      "Fira Sans Bold",
		StoragePath: wantPath,
		FileExt:     ".otf",
		FileSize:    int64(len(otfBytes)),
		InstalledAt: fixedNow.UTC(),
	}).Return(nil)
	notifier.EXPECT().Show(mock.Anything, "Imported 1 font(s)", port.NotificationSuccess, port.NotificationMediumMs).Return()

	uc := newImportUseCase(catalog, store, notifier, nil)
	out, err := uc.Execute(ctx, sources(memSource{name: "FiraSans-Bold.ttf", data: otfBytes}))

	require.NoError(t, err)
	assert.Equal(t, 1, out.Imported)
	assert.Zero(t, out.Failed)
	require.Len(t, out.Results, 1)
	assert.Equal(t, entity.FontFormatOpenType, out.Results[0].Record.Format())
	assert.Equal(t, "FiraSans-Bold.ttf", out.Results[0].FileName)
}

func TestImportFontsUseCase_IsolatesFailures(t *testing.T) {
	ctx := testContext()
	catalog := mocks.NewMockFontCatalog(t)
	store := mocks.NewMockObjectStorage(t)
	notifier := mocks.NewMockNotification(t)

	passThroughBatch(catalog)
	catalog.EXPECT().FindByFamily("Existing").Return(entity.FontRecord{ID: "x", Family: "Existing"}, true)
	catalog.EXPECT().FindByFamily("Good").Return(entity.FontRecord{}, false)
	catalog.EXPECT().HasStoragePath(fontDir + "/Good.ttf").Return(false)
	store.EXPECT().Put(mock.Anything, fontDir+"/Good.ttf", ttfBytes).Return(nil).Once()
	catalog.EXPECT().Install(mock.Anything, mock.AnythingOfType("entity.FontRecord")).Return(nil).Once()

	notifier.EXPECT().Show(mock.Anything, "Invalid font file: notes.txt", port.NotificationError, port.NotificationLongMs).Return()
	notifier.EXPECT().Show(mock.Anything, "Invalid font file: junk.ttf", port.NotificationError, port.NotificationLongMs).Return()
	notifier.EXPECT().Show(mock.Anything, "Font already installed: Existing.ttf", port.NotificationWarning, port.NotificationMediumMs).Return()
	notifier.EXPECT().Show(mock.Anything, "Failed to import Broken.woff", port.NotificationError, port.NotificationLongMs).Return()
	notifier.EXPECT().Show(mock.Anything, "Imported 1 font(s)", port.NotificationSuccess, port.NotificationMediumMs).Return()

	uc := newImportUseCase(catalog, store, notifier, nil)
	out, err := uc.Execute(ctx, sources(
		memSource{name: "notes.txt", data: ttfBytes},
		memSource{name: "junk.ttf", data: []byte("not a font at all")},
		memSource{name: "Existing.ttf", data: ttfBytes},
		memSource{name: "Broken.woff", openErr: errors.New("permission denied")},
		memSource{name: "Good.ttf", data: ttfBytes},
	))

	require.NoError(t, err)
	assert.Equal(t, 1, out.Imported)
	assert.Equal(t, 4, out.Failed)
	require.Len(t, out.Results, 5)
	assert.ErrorIs(t, out.Results[0].Err, entity.ErrInvalidFontFile)
	assert.ErrorIs(t, out.Results[1].Err, entity.ErrInvalidFontFile)
	assert.ErrorIs(t, out.Results[2].Err, entity.ErrDuplicateFont)
	assert.Error(t, out.Results[3].Err)
	assert.NoError(t, out.Results[4].Err)
	assert.Equal(t, "Good", out.Results[4].Record.Family)
}

func TestImportFontsUseCase_StorageFailureSkipsInstall(t *testing.T) {
	ctx := testContext()
	catalog := mocks.NewMockFontCatalog(t)
	store := mocks.NewMockObjectStorage(t)

	passThroughBatch(catalog)
	catalog.EXPECT().FindByFamily("Inter").Return(entity.FontRecord{}, false)
	catalog.EXPECT().HasStoragePath(fontDir + "/Inter.ttf").Return(false)
	store.EXPECT().Put(mock.Anything, fontDir+"/Inter.ttf", ttfBytes).Return(errors.New("disk full"))

	uc := newImportUseCase(catalog, store, nil, nil)
	out, err := uc.Execute(ctx, sources(memSource{name: "Inter.ttf", data: ttfBytes}))

	require.NoError(t, err)
	assert.Equal(t, 1, out.Failed)
	assert.ErrorIs(t, out.Results[0].Err, entity.ErrStorageFailure)
}

func TestImportFontsUseCase_InstallFailureRemovesFile(t *testing.T) {
	ctx := testContext()
	catalog := mocks.NewMockFontCatalog(t)
	store := mocks.NewMockObjectStorage(t)

	passThroughBatch(catalog)
	catalog.EXPECT().FindByFamily("Inter").Return(entity.FontRecord{}, false)
	catalog.EXPECT().HasStoragePath(fontDir + "/Inter.ttf").Return(false)
	store.EXPECT().Put(mock.Anything, fontDir+"/Inter.ttf", ttfBytes).Return(nil)
	catalog.EXPECT().Install(mock.Anything, mock.Anything).Return(entity.ErrDuplicateFont)
	store.EXPECT().Remove(mock.Anything, fontDir+"/Inter.ttf").Return(nil)

	uc := newImportUseCase(catalog, store, nil, nil)
	out, err := uc.Execute(ctx, sources(memSource{name: "Inter.ttf", data: ttfBytes}))

	require.NoError(t, err)
	assert.ErrorIs(t, out.Results[0].Err, entity.ErrDuplicateFont)
}

func TestImportFontsUseCase_SlugCollisionIsDuplicate(t *testing.T) {
	ctx := testContext()
	catalog := mocks.NewMockFontCatalog(t)
	store := mocks.NewMockObjectStorage(t)

	passThroughBatch(catalog)
	catalog.EXPECT().FindByFamily("My Font").Return(entity.FontRecord{}, false)
	catalog.EXPECT().HasStoragePath(fontDir + "/My_Font.ttf").Return(true)

	uc := newImportUseCase(catalog, store, nil, nil)
	out, err := uc.Execute(ctx, sources(memSource{name: "My Font.ttf", data: ttfBytes}))

	require.NoError(t, err)
	assert.ErrorIs(t, out.Results[0].Err, entity.ErrDuplicateFont)
}

func TestImportFontsUseCase_ReadOnly(t *testing.T) {
	catalog := mocks.NewMockFontCatalog(t)
	store := mocks.NewMockObjectStorage(t)
	mode := mocks.NewMockHostMode(t)
	mode.EXPECT().ReadOnly().Return(true)

	uc := newImportUseCase(catalog, store, nil, mode)
	out, err := uc.Execute(testContext(), sources(memSource{name: "Inter.ttf", data: ttfBytes}))

	assert.ErrorIs(t, err, entity.ErrReadOnly)
	assert.Nil(t, out)
}

func TestImportFontsUseCase_EmptyBatch(t *testing.T) {
	catalog := mocks.NewMockFontCatalog(t)
	store := mocks.NewMockObjectStorage(t)

	out, err := newImportUseCase(catalog, store, nil, nil).Execute(testContext(), nil)

	require.NoError(t, err)
	assert.Empty(t, out.Results)
}

func TestImportFontsUseCase_BatchAgainstCatalog(t *testing.T) {
	ctx := testContext()
	objects := storage.New(afero.NewMemMapFs())
	catalog := fontengine.NewCatalog(objects, nil)
	changes := 0
	catalog.OnChange(func(context.Context, entity.Settings) { changes++ })

	uc := usecase.NewImportFontsUseCase(catalog, objects, nil, nil, fontDir)
	out, err := uc.Execute(ctx, sources(
		memSource{name: "Inter.ttf", data: ttfBytes},
		memSource{name: "Inter.otf", data: otfBytes},
		memSource{name: "JetBrainsMono.woff2", data: []byte("wOF2\x00\x01\x00\x00rest")},
	))
	require.NoError(t, err)

	assert.Equal(t, 2, out.Imported)
	assert.ErrorIs(t, out.Results[1].Err, entity.ErrDuplicateFont)
	assert.Equal(t, 1, changes)

	snap := catalog.Snapshot()
	require.Len(t, snap.InstalledFonts, 2)
	assert.Equal(t, "Inter", snap.ActiveFont)
	assert.Equal(t, "Jet Brains Mono", snap.InstalledFonts[1].Family)
	assert.Equal(t, fontDir+"/Jet_Brains_Mono.woff2", snap.InstalledFonts[1].StoragePath)
	assert.NotEqual(t, snap.InstalledFonts[0].ID, snap.InstalledFonts[1].ID)

	exists, err := objects.Exists(ctx, fontDir+"/Inter.otf")
	require.NoError(t, err)
	assert.False(t, exists)
	data, err := objects.Get(ctx, fontDir+"/Inter.ttf")
	require.NoError(t, err)
	assert.Equal(t, ttfBytes, data)
}

package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/application/port/mocks"
	"github.com/bnema/fontkeeper/internal/application/usecase"
	"github.com/bnema/fontkeeper/internal/domain/entity"
)

func inter() entity.FontRecord {
	return entity.FontRecord{ID: "id-1", Name: "Inter", Family: "Inter", StoragePath: fontDir + "/Inter.ttf", FileExt: ".ttf", FileSize: 2048}
}

func TestManageFontsUseCase_ActivateByFamily(t *testing.T) {
	ctx := testContext()
	catalog := mocks.NewMockFontCatalog(t)
	notifier := mocks.NewMockNotification(t)

	catalog.EXPECT().FindByID("Inter").Return(entity.FontRecord{}, false)
	catalog.EXPECT().FindByFamily("Inter").Return(inter(), true)
	catalog.EXPECT().Activate(mock.Anything, "id-1").Return(true)
	notifier.EXPECT().Show(mock.Anything, "Font activated: Inter", port.NotificationSuccess, port.NotificationShortMs).Return()

	rec, err := usecase.NewManageFontsUseCase(catalog, notifier, nil).Activate(ctx, "Inter")
	require.NoError(t, err)
	assert.Equal(t, "id-1", rec.ID)
}

func TestManageFontsUseCase_ActivateUnknown(t *testing.T) {
	catalog := mocks.NewMockFontCatalog(t)
	catalog.EXPECT().FindByID("nope").Return(entity.FontRecord{}, false)
	catalog.EXPECT().FindByFamily("nope").Return(entity.FontRecord{}, false)

	_, err := usecase.NewManageFontsUseCase(catalog, nil, nil).Activate(testContext(), "nope")
	assert.ErrorIs(t, err, entity.ErrFontNotFound)
}

func TestManageFontsUseCase_RemoveByID(t *testing.T) {
	ctx := testContext()
	catalog := mocks.NewMockFontCatalog(t)
	notifier := mocks.NewMockNotification(t)

	catalog.EXPECT().FindByID("id-1").Return(inter(), true)
	catalog.EXPECT().Remove(mock.Anything, "id-1").Return(inter(), true)
	notifier.EXPECT().Show(mock.Anything, "Font deleted: Inter", port.NotificationSuccess, port.NotificationMediumMs).Return()

	rec, err := usecase.NewManageFontsUseCase(catalog, notifier, nil).Remove(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "Inter", rec.Family)
}

func TestManageFontsUseCase_RemoveRacesWithDeletion(t *testing.T) {
	catalog := mocks.NewMockFontCatalog(t)
	catalog.EXPECT().FindByID("id-1").Return(inter(), true)
	catalog.EXPECT().Remove(mock.Anything, "id-1").Return(entity.FontRecord{}, false)

	_, err := usecase.NewManageFontsUseCase(catalog, nil, nil).Remove(testContext(), "id-1")
	assert.ErrorIs(t, err, entity.ErrFontNotFound)
}

func TestManageFontsUseCase_SizeAndReset(t *testing.T) {
	ctx := testContext()
	catalog := mocks.NewMockFontCatalog(t)
	notifier := mocks.NewMockNotification(t)

	catalog.EXPECT().SetFontSizeDelta(mock.Anything, 40.0).Return(entity.FontSizeDeltaMax)
	catalog.EXPECT().SetFontSizeDelta(mock.Anything, 0.0).Return(0)
	notifier.EXPECT().Show(mock.Anything, "Font size reset", port.NotificationInfo, port.NotificationShortMs).Return()

	uc := usecase.NewManageFontsUseCase(catalog, notifier, nil)
	stored, err := uc.SetSize(ctx, 40)
	require.NoError(t, err)
	assert.Equal(t, entity.FontSizeDeltaMax, stored)
	require.NoError(t, uc.ResetSize(ctx))
}

func TestManageFontsUseCase_Deactivate(t *testing.T) {
	catalog := mocks.NewMockFontCatalog(t)
	catalog.EXPECT().Deactivate(mock.Anything).Return()

	require.NoError(t, usecase.NewManageFontsUseCase(catalog, nil, nil).Deactivate(testContext()))
}

func TestManageFontsUseCase_ReadOnlyRefusesMutations(t *testing.T) {
	ctx := testContext()
	catalog := mocks.NewMockFontCatalog(t)
	mode := mocks.NewMockHostMode(t)
	mode.EXPECT().ReadOnly().Return(true)

	uc := usecase.NewManageFontsUseCase(catalog, nil, mode)

	_, err := uc.Activate(ctx, "Inter")
	assert.ErrorIs(t, err, entity.ErrReadOnly)
	assert.ErrorIs(t, uc.Deactivate(ctx), entity.ErrReadOnly)
	_, err = uc.Remove(ctx, "Inter")
	assert.ErrorIs(t, err, entity.ErrReadOnly)
	_, err = uc.SetSize(ctx, 2)
	assert.ErrorIs(t, err, entity.ErrReadOnly)
	assert.ErrorIs(t, uc.ResetSize(ctx), entity.ErrReadOnly)
}

func TestManageFontsUseCase_Status(t *testing.T) {
	catalog := mocks.NewMockFontCatalog(t)
	mono := entity.FontRecord{ID: "id-2", Family: "Mono", StoragePath: fontDir + "/Mono.ttf", FileSize: 3 * 1024 * 1024}
	catalog.EXPECT().Snapshot().Return(entity.Settings{
		InstalledFonts: []entity.FontRecord{inter(), mono},
		ActiveFont:     "Mono",
		FontSizeDelta:  -2,
	})

	status := usecase.NewManageFontsUseCase(catalog, nil, nil).Status(testContext())

	assert.Equal(t, "Mono", status.ActiveFont)
	assert.Equal(t, -2, status.FontSizeDelta)
	require.Len(t, status.Fonts, 2)
	assert.False(t, status.Fonts[0].Active)
	assert.Equal(t, "2.0 KB", status.Fonts[0].HumanSize)
	assert.True(t, status.Fonts[1].Active)
	assert.Equal(t, "3.0 MB", status.Fonts[1].HumanSize)
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/domain/entity"
	"github.com/bnema/fontkeeper/internal/logging"
)

// UninstallUseCase removes every trace of the font manager: injected styles,
// stored font files and the persisted settings.
type UninstallUseCase struct {
	engine      port.StyleEngine
	storage     port.ObjectStorage
	store       port.SettingsStore
	fontDir     string
	settingsKey string
}

// NewUninstallUseCase creates a new uninstall use case. engine may be nil
// when nothing is running.
func NewUninstallUseCase(
	engine port.StyleEngine,
	storage port.ObjectStorage,
	store port.SettingsStore,
	fontDir string,
	settingsKey string,
) *UninstallUseCase {
	return &UninstallUseCase{
		engine:      engine,
		storage:     storage,
		store:       store,
		fontDir:     fontDir,
		settingsKey: settingsKey,
	}
}

// Execute runs every cleanup step and reports all failures together.
func (uc *UninstallUseCase) Execute(ctx context.Context) error {
	log := logging.FromContext(ctx)
	var errs []error

	if uc.engine != nil {
		if err := uc.engine.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop font engine: %w", err))
		}
	}

	if err := uc.storage.Remove(ctx, uc.fontDir); err != nil {
		if !errors.Is(err, entity.ErrStorageFailure) {
			err = fmt.Errorf("%w: %w", entity.ErrStorageFailure, err)
		}
		errs = append(errs, err)
	} else {
		log.Info().Str("dir", uc.fontDir).Msg("font directory removed")
	}

	if err := uc.store.Delete(ctx, uc.settingsKey); err != nil {
		if !errors.Is(err, entity.ErrPersistenceFailure) {
			err = fmt.Errorf("%w: %w", entity.ErrPersistenceFailure, err)
		}
		errs = append(errs, err)
	} else {
		log.Info().Str("key", uc.settingsKey).Msg("font settings removed")
	}

	return errors.Join(errs...)
}

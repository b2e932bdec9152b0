package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/domain/entity"
	"github.com/bnema/fontkeeper/internal/logging"
)

// FontListing is one installed font as shown to the user.
type FontListing struct {
	Record    entity.FontRecord
	Active    bool
	HumanSize string
}

// FontStatus summarizes the catalog.
type FontStatus struct {
	Fonts         []FontListing
	ActiveFont    string
	FontSizeDelta int
}

// ManageFontsUseCase handles activation, removal and size changes of
// installed fonts. Every mutation is refused while the host is read-only.
type ManageFontsUseCase struct {
	catalog  port.FontCatalog
	notifier port.Notification
	mode     port.HostMode
}

// NewManageFontsUseCase creates a new manage fonts use case.
// notifier and mode may be nil.
func NewManageFontsUseCase(catalog port.FontCatalog, notifier port.Notification, mode port.HostMode) *ManageFontsUseCase {
	return &ManageFontsUseCase{
		catalog:  catalog,
		notifier: notifier,
		mode:     mode,
	}
}

// Status returns the installed fonts in import order with the active font marked.
func (uc *ManageFontsUseCase) Status(_ context.Context) FontStatus {
	snap := uc.catalog.Snapshot()
	status := FontStatus{
		Fonts:         make([]FontListing, 0, len(snap.InstalledFonts)),
		FontSizeDelta: snap.FontSizeDelta,
	}
	if active, ok := snap.Active(); ok {
		status.ActiveFont = active.Family
	}
	for _, rec := range snap.InstalledFonts {
		status.Fonts = append(status.Fonts, FontListing{
			Record:    rec,
			Active:    rec.Family == status.ActiveFont,
			HumanSize: entity.HumanFileSize(rec.FileSize),
		})
	}
	return status
}

// Activate makes the font referenced by id or family the active font.
func (uc *ManageFontsUseCase) Activate(ctx context.Context, ref string) (entity.FontRecord, error) {
	if err := uc.checkWritable(); err != nil {
		return entity.FontRecord{}, err
	}
	rec, err := uc.resolve(ref)
	if err != nil {
		return entity.FontRecord{}, err
	}

	uc.catalog.Activate(ctx, rec.ID)
	logging.FromContext(logging.WithFamily(logging.WithFontID(ctx, rec.ID), rec.Family)).Info().Msg("font activated")
	uc.notify(ctx, "Font activated: "+rec.DisplayName(), port.NotificationSuccess, port.NotificationShortMs)
	return rec, nil
}

// Deactivate restores the host default font.
func (uc *ManageFontsUseCase) Deactivate(ctx context.Context) error {
	if err := uc.checkWritable(); err != nil {
		return err
	}
	uc.catalog.Deactivate(ctx)
	logging.FromContext(ctx).Info().Msg("font deactivated")
	uc.notify(ctx, "Default font restored", port.NotificationInfo, port.NotificationShortMs)
	return nil
}

// Remove deletes the font referenced by id or family and its stored file.
func (uc *ManageFontsUseCase) Remove(ctx context.Context, ref string) (entity.FontRecord, error) {
	if err := uc.checkWritable(); err != nil {
		return entity.FontRecord{}, err
	}
	rec, err := uc.resolve(ref)
	if err != nil {
		return entity.FontRecord{}, err
	}

	removed, ok := uc.catalog.Remove(ctx, rec.ID)
	if !ok {
		return entity.FontRecord{}, fmt.Errorf("%w: %s", entity.ErrFontNotFound, ref)
	}
	uc.notify(ctx, "Font deleted: "+removed.DisplayName(), port.NotificationSuccess, port.NotificationMediumMs)
	return removed, nil
}

// SetSize stores a font size delta and returns the clamped value.
func (uc *ManageFontsUseCase) SetSize(ctx context.Context, delta float64) (int, error) {
	if err := uc.checkWritable(); err != nil {
		return 0, err
	}
	stored := uc.catalog.SetFontSizeDelta(ctx, delta)
	logging.FromContext(ctx).Info().Int("delta", stored).Msg("font size changed")
	return stored, nil
}

// ResetSize returns to the host's own font sizes.
func (uc *ManageFontsUseCase) ResetSize(ctx context.Context) error {
	if _, err := uc.SetSize(ctx, 0); err != nil {
		return err
	}
	uc.notify(ctx, "Font size reset", port.NotificationInfo, port.NotificationShortMs)
	return nil
}

func (uc *ManageFontsUseCase) resolve(ref string) (entity.FontRecord, error) {
	if rec, ok := uc.catalog.FindByID(ref); ok {
		return rec, nil
	}
	if rec, ok := uc.catalog.FindByFamily(ref); ok {
		return rec, nil
	}
	return entity.FontRecord{}, fmt.Errorf("%w: %s", entity.ErrFontNotFound, ref)
}

func (uc *ManageFontsUseCase) checkWritable() error {
	if uc.mode != nil && uc.mode.ReadOnly() {
		return entity.ErrReadOnly
	}
	return nil
}

func (uc *ManageFontsUseCase) notify(ctx context.Context, msg string, t port.NotificationType, durationMs int) {
	if uc.notifier != nil {
		uc.notifier.Show(ctx, msg, t, durationMs)
	}
}

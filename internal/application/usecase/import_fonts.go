package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/domain/entity"
	"github.com/bnema/fontkeeper/internal/logging"
)

// defaultReadConcurrency bounds how many files are read at once.
const defaultReadConcurrency = 4

// ImportResult is the outcome of importing one file.
type ImportResult struct {
	// FileName is the source file name as given.
	FileName string
	// Record is the installed record; zero when Err is set.
	Record entity.FontRecord
	// Err is nil on success, otherwise wraps one of the entity sentinels.
	Err error
}

// ImportFontsOutput holds the per-file results of a batch import.
type ImportFontsOutput struct {
	Results  []ImportResult
	Imported int
	Failed   int
}

// ImportFontsUseCase validates font files, stores them and registers them in
// the catalog. Files are independent: one bad file never aborts the batch.
type ImportFontsUseCase struct {
	catalog  port.FontCatalog
	storage  port.ObjectStorage
	notifier port.Notification
	mode     port.HostMode
	fontDir  string

	readConcurrency int
	now             func() time.Time
	newID           func() string
}

// NewImportFontsUseCase creates a new import use case storing files under fontDir.
// notifier and mode may be nil.
func NewImportFontsUseCase(
	catalog port.FontCatalog,
	storage port.ObjectStorage,
	notifier port.Notification,
	mode port.HostMode,
	fontDir string,
) *ImportFontsUseCase {
	return &ImportFontsUseCase{
		catalog:         catalog,
		storage:         storage,
		notifier:        notifier,
		mode:            mode,
		fontDir:         fontDir,
		readConcurrency: defaultReadConcurrency,
		now:             time.Now,
		newID:           uuid.NewString,
	}
}

// SetClock replaces the clock used for InstalledAt.
func (uc *ImportFontsUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// SetIDGenerator replaces the record id generator.
func (uc *ImportFontsUseCase) SetIDGenerator(newID func() string) {
	uc.newID = newID
}

type readFile struct {
	name string
	data []byte
	err  error
}

// Execute imports sources. Files are read in parallel and registered in
// order inside one catalog batch, so listeners see a single change.
func (uc *ImportFontsUseCase) Execute(ctx context.Context, sources []port.FontSource) (*ImportFontsOutput, error) {
	log := logging.FromContext(ctx)

	if uc.mode != nil && uc.mode.ReadOnly() {
		return nil, entity.ErrReadOnly
	}
	out := &ImportFontsOutput{Results: make([]ImportResult, len(sources))}
	if len(sources) == 0 {
		return out, nil
	}

	files := uc.readAll(ctx, sources)

	err := uc.catalog.Batch(ctx, func() error {
		for i, f := range files {
			rec, err := uc.register(ctx, f)
			out.Results[i] = ImportResult{FileName: f.name, Record: rec, Err: err}
			if err != nil {
				out.Failed++
				log.Warn().Err(err).Str("file", f.name).Msg("font import skipped")
				continue
			}
			out.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register fonts: %w", err)
	}

	log.Info().Int("imported", out.Imported).Int("failed", out.Failed).Msg("font import finished")
	uc.notifyResults(ctx, out)
	return out, nil
}

func (uc *ImportFontsUseCase) readAll(ctx context.Context, sources []port.FontSource) []readFile {
	files := make([]readFile, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.readConcurrency)

	for i, src := range sources {
		files[i].name = src.Name()
		if entity.ExtFromFilename(files[i].name) == "" {
			continue
		}
		g.Go(func() error {
			files[i].data, files[i].err = readSource(gctx, src)
			return nil
		})
	}
	_ = g.Wait()
	return files
}

func readSource(ctx context.Context, src port.FontSource) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rc, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", src.Name(), err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src.Name(), err)
	}
	return data, nil
}

func (uc *ImportFontsUseCase) register(ctx context.Context, f readFile) (entity.FontRecord, error) {
	if entity.ExtFromFilename(f.name) == "" {
		return entity.FontRecord{}, fmt.Errorf("%w: %s has an unsupported extension", entity.ErrInvalidFontFile, f.name)
	}
	if f.err != nil {
		return entity.FontRecord{}, f.err
	}
	ext := entity.DetectExt(f.data)
	if ext == "" {
		return entity.FontRecord{}, fmt.Errorf("%w: %s is not a TrueType, OpenType or WOFF font", entity.ErrInvalidFontFile, f.name)
	}

	name := entity.DeriveDisplayName(f.name)
	family := entity.FamilyFromDisplayName(name)
	if _, exists := uc.catalog.FindByFamily(family); exists {
		return entity.FontRecord{}, fmt.Errorf("%w: %s", entity.ErrDuplicateFont, family)
	}
	storagePath := path.Join(uc.fontDir, entity.SanitizeFamilyName(family)+ext)
	if uc.catalog.HasStoragePath(storagePath) {
		return entity.FontRecord{}, fmt.Errorf("%w: %s is already used", entity.ErrDuplicateFont, storagePath)
	}

	if err := uc.storage.Put(ctx, storagePath, f.data); err != nil {
		if !errors.Is(err, entity.ErrStorageFailure) {
			err = fmt.Errorf("%w: %w", entity.ErrStorageFailure, err)
		}
		return entity.FontRecord{}, err
	}

	rec := entity.FontRecord{
		ID:          uc.newID(),
		Name:        name,
		Family:      family,
		StoragePath: storagePath,
		FileExt:     ext,
		FileSize:    int64(len(f.data)),
		InstalledAt: uc.now().UTC(),
	}
	if err := uc.catalog.Install(ctx, rec); err != nil {
		if rmErr := uc.storage.Remove(ctx, storagePath); rmErr != nil {
			logging.FromContext(ctx).Warn().Err(rmErr).Str("path", storagePath).Msg("failed to remove orphaned font file")
		}
		return entity.FontRecord{}, err
	}
	return rec, nil
}

func (uc *ImportFontsUseCase) notifyResults(ctx context.Context, out *ImportFontsOutput) {
	if uc.notifier == nil {
		return
	}
	for _, r := range out.Results {
		switch {
		case r.Err == nil:
		case errors.Is(r.Err, entity.ErrDuplicateFont):
			uc.notifier.Show(ctx, "Font already installed: "+r.FileName, port.NotificationWarning, port.NotificationMediumMs)
		case errors.Is(r.Err, entity.ErrInvalidFontFile):
			uc.notifier.Show(ctx, "Invalid font file: "+r.FileName, port.NotificationError, port.NotificationLongMs)
		default:
			uc.notifier.Show(ctx, "Failed to import "+r.FileName, port.NotificationError, port.NotificationLongMs)
		}
	}
	if out.Imported > 0 {
		msg := fmt.Sprintf("Imported %d font(s)", out.Imported)
		uc.notifier.Show(ctx, msg, port.NotificationSuccess, port.NotificationMediumMs)
	}
}

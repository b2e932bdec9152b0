// Package cli wires the font engine and its use cases for the command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/bnema/fontkeeper/internal/application/usecase"
	"github.com/bnema/fontkeeper/internal/cli/styles"
	"github.com/bnema/fontkeeper/internal/domain/build"
	"github.com/bnema/fontkeeper/internal/fontengine"
	"github.com/bnema/fontkeeper/internal/infrastructure/config"
	"github.com/bnema/fontkeeper/internal/infrastructure/document"
	"github.com/bnema/fontkeeper/internal/infrastructure/fonts"
	"github.com/bnema/fontkeeper/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/fontkeeper/internal/infrastructure/storage"
	"github.com/bnema/fontkeeper/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	Engine   *fontengine.Engine
	Storage  *storage.Storage
	Store    *sqlite.SettingsStore
	Document *document.File
	Mode     document.Mode
	Notifier *Notifier

	// Use cases
	ImportUC    *usecase.ImportFontsUseCase
	ManageUC    *usecase.ManageFontsUseCase
	UninstallUC *usecase.UninstallUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
	db         *sqlite.LazyDB
}

// NewApp loads the configuration, opens the settings store and starts the
// font engine, which writes the current stylesheet.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()
	theme := styles.NewTheme()

	logger, logCleanup := newLogger(cfg)
	ctx := logging.WithComponent(logging.WithContext(context.Background(), logger), "cli")

	db := sqlite.NewLazyDB(cfg.Database.Path)
	store := sqlite.NewSettingsStore(db)

	objects, err := storage.NewOnDisk(cfg.Storage.Root)
	if err != nil {
		logCleanup()
		return nil, err
	}
	doc := document.NewFile(afero.NewOsFs(), cfg.Output.StylesheetPath)
	mode := document.Mode(cfg.ReadOnly)

	opts := fontengine.Options{
		Profile:     cfg.HostProfile(),
		Store:       store,
		SettingsKey: cfg.Storage.SettingsKey,
		Storage:     objects,
		Document:    doc,
		Loader:      NewAssetLoader(cfg.Exposure, objects),
		Mode:        mode,
	}
	if cfg.Fallback.DetectSystemFonts {
		opts.Detector = fonts.NewDetector()
		opts.DetectChain = fonts.SansSerifFallbackChain()
	}

	engine, err := fontengine.New(opts)
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("create font engine: %w", err)
	}
	if err := engine.Start(ctx); err != nil {
		logCleanup()
		_ = db.Close()
		return nil, fmt.Errorf("start font engine: %w", err)
	}

	notifier := NewNotifier(os.Stdout, theme)
	catalog := engine.Catalog()

	return &App{
		Config:      cfg,
		Manager:     mgr,
		Theme:       theme,
		Engine:      engine,
		Storage:     objects,
		Store:       store,
		Document:    doc,
		Mode:        mode,
		Notifier:    notifier,
		ImportUC:    usecase.NewImportFontsUseCase(catalog, objects, notifier, mode, cfg.Storage.FontDir),
		ManageUC:    usecase.NewManageFontsUseCase(catalog, notifier, mode),
		UninstallUC: usecase.NewUninstallUseCase(engine, objects, store, cfg.Storage.FontDir, cfg.Storage.SettingsKey),
		ctx:         ctx,
		logCleanup:  logCleanup,
		db:          db,
	}, nil
}

// NewAssetLoader builds the loader selected by the exposure mode.
func NewAssetLoader(cfg config.ExposureConfig, objects *storage.Storage) fontengine.AssetLoader {
	if cfg.Mode == config.ExposureFetch {
		return fontengine.NewFetchLoader(objects, document.DataURLs{}, cfg.CacheSize)
	}
	return fontengine.NewDirectURLLoader(cfg.PublicPrefix, cfg.PublicURLBase)
}

// newLogger keeps stderr at warn level unless a file log is enabled or the
// level is forced through FONTKEEPER_LOG_LEVEL.
func newLogger(cfg *config.Config) (zerolog.Logger, func()) {
	level := logging.ParseLevel(cfg.Logging.Level)
	if !cfg.Logging.EnableFileLog && os.Getenv("FONTKEEPER_LOG_LEVEL") == "" {
		level = max(level, zerolog.WarnLevel)
	}

	logger, cleanup, err := logging.NewWithFile(
		logging.Config{Level: level, Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:    cfg.Logging.EnableFileLog,
			LogDir:     cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
		},
	)
	if err != nil {
		logger.Warn().Err(err).Str("dir", cfg.Logging.LogDir).Msg("file logging disabled")
	}
	return logger, cleanup
}

// Close releases the logger and the database. The engine is left running so
// the stylesheet written for this invocation stays in place.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// FontStorageDir returns the on-disk directory holding imported font files.
func (a *App) FontStorageDir() string {
	return filepath.Join(a.Config.Storage.Root, filepath.FromSlash(a.Config.Storage.FontDir))
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/fontkeeper/internal/logging"
)

// LazyDB opens the settings database on first use, so commands that never
// touch settings skip the WASM compile and migration cost.
type LazyDB struct {
	dbPath string

	mu  sync.Mutex
	db  *sql.DB
	err error
}

// NewLazyDB creates a provider for the database at dbPath without opening it.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the connection, opening it on the first call. An open failure
// is sticky.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil && l.err == nil {
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.dbPath).Msg("opening settings database")
		l.db, l.err = NewConnection(ctx, l.dbPath)
		if l.err != nil {
			log.Error().Err(l.err).Msg("settings database unavailable")
		}
	}
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// Close closes the connection if it was opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// IsInitialized reports whether the connection has been opened.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}

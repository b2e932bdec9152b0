package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/fontkeeper/internal/application/port"
	"github.com/bnema/fontkeeper/internal/domain/entity"
	"github.com/bnema/fontkeeper/internal/logging"
)

// SettingsStore implements port.SettingsStore on the plugin_settings table.
type SettingsStore struct {
	lazy *LazyDB
}

var _ port.SettingsStore = (*SettingsStore)(nil)

// NewSettingsStore creates a store over a lazily opened database.
func NewSettingsStore(lazy *LazyDB) *SettingsStore {
	return &SettingsStore{lazy: lazy}
}

func (s *SettingsStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	db, err := s.lazy.DB(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", entity.ErrPersistenceFailure, err)
	}

	var data []byte
	err = db.QueryRowContext(ctx, `SELECT value FROM plugin_settings WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: load %q: %w", entity.ErrPersistenceFailure, key, err)
	}
	return data, true, nil
}

func (s *SettingsStore) Save(ctx context.Context, key string, data []byte) error {
	db, err := s.lazy.DB(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", entity.ErrPersistenceFailure, err)
	}

	logging.FromContext(ctx).Debug().Str("key", key).Int("bytes", len(data)).Msg("saving settings")

	_, err = db.ExecContext(ctx, `
		INSERT INTO plugin_settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, data)
	if err != nil {
		return fmt.Errorf("%w: save %q: %w", entity.ErrPersistenceFailure, key, err)
	}
	return nil
}

func (s *SettingsStore) Delete(ctx context.Context, key string) error {
	db, err := s.lazy.DB(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", entity.ErrPersistenceFailure, err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM plugin_settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("%w: delete %q: %w", entity.ErrPersistenceFailure, key, err)
	}
	return nil
}

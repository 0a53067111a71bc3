package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bnema/linkpeek/internal/domain/repository"
	"github.com/bnema/linkpeek/internal/logging"
)

type pluginDataRepo struct {
	db *sql.DB
}

// NewPluginDataRepository creates a new SQLite-backed plugin data repository.
func NewPluginDataRepository(db *sql.DB) repository.PluginDataRepository {
	return &pluginDataRepo{db: db}
}

func (r *pluginDataRepo) Load(ctx context.Context, pluginID string) ([]byte, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("plugin_id", pluginID).Msg("loading plugin data")

	var data []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM plugin_data WHERE plugin_id = ?`, pluginID,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (r *pluginDataRepo) Save(ctx context.Context, pluginID string, data []byte) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("plugin_id", pluginID).Int("bytes", len(data)).Msg("saving plugin data")

	if data == nil {
		data = []byte{}
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO plugin_data (plugin_id, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(plugin_id) DO UPDATE SET
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP`,
		pluginID, data,
	)
	return err
}

// Package port defines the boundaries between the preview logic and its
// host, rendering surface and storage.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the shared SQLite handle, opening it on demand.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
}

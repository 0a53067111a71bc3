package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/domain/entity"
	"github.com/bnema/linkpeek/internal/domain/repository"
	"github.com/bnema/linkpeek/internal/logging"
)

var errDatabaseClosed = errors.New("database closed")

// LazyDB opens the database on the first repository call. Commands that
// never touch storage pay neither the WASM compile nor the migrations.
type LazyDB struct {
	path string

	once sync.Once
	mu   sync.RWMutex
	db   *sql.DB
	err  error
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		db, err := Open(ctx, l.path)
		if err != nil {
			logging.FromContext(ctx).Error().Err(err).Str("path", l.path).Msg("database unavailable")
		}
		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database unavailable: %w", l.err)
	}
	if l.db == nil {
		return nil, errDatabaseClosed
	}
	return l.db, nil
}

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

// Opened reports whether a connection is currently held.
func (l *LazyDB) Opened() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database file path.
func (l *LazyDB) Path() string {
	return l.path
}

// PluginData returns a plugin data repository that opens the database on
// first call.
func (l *LazyDB) PluginData() repository.PluginDataRepository {
	return &lazyPluginDataRepo{provider: l}
}

// PreviewJournal returns a journal repository that opens the database on
// first call.
func (l *LazyDB) PreviewJournal() repository.PreviewJournalRepository {
	return &lazyJournalRepo{provider: l}
}

type lazyPluginDataRepo struct {
	provider port.DatabaseProvider
}

func (r *lazyPluginDataRepo) Load(ctx context.Context, pluginID string) ([]byte, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	return NewPluginDataRepository(db).Load(ctx, pluginID)
}

func (r *lazyPluginDataRepo) Save(ctx context.Context, pluginID string, data []byte) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	return NewPluginDataRepository(db).Save(ctx, pluginID, data)
}

type lazyJournalRepo struct {
	provider port.DatabaseProvider
}

func (r *lazyJournalRepo) Save(ctx context.Context, rec *entity.PreviewRecord) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	return NewPreviewJournalRepository(db).Save(ctx, rec)
}

func (r *lazyJournalRepo) FindByID(ctx context.Context, id string) (*entity.PreviewRecord, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	return NewPreviewJournalRepository(db).FindByID(ctx, id)
}

func (r *lazyJournalRepo) Recent(ctx context.Context, limit int) ([]*entity.PreviewRecord, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	return NewPreviewJournalRepository(db).Recent(ctx, limit)
}

func (r *lazyJournalRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return 0, err
	}
	return NewPreviewJournalRepository(db).DeleteOlderThan(ctx, cutoff)
}

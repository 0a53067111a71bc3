package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/linkpeek/internal/domain/entity"
	"github.com/bnema/linkpeek/internal/domain/repository"
	"github.com/bnema/linkpeek/internal/logging"
)

type previewJournalRepo struct {
	db *sql.DB
}

// NewPreviewJournalRepository creates a new SQLite-backed preview journal.
// Timestamps are stored as Unix milliseconds.
func NewPreviewJournalRepository(db *sql.DB) repository.PreviewJournalRepository {
	return &previewJournalRepo{db: db}
}

const journalColumns = `id, url, shown_at, closed_at, outcome, reason`

func (r *previewJournalRepo) Save(ctx context.Context, rec *entity.PreviewRecord) error {
	if rec == nil || rec.ID == "" {
		return fmt.Errorf("preview record requires an id")
	}
	log := logging.FromContext(ctx)
	log.Debug().
		Str("preview_id", rec.ID).
		Str("outcome", string(rec.Outcome)).
		Msg("saving preview record")

	var closed sql.NullInt64
	if rec.ClosedAt != nil {
		closed = sql.NullInt64{Int64: rec.ClosedAt.UnixMilli(), Valid: true}
	}
	outcome := rec.Outcome
	if outcome == "" {
		outcome = entity.OutcomePending
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preview_journal (`+journalColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			closed_at = excluded.closed_at,
			outcome = excluded.outcome,
			reason = excluded.reason`,
		rec.ID, rec.URL, rec.ShownAt.UnixMilli(), closed, string(outcome), string(rec.Reason),
	)
	return err
}

func (r *previewJournalRepo) FindByID(ctx context.Context, id string) (*entity.PreviewRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+journalColumns+` FROM preview_journal WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (r *previewJournalRepo) Recent(ctx context.Context, limit int) ([]*entity.PreviewRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+journalColumns+` FROM preview_journal ORDER BY shown_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*entity.PreviewRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *previewJournalRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM preview_journal WHERE shown_at < ?`, cutoff.UnixMilli())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(s rowScanner) (*entity.PreviewRecord, error) {
	var (
		rec     entity.PreviewRecord
		shown   int64
		closed  sql.NullInt64
		outcome string
		reason  string
	)
	if err := s.Scan(&rec.ID, &rec.URL, &shown, &closed, &outcome, &reason); err != nil {
		return nil, err
	}
	rec.ShownAt = time.UnixMilli(shown)
	if closed.Valid {
		t := time.UnixMilli(closed.Int64)
		rec.ClosedAt = &t
	}
	rec.Outcome = entity.PreviewOutcome(outcome)
	rec.Reason = entity.DismissReason(reason)
	return &rec, nil
}

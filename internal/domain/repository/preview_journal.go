package repository

import (
	"context"
	"time"

	"github.com/bnema/linkpeek/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks . PluginDataRepository,PreviewJournalRepository

// PreviewJournalRepository records every preview that was shown.
type PreviewJournalRepository interface {
	// Save inserts or updates a record by ID.
	Save(ctx context.Context, rec *entity.PreviewRecord) error

	// FindByID retrieves a record.
	// Returns nil if not found.
	FindByID(ctx context.Context, id string) (*entity.PreviewRecord, error)

	// Recent returns the newest records first.
	Recent(ctx context.Context, limit int) ([]*entity.PreviewRecord, error)

	// DeleteOlderThan removes records shown before cutoff and returns how
	// many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

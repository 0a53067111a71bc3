package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/linkpeek/internal/domain/entity"
	"github.com/bnema/linkpeek/internal/infrastructure/persistence/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(testCtx(), filepath.Join(t.TempDir(), "linkpeek.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrations_Version(t *testing.T) {
	db := openTestDB(t)

	version, err := sqlite.SchemaVersion(testCtx(), db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	again, err := sqlite.Migrate(testCtx(), db)
	require.NoError(t, err)
	assert.Equal(t, version, again)
}

func TestPluginDataRepository_LoadMissing(t *testing.T) {
	repo := sqlite.NewPluginDataRepository(openTestDB(t))

	data, err := repo.Load(testCtx(), "linkpeek")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestPluginDataRepository_SaveReplaces(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPluginDataRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, "linkpeek", []byte(`{"hoverDelay":200}`)))
	require.NoError(t, repo.Save(ctx, "linkpeek", []byte(`{"hoverDelay":300}`)))
	require.NoError(t, repo.Save(ctx, "other", []byte(`{}`)))

	data, err := repo.Load(ctx, "linkpeek")
	require.NoError(t, err)
	assert.JSONEq(t, `{"hoverDelay":300}`, string(data))
}

func TestPreviewJournalRepository_Lifecycle(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPreviewJournalRepository(openTestDB(t))

	shown := time.UnixMilli(1_700_000_000_000)
	rec := &entity.PreviewRecord{
		ID:      "p1",
		URL:     "https://example.com",
		ShownAt: shown,
		Outcome: entity.OutcomePending,
	}
	require.NoError(t, repo.Save(ctx, rec))

	got, err := repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "https://example.com", got.URL)
	assert.True(t, got.ShownAt.Equal(shown))
	assert.Nil(t, got.ClosedAt)
	assert.Zero(t, got.Duration())

	closed := shown.Add(2500 * time.Millisecond)
	rec.ClosedAt = &closed
	rec.Outcome = entity.OutcomeLoaded
	rec.Reason = entity.DismissGraceExpired
	require.NoError(t, repo.Save(ctx, rec))

	got, err = repo.FindByID(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got.ClosedAt)
	assert.Equal(t, entity.OutcomeLoaded, got.Outcome)
	assert.Equal(t, entity.DismissGraceExpired, got.Reason)
	assert.Equal(t, 2500*time.Millisecond, got.Duration())
}

func TestPreviewJournalRepository_FindMissing(t *testing.T) {
	repo := sqlite.NewPreviewJournalRepository(openTestDB(t))

	got, err := repo.FindByID(testCtx(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPreviewJournalRepository_SaveRequiresID(t *testing.T) {
	repo := sqlite.NewPreviewJournalRepository(openTestDB(t))
	assert.Error(t, repo.Save(testCtx(), &entity.PreviewRecord{URL: "https://x.dev"}))
}

func TestPreviewJournalRepository_RecentAndPurge(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewPreviewJournalRepository(openTestDB(t))

	base := time.UnixMilli(1_700_000_000_000)
	for i, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, repo.Save(ctx, &entity.PreviewRecord{
			ID:      id,
			URL:     "https://example.com/" + id,
			ShownAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	recent, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "d", recent[0].ID)
	assert.Equal(t, "b", recent[2].ID)
	assert.Equal(t, entity.OutcomePending, recent[0].Outcome)

	none, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	removed, err := repo.DeleteOlderThan(ctx, base.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	recent, err = repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

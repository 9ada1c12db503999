package persistence

import (
	"context"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/dbtest"
)

func newTestPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()

	dsn := os.Getenv("TEST_PG_DSN")
	if dsn == "" {
		t.Skip("TEST_PG_DSN is not set")
	}

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)

	require.NoError(t, dbtest.MigrateFromFile(db, "../../../migrations/0001_watchlists.sql"))

	t.Cleanup(func() {
		_, _ = db.Exec(`TRUNCATE watchlist_items`)
		_ = db.Close()
	})

	return NewPostgresStore(db)
}

func TestPostgresStore(t *testing.T) {
	rq := require.New(t)

	ctx := context.Background()
	store := newTestPostgresStore(t)

	rq.NoError(store.Append(ctx, "100", entity.WatchlistEntry{AppID: 10, Name: "Portal 2"}))
	rq.NoError(store.Append(ctx, "100", entity.WatchlistEntry{AppID: 20, Name: "Dota 2"}))
	// Duplicate append is swallowed by the unique constraint.
	rq.NoError(store.Append(ctx, "100", entity.WatchlistEntry{AppID: 10, Name: "Portal 2"}))
	rq.NoError(store.Append(ctx, "200", entity.WatchlistEntry{AppID: 30, Name: "Factorio"}))

	entries, err := store.List(ctx, "100")
	rq.NoError(err)
	rq.Equal([]entity.WatchlistEntry{
		{AppID: 10, Name: "Portal 2"},
		{AppID: 20, Name: "Dota 2"},
	}, entries)

	subs, err := store.Subscribers(ctx)
	rq.NoError(err)
	rq.Equal([]string{"100", "200"}, subs)

	removed, ok, err := store.Remove(ctx, "100", 10)
	rq.NoError(err)
	rq.True(ok)
	rq.Equal("Portal 2", removed.Name)

	_, ok, err = store.Remove(ctx, "100", 10)
	rq.NoError(err)
	rq.False(ok)
}

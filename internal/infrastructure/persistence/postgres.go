package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/entity"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/errcodes"
)

// PostgresStore держит вотчлисты в Postgres; порядок записей хранится в
// колонке position.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type watchlistItemSchema struct {
	AppID int64  `db:"app_id"`
	Name  string `db:"name"`
}

func (s watchlistItemSchema) toDomain() entity.WatchlistEntry {
	return entity.WatchlistEntry{
		AppID: s.AppID,
		Name:  s.Name,
	}
}

// withTx выполняет функцию в транзакции.
func (r *PostgresStore) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.WatchlistStoreDown, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.WatchlistStoreDown,
				"transaction failed",
			)
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.WatchlistStoreDown, "failed to commit")
	}

	return nil
}

func (r *PostgresStore) List(ctx context.Context, subscriberID string) ([]entity.WatchlistEntry, error) {
	query := `
		SELECT app_id, name
		FROM watchlist_items
		WHERE subscriber_id = $1
		ORDER BY position`

	var schemas []watchlistItemSchema
	if err := r.db.SelectContext(ctx, &schemas, query, subscriberID); err != nil {
		return nil, domain.WrapError(err, errcodes.WatchlistStoreDown, "failed to list watchlist")
	}

	entries := make([]entity.WatchlistEntry, 0, len(schemas))
	for _, s := range schemas {
		entries = append(entries, s.toDomain())
	}

	return entries, nil
}

func (r *PostgresStore) Subscribers(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT subscriber_id
		FROM watchlist_items
		ORDER BY subscriber_id`

	var subs []string
	if err := r.db.SelectContext(ctx, &subs, query); err != nil {
		return nil, domain.WrapError(err, errcodes.WatchlistStoreDown, "failed to list subscribers")
	}

	return subs, nil
}

func (r *PostgresStore) Append(ctx context.Context, subscriberID string, entry entity.WatchlistEntry) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO watchlist_items (subscriber_id, app_id, name, position)
			SELECT $1, $2, $3, COALESCE(MAX(position) + 1, 0)
			FROM watchlist_items
			WHERE subscriber_id = $1
			ON CONFLICT (subscriber_id, app_id) DO NOTHING`

		if _, err := tx.ExecContext(ctx, query, subscriberID, entry.AppID, entry.Name); err != nil {
			return domain.WrapError(err, errcodes.WatchlistStoreDown, "failed to insert watchlist item")
		}

		return nil
	})
}

func (r *PostgresStore) Remove(ctx context.Context, subscriberID string, appID int64) (entity.WatchlistEntry, bool, error) {
	var removed entity.WatchlistEntry

	found := false

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			DELETE FROM watchlist_items
			WHERE subscriber_id = $1 AND app_id = $2
			RETURNING app_id, name`

		var schema watchlistItemSchema

		err := tx.GetContext(ctx, &schema, query, subscriberID, appID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}

			return domain.WrapError(err, errcodes.WatchlistStoreDown, "failed to delete watchlist item")
		}

		removed = schema.toDomain()
		found = true

		return nil
	})
	if err != nil {
		return entity.WatchlistEntry{}, false, err
	}

	return removed, found, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the folder and link tables for the current
// environment prefix if they do not exist.
//
// (owner_id, position) is intentionally NOT a unique index: the
// ordering is guaranteed by the service layer, and a unique index
// would reject the set-based range shifts, which pass through
// transient duplicates while a single UPDATE rewrites a position
// range row by row.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id          uuid PRIMARY KEY,
				owner_id    text NOT NULL,
				name        varchar(50) NOT NULL,
				position    integer NOT NULL,
				created_at  timestamptz NOT NULL,
				updated_at  timestamptz NOT NULL,
				deleted_at  timestamptz
			)
		`, tables.Folders),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_owner_position_idx
			ON %s (owner_id, position)
			WHERE deleted_at IS NULL
		`, tables.Folders, tables.Folders),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id          uuid PRIMARY KEY,
				owner_id    text NOT NULL,
				folder_id   uuid REFERENCES %s (id),
				url         text NOT NULL,
				title       text NOT NULL DEFAULT '',
				is_read     boolean NOT NULL DEFAULT false,
				created_at  timestamptz NOT NULL,
				updated_at  timestamptz NOT NULL,
				deleted_at  timestamptz
			)
		`, tables.Links, tables.Folders),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_owner_folder_idx
			ON %s (owner_id, folder_id)
			WHERE deleted_at IS NULL
		`, tables.Links, tables.Links),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"linkloud/internal/domain/models"
	"linkloud/internal/domain/repositories"
)

// PostgresLinkRepository implements the LinkRepository interface. Only
// the read-side aggregates and the folder-detach hook live here; link
// CRUD belongs to the link service.
type PostgresLinkRepository struct {
	tables *TableNames
}

// NewLinkRepository creates a new link repository
func NewLinkRepository(config *RepositoryConfig) repositories.LinkRepository {
	return &PostgresLinkRepository{
		tables: config.Tables,
	}
}

// CountsByOwner returns link totals per folder for the owner's live links
func (r *PostgresLinkRepository) CountsByOwner(ctx context.Context, q repositories.DBTX, ownerID string) (map[string]models.LinkCounts, error) {
	query := fmt.Sprintf(`
		SELECT folder_id, COUNT(*), COUNT(*) FILTER (WHERE NOT is_read)
		FROM %s
		WHERE owner_id = $1 AND folder_id IS NOT NULL AND deleted_at IS NULL
		GROUP BY folder_id
	`, r.tables.Links)

	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("count links by folder: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]models.LinkCounts)
	for rows.Next() {
		var folderID string
		var c models.LinkCounts
		if err := rows.Scan(&folderID, &c.Links, &c.Unread); err != nil {
			return nil, fmt.Errorf("scan link counts: %w", err)
		}
		counts[folderID] = c
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate link counts: %w", err)
	}

	return counts, nil
}

// CountsByFolder returns link totals for a single folder
func (r *PostgresLinkRepository) CountsByFolder(ctx context.Context, q repositories.DBTX, ownerID, folderID string) (models.LinkCounts, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*), COUNT(*) FILTER (WHERE NOT is_read)
		FROM %s
		WHERE owner_id = $1 AND folder_id = $2 AND deleted_at IS NULL
	`, r.tables.Links)

	var c models.LinkCounts
	if err := q.QueryRow(ctx, query, ownerID, folderID).Scan(&c.Links, &c.Unread); err != nil {
		return models.LinkCounts{}, fmt.Errorf("count folder links: %w", err)
	}

	return c, nil
}

// DetachFolder clears the folder reference on the owner's live links.
// Links survive folder deletion as uncategorized.
func (r *PostgresLinkRepository) DetachFolder(ctx context.Context, q repositories.DBTX, ownerID, folderID string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET folder_id = NULL, updated_at = $1
		WHERE owner_id = $2 AND folder_id = $3 AND deleted_at IS NULL
	`, r.tables.Links)

	_, err := q.Exec(ctx, query, time.Now(), ownerID, folderID)
	if err != nil {
		return fmt.Errorf("detach folder links: %w", err)
	}

	return nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"linkloud/internal/domain"
	"linkloud/internal/domain/models"
	"linkloud/internal/domain/repositories"
)

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	tables *TableNames
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderRepository {
	return &PostgresFolderRepository{
		tables: config.Tables,
	}
}

// AcquireOwnerLock serializes folder mutations per owner through a
// transaction-scoped advisory lock. Two concurrent move/create/delete
// calls for the same owner would otherwise both read positions before
// either commits and interleave their range updates; the lock makes
// the second transaction wait until the first releases it at
// commit/rollback.
func (r *PostgresFolderRepository) AcquireOwnerLock(ctx context.Context, q repositories.DBTX, ownerID string) error {
	_, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, ownerID)
	if err != nil {
		return fmt.Errorf("acquire owner lock: %w", err)
	}
	return nil
}

// CountLive returns the number of live folders the owner has
func (r *PostgresFolderRepository) CountLive(ctx context.Context, q repositories.DBTX, ownerID string) (int, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s
		WHERE owner_id = $1 AND deleted_at IS NULL
	`, r.tables.Folders)

	var count int
	if err := q.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count folders: %w", err)
	}

	return count, nil
}

// ListOrdered returns the owner's live folders sorted ascending by position
func (r *PostgresFolderRepository) ListOrdered(ctx context.Context, q repositories.DBTX, ownerID string) ([]models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, name, position, created_at, updated_at
		FROM %s
		WHERE owner_id = $1 AND deleted_at IS NULL
		ORDER BY position ASC
	`, r.tables.Folders)

	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var folder models.Folder
		err := rows.Scan(
			&folder.ID,
			&folder.OwnerID,
			&folder.Name,
			&folder.Position,
			&folder.CreatedAt,
			&folder.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	return folders, nil
}

// FindByID retrieves a live folder by ID and owner
func (r *PostgresFolderRepository) FindByID(ctx context.Context, q repositories.DBTX, id, ownerID string) (*models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, name, position, created_at, updated_at
		FROM %s
		WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL
	`, r.tables.Folders)

	var folder models.Folder
	err := q.QueryRow(ctx, query, id, ownerID).Scan(
		&folder.ID,
		&folder.OwnerID,
		&folder.Name,
		&folder.Position,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}

	return &folder, nil
}

// Insert persists a new folder at the position set on the model
func (r *PostgresFolderRepository) Insert(ctx context.Context, q repositories.DBTX, folder *models.Folder) error {
	if folder.ID == "" {
		folder.ID = uuid.NewString()
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, owner_id, name, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.tables.Folders)

	_, err := q.Exec(ctx, query,
		folder.ID,
		folder.OwnerID,
		folder.Name,
		folder.Position,
		folder.CreatedAt,
		folder.UpdatedAt,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("folder %s already exists: %w", folder.ID, domain.ErrConflict)
		}
		return fmt.Errorf("create folder: %w", err)
	}

	return nil
}

// Rename updates the folder's name
func (r *PostgresFolderRepository) Rename(ctx context.Context, q repositories.DBTX, folder *models.Folder, name string) error {
	now := time.Now()

	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, updated_at = $2
		WHERE id = $3 AND owner_id = $4 AND deleted_at IS NULL
	`, r.tables.Folders)

	result, err := q.Exec(ctx, query, name, now, folder.ID, folder.OwnerID)
	if err != nil {
		return fmt.Errorf("rename folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrNotFound)
	}

	folder.Name = name
	folder.UpdatedAt = now
	return nil
}

// SetPosition assigns the folder's final position after a move. Runs
// after ShiftRange in the same transaction; doing it earlier would let
// the range update count the moved folder twice.
func (r *PostgresFolderRepository) SetPosition(ctx context.Context, q repositories.DBTX, folder *models.Folder, position int) error {
	now := time.Now()

	query := fmt.Sprintf(`
		UPDATE %s
		SET position = $1, updated_at = $2
		WHERE id = $3 AND owner_id = $4 AND deleted_at IS NULL
	`, r.tables.Folders)

	result, err := q.Exec(ctx, query, position, now, folder.ID, folder.OwnerID)
	if err != nil {
		return fmt.Errorf("set folder position: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrNotFound)
	}

	folder.Position = position
	folder.UpdatedAt = now
	return nil
}

// ShiftRange applies delta to every live sibling with position in
// [lo, hi), excluding the moved folder. One set-based statement, not a
// per-row loop: a read-then-write loop inside the same transaction
// would race against its own earlier writes and cost a round trip per
// sibling.
func (r *PostgresFolderRepository) ShiftRange(ctx context.Context, q repositories.DBTX, ownerID, excludeID string, lo, hi, delta int) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET position = position + $1, updated_at = $2
		WHERE owner_id = $3
		  AND id != $4
		  AND deleted_at IS NULL
		  AND position >= $5
		  AND position < $6
	`, r.tables.Folders)

	_, err := q.Exec(ctx, query, delta, time.Now(), ownerID, excludeID, lo, hi)
	if err != nil {
		return fmt.Errorf("shift folder positions: %w", err)
	}

	return nil
}

// SoftDelete tombstones the folder
func (r *PostgresFolderRepository) SoftDelete(ctx context.Context, q repositories.DBTX, folder *models.Folder) error {
	now := time.Now()

	query := fmt.Sprintf(`
		UPDATE %s
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND owner_id = $3 AND deleted_at IS NULL
	`, r.tables.Folders)

	result, err := q.Exec(ctx, query, now, folder.ID, folder.OwnerID)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrNotFound)
	}

	folder.DeletedAt = &now
	folder.UpdatedAt = now
	return nil
}

// ShiftTail closes the gap a delete leaves: every live sibling past
// the deleted position moves down one slot.
func (r *PostgresFolderRepository) ShiftTail(ctx context.Context, q repositories.DBTX, ownerID string, deletedPosition int) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET position = position - 1, updated_at = $1
		WHERE owner_id = $2
		  AND deleted_at IS NULL
		  AND position > $3
	`, r.tables.Folders)

	_, err := q.Exec(ctx, query, time.Now(), ownerID, deletedPosition)
	if err != nil {
		return fmt.Errorf("compact folder positions: %w", err)
	}

	return nil
}

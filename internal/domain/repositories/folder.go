package repositories

import (
	"context"

	"linkloud/internal/domain/models"
)

// FolderRepository defines data access operations for folders. All
// queries are scoped to live rows (deleted_at IS NULL) of a single
// owner, and every method runs against the query handle it is given.
type FolderRepository interface {
	// AcquireOwnerLock takes a transaction-scoped advisory lock on the
	// owner's folder set. Mutating operations call this first so that
	// concurrent create/move/delete for the same owner serialize
	// instead of interleaving position writes. Released at commit or
	// rollback; q must be a transaction.
	AcquireOwnerLock(ctx context.Context, q DBTX, ownerID string) error

	// CountLive returns the number of live folders the owner has.
	CountLive(ctx context.Context, q DBTX, ownerID string) (int, error)

	// ListOrdered returns the owner's live folders sorted ascending by position.
	ListOrdered(ctx context.Context, q DBTX, ownerID string) ([]models.Folder, error)

	// FindByID retrieves a live folder by ID and owner.
	FindByID(ctx context.Context, q DBTX, id, ownerID string) (*models.Folder, error)

	// Insert persists a new folder at the position set on the model.
	Insert(ctx context.Context, q DBTX, folder *models.Folder) error

	// Rename updates the folder's name.
	Rename(ctx context.Context, q DBTX, folder *models.Folder, name string) error

	// SetPosition assigns the folder's final position after a move.
	SetPosition(ctx context.Context, q DBTX, folder *models.Folder, position int) error

	// ShiftRange applies delta to the position of every live folder of
	// the owner whose position is in [lo, hi), excluding excludeID.
	// Executes as a single set-based UPDATE.
	ShiftRange(ctx context.Context, q DBTX, ownerID, excludeID string, lo, hi, delta int) error

	// SoftDelete tombstones the folder.
	SoftDelete(ctx context.Context, q DBTX, folder *models.Folder) error

	// ShiftTail decrements the position of every live folder of the
	// owner with position > deletedPosition, closing the gap a delete
	// leaves behind.
	ShiftTail(ctx context.Context, q DBTX, ownerID string, deletedPosition int) error
}

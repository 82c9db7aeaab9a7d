package services

import (
	"context"

	"linkloud/internal/domain/models"
	"linkloud/internal/domain/repositories"
)

// FolderService orchestrates folder CRUD and keeps the per-owner
// ordering dense: after any sequence of create/move/delete, the live
// folders' positions are exactly {0..N-1}.
//
// Every method takes the query handle it must run on. Mutating
// operations (Create, Move, Delete) expect the transaction their
// caller opened; partial position shifts are never committed.
type FolderService interface {
	// Create appends a folder at the end of the owner's ordering.
	// Fails with domain.ErrCapExceeded when the owner is at the
	// configured folder limit, domain.ErrValidation on a bad name.
	Create(ctx context.Context, tx repositories.DBTX, ownerID, name string) (*models.Folder, error)

	// Rename changes a folder's display name only.
	Rename(ctx context.Context, q repositories.DBTX, ownerID, id, name string) (*models.Folder, error)

	// Move reassigns the folder to newPosition and shifts the siblings
	// it passes over by one slot. Moving to the current position is a
	// successful no-op. Fails with domain.ErrInvalidPosition when
	// newPosition is outside [0, live count).
	Move(ctx context.Context, tx repositories.DBTX, ownerID, id string, newPosition int) error

	// Delete tombstones the folder, compacts the positions behind it
	// and detaches its links.
	Delete(ctx context.Context, tx repositories.DBTX, ownerID, id string) error

	// List returns the owner's live folders in position order,
	// annotated with link counts.
	List(ctx context.Context, q repositories.DBTX, ownerID string) ([]models.FolderSummary, error)

	// Get returns a single folder with link counts.
	Get(ctx context.Context, q repositories.DBTX, ownerID, id string) (*models.FolderSummary, error)
}

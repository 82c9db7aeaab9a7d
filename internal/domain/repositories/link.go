package repositories

import (
	"context"

	"linkloud/internal/domain/models"
)

// LinkRepository is the read-side view of the link store the folder
// service needs: per-folder aggregates for listings, plus the detach
// hook applied when a folder is deleted.
type LinkRepository interface {
	// CountsByOwner returns link totals per folder ID for the owner's
	// live links.
	CountsByOwner(ctx context.Context, q DBTX, ownerID string) (map[string]models.LinkCounts, error)

	// CountsByFolder returns link totals for a single folder.
	CountsByFolder(ctx context.Context, q DBTX, ownerID, folderID string) (models.LinkCounts, error)

	// DetachFolder clears the folder reference on the owner's live
	// links pointing at folderID. Runs inside the delete transaction.
	DetachFolder(ctx context.Context, q DBTX, ownerID, folderID string) error
}

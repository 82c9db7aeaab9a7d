package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"linkloud/internal/config"
	"linkloud/internal/domain"
	"linkloud/internal/domain/models"
	"linkloud/internal/domain/repositories"
	"linkloud/internal/domain/services"
	"linkloud/internal/ordering"
)

type folderService struct {
	folderRepo repositories.FolderRepository
	linkRepo   repositories.LinkRepository
	limits     config.Limits
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo repositories.FolderRepository,
	linkRepo repositories.LinkRepository,
	limits config.Limits,
	logger *slog.Logger,
) services.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		linkRepo:   linkRepo,
		limits:     limits,
		logger:     logger,
	}
}

// Create appends a folder at the end of the owner's ordering. The new
// folder's position equals the pre-insert live count, so density holds
// without touching any sibling.
func (s *folderService) Create(ctx context.Context, tx repositories.DBTX, ownerID, name string) (*models.Folder, error) {
	if err := s.folderRepo.AcquireOwnerLock(ctx, tx, ownerID); err != nil {
		return nil, err
	}

	count, err := s.folderRepo.CountLive(ctx, tx, ownerID)
	if err != nil {
		return nil, err
	}
	if count >= s.limits.MaxFoldersPerOwner {
		return nil, &domain.CapacityError{Count: count, Limit: s.limits.MaxFoldersPerOwner}
	}

	if err := s.validateName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	folder := &models.Folder{
		OwnerID:   ownerID,
		Name:      name,
		Position:  count,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.folderRepo.Insert(ctx, tx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"owner_id", ownerID,
		"position", folder.Position,
	)

	return folder, nil
}

// Rename changes a folder's display name only
func (s *folderService) Rename(ctx context.Context, q repositories.DBTX, ownerID, id, name string) (*models.Folder, error) {
	folder, err := s.folderRepo.FindByID(ctx, q, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.validateName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.folderRepo.Rename(ctx, q, folder, name); err != nil {
		return nil, err
	}

	s.logger.Info("folder renamed", "id", id, "owner_id", ownerID)

	return folder, nil
}

// Move reassigns the folder to newPosition and shifts the siblings it
// passes over. Statement order inside the transaction is fixed: the
// range shift must see the folder's pre-move position, and the final
// position write must come after the shift or the moved folder would
// be shifted too.
func (s *folderService) Move(ctx context.Context, tx repositories.DBTX, ownerID, id string, newPosition int) error {
	if err := s.folderRepo.AcquireOwnerLock(ctx, tx, ownerID); err != nil {
		return err
	}

	folder, err := s.folderRepo.FindByID(ctx, tx, id, ownerID)
	if err != nil {
		return err
	}

	count, err := s.folderRepo.CountLive(ctx, tx, ownerID)
	if err != nil {
		return err
	}

	plan, err := ordering.Compute(count, folder.Position, newPosition)
	if err != nil {
		return err
	}
	if plan.Empty() {
		// Already where the caller wants it
		return nil
	}

	if err := s.folderRepo.ShiftRange(ctx, tx, ownerID, folder.ID, plan.Lo, plan.Hi, plan.Delta); err != nil {
		return err
	}
	if err := s.folderRepo.SetPosition(ctx, tx, folder, plan.Position); err != nil {
		return err
	}

	s.logger.Info("folder moved",
		"id", id,
		"owner_id", ownerID,
		"position", newPosition,
	)

	return nil
}

// Delete tombstones the folder, compacts the tail and detaches links
func (s *folderService) Delete(ctx context.Context, tx repositories.DBTX, ownerID, id string) error {
	if err := s.folderRepo.AcquireOwnerLock(ctx, tx, ownerID); err != nil {
		return err
	}

	folder, err := s.folderRepo.FindByID(ctx, tx, id, ownerID)
	if err != nil {
		return err
	}

	if err := s.folderRepo.SoftDelete(ctx, tx, folder); err != nil {
		return err
	}
	if err := s.folderRepo.ShiftTail(ctx, tx, ownerID, folder.Position); err != nil {
		return err
	}
	if err := s.linkRepo.DetachFolder(ctx, tx, ownerID, folder.ID); err != nil {
		return err
	}

	s.logger.Info("folder deleted",
		"id", id,
		"owner_id", ownerID,
		"position", folder.Position,
	)

	return nil
}

// List returns the owner's live folders in position order with link counts
func (s *folderService) List(ctx context.Context, q repositories.DBTX, ownerID string) ([]models.FolderSummary, error) {
	folders, err := s.folderRepo.ListOrdered(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}

	counts, err := s.linkRepo.CountsByOwner(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.FolderSummary, 0, len(folders))
	for _, folder := range folders {
		c := counts[folder.ID]
		summaries = append(summaries, models.FolderSummary{
			Folder:          folder,
			LinkCount:       c.Links,
			UnreadLinkCount: c.Unread,
		})
	}

	return summaries, nil
}

// Get returns a single folder with link counts
func (s *folderService) Get(ctx context.Context, q repositories.DBTX, ownerID, id string) (*models.FolderSummary, error) {
	folder, err := s.folderRepo.FindByID(ctx, q, id, ownerID)
	if err != nil {
		return nil, err
	}

	c, err := s.linkRepo.CountsByFolder(ctx, q, ownerID, folder.ID)
	if err != nil {
		return nil, err
	}

	return &models.FolderSummary{
		Folder:          *folder,
		LinkCount:       c.Links,
		UnreadLinkCount: c.Unread,
	}, nil
}

// validateName validates a folder display name
func (s *folderService) validateName(name string) error {
	return validation.Validate(name,
		validation.Required,
		validation.RuneLength(s.limits.MinFolderNameLength, s.limits.MaxFolderNameLength),
	)
}

package handler

import (
	"context"
	"log/slog"
	"net/http"

	"linkloud/internal/domain/models"
	"linkloud/internal/domain/repositories"
	"linkloud/internal/domain/services"
	"linkloud/internal/httputil"
)

// FolderHandler handles folder HTTP requests. It owns the transaction
// boundary: one transaction per mutating request, opened here and
// passed explicitly into the service.
type FolderHandler struct {
	folderService services.FolderService
	db            repositories.DBTX
	txManager     repositories.TransactionManager
	logger        *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(
	folderService services.FolderService,
	db repositories.DBTX,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
		db:            db,
		txManager:     txManager,
		logger:        logger,
	}
}

type folderNameRequest struct {
	Name string `json:"name"`
}

type moveFolderRequest struct {
	NewPosition *int `json:"new_position"`
}

type folderListResponse struct {
	Count   int                    `json:"count"`
	Folders []models.FolderSummary `json:"folders"`
}

// CreateFolder creates a new folder at the end of the owner's ordering
// POST /api/folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	ownerID, err := getOwnerID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req folderNameRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var folder *models.Folder
	err = h.txManager.ExecTx(r.Context(), func(ctx context.Context, tx repositories.DBTX) error {
		var txErr error
		folder, txErr = h.folderService.Create(ctx, tx, ownerID, req.Name)
		return txErr
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// ListFolders returns the owner's folders in position order
// GET /api/folders
func (h *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	ownerID, err := getOwnerID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	folders, err := h.folderService.List(r.Context(), h.db, ownerID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folderListResponse{
		Count:   len(folders),
		Folders: folders,
	})
}

// GetFolder retrieves a single folder with link counts
// GET /api/folders/{id}
func (h *FolderHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	ownerID, err := getOwnerID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "folder ID is required")
		return
	}

	folder, err := h.folderService.Get(r.Context(), h.db, ownerID, id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// RenameFolder updates a folder's display name
// PATCH /api/folders/{id}
func (h *FolderHandler) RenameFolder(w http.ResponseWriter, r *http.Request) {
	ownerID, err := getOwnerID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "folder ID is required")
		return
	}

	var req folderNameRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Single-row update; no multi-statement transaction needed
	folder, err := h.folderService.Rename(r.Context(), h.db, ownerID, id, req.Name)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// MoveFolder reassigns a folder's position, shifting its siblings
// PATCH /api/folders/{id}/position
func (h *FolderHandler) MoveFolder(w http.ResponseWriter, r *http.Request) {
	ownerID, err := getOwnerID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "folder ID is required")
		return
	}

	var req moveFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.NewPosition == nil {
		httputil.RespondError(w, http.StatusBadRequest, "new_position is required")
		return
	}

	err = h.txManager.ExecTx(r.Context(), func(ctx context.Context, tx repositories.DBTX) error {
		return h.folderService.Move(ctx, tx, ownerID, id, *req.NewPosition)
	})
	if err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteFolder tombstones a folder and compacts the ordering
// DELETE /api/folders/{id}
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	ownerID, err := getOwnerID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "folder ID is required")
		return
	}

	err = h.txManager.ExecTx(r.Context(), func(ctx context.Context, tx repositories.DBTX) error {
		return h.folderService.Delete(ctx, tx, ownerID, id)
	})
	if err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck responds to load balancer probes
// GET /health
func (h *FolderHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

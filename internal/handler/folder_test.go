package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"linkloud/internal/domain"
	"linkloud/internal/domain/models"
	"linkloud/internal/domain/repositories"
	"linkloud/internal/httputil"
)

// stubService returns canned results; transaction plumbing is covered
// by the repository and service tests.
type stubService struct {
	folder    *models.Folder
	summaries []models.FolderSummary
	err       error
}

func (s *stubService) Create(ctx context.Context, tx repositories.DBTX, ownerID, name string) (*models.Folder, error) {
	return s.folder, s.err
}

func (s *stubService) Rename(ctx context.Context, q repositories.DBTX, ownerID, id, name string) (*models.Folder, error) {
	return s.folder, s.err
}

func (s *stubService) Move(ctx context.Context, tx repositories.DBTX, ownerID, id string, newPosition int) error {
	return s.err
}

func (s *stubService) Delete(ctx context.Context, tx repositories.DBTX, ownerID, id string) error {
	return s.err
}

func (s *stubService) List(ctx context.Context, q repositories.DBTX, ownerID string) ([]models.FolderSummary, error) {
	return s.summaries, s.err
}

func (s *stubService) Get(ctx context.Context, q repositories.DBTX, ownerID, id string) (*models.FolderSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.summaries[0], nil
}

// passthroughTxManager runs the function without a database.
type passthroughTxManager struct{}

func (passthroughTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx, nil)
}

func newTestHandler(svc *stubService) *FolderHandler {
	return NewFolderHandler(svc, nil, passthroughTxManager{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func doRequest(h http.HandlerFunc, method, target, body, ownerID string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, reader)
	if ownerID != "" {
		r = httputil.WithOwnerID(r, ownerID)
	}
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func TestCreateFolder(t *testing.T) {
	svc := &stubService{folder: &models.Folder{ID: "f1", OwnerID: "user-1", Name: "reading"}}
	h := newTestHandler(svc)

	w := doRequest(h.CreateFolder, http.MethodPost, "/api/folders", `{"name":"reading"}`, "user-1")

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusCreated, w.Body)
	}

	var folder models.Folder
	if err := json.Unmarshal(w.Body.Bytes(), &folder); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if folder.ID != "f1" || folder.Name != "reading" {
		t.Errorf("folder = %+v", folder)
	}
}

func TestCreateFolder_CapExceeded(t *testing.T) {
	svc := &stubService{err: &domain.CapacityError{Count: 20, Limit: 20}}
	h := newTestHandler(svc)

	w := doRequest(h.CreateFolder, http.MethodPost, "/api/folders", `{"name":"x"}`, "user-1")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var problem map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &problem); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	if problem["count"] != float64(20) || problem["limit"] != float64(20) {
		t.Errorf("problem extras = %v, want count=20 limit=20", problem)
	}
}

func TestCreateFolder_Conflict(t *testing.T) {
	svc := &stubService{err: fmt.Errorf("folder f1 already exists: %w", domain.ErrConflict)}
	h := newTestHandler(svc)

	w := doRequest(h.CreateFolder, http.MethodPost, "/api/folders", `{"name":"x"}`, "user-1")

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestCreateFolder_Unauthenticated(t *testing.T) {
	h := newTestHandler(&stubService{})

	w := doRequest(h.CreateFolder, http.MethodPost, "/api/folders", `{"name":"x"}`, "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestCreateFolder_BadBody(t *testing.T) {
	h := newTestHandler(&stubService{})

	w := doRequest(h.CreateFolder, http.MethodPost, "/api/folders", `{"name":`, "user-1")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestListFolders(t *testing.T) {
	svc := &stubService{summaries: []models.FolderSummary{
		{Folder: models.Folder{ID: "f1", Name: "A"}, LinkCount: 2, UnreadLinkCount: 1},
		{Folder: models.Folder{ID: "f2", Name: "B", Position: 1}},
	}}
	h := newTestHandler(svc)

	w := doRequest(h.ListFolders, http.MethodGet, "/api/folders", "", "user-1")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp folderListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 2 || len(resp.Folders) != 2 {
		t.Errorf("response = %+v", resp)
	}
	if resp.Folders[0].LinkCount != 2 || resp.Folders[0].UnreadLinkCount != 1 {
		t.Errorf("counts not serialized: %+v", resp.Folders[0])
	}
}

func TestMoveFolder(t *testing.T) {
	h := newTestHandler(&stubService{})

	r := httptest.NewRequest(http.MethodPatch, "/api/folders/f1/position", strings.NewReader(`{"new_position":0}`))
	r.SetPathValue("id", "f1")
	r = httputil.WithOwnerID(r, "user-1")
	w := httptest.NewRecorder()
	h.MoveFolder(w, r)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusNoContent, w.Body)
	}
}

func TestMoveFolder_MissingPosition(t *testing.T) {
	h := newTestHandler(&stubService{})

	r := httptest.NewRequest(http.MethodPatch, "/api/folders/f1/position", strings.NewReader(`{}`))
	r.SetPathValue("id", "f1")
	r = httputil.WithOwnerID(r, "user-1")
	w := httptest.NewRecorder()
	h.MoveFolder(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

// Position zero must be accepted; a naive required-field check would
// treat it as missing.
func TestMoveFolder_PositionZero(t *testing.T) {
	h := newTestHandler(&stubService{})

	r := httptest.NewRequest(http.MethodPatch, "/api/folders/f1/position", strings.NewReader(`{"new_position":0}`))
	r.SetPathValue("id", "f1")
	r = httputil.WithOwnerID(r, "user-1")
	w := httptest.NewRecorder()
	h.MoveFolder(w, r)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
}

func TestMoveFolder_InvalidPosition(t *testing.T) {
	svc := &stubService{err: &domain.PositionError{Requested: 5, Count: 2}}
	h := newTestHandler(svc)

	r := httptest.NewRequest(http.MethodPatch, "/api/folders/f1/position", strings.NewReader(`{"new_position":5}`))
	r.SetPathValue("id", "f1")
	r = httputil.WithOwnerID(r, "user-1")
	w := httptest.NewRecorder()
	h.MoveFolder(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var problem map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &problem); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	if problem["requested"] != float64(5) || problem["count"] != float64(2) {
		t.Errorf("problem extras = %v, want requested=5 count=2", problem)
	}
}

func TestDeleteFolder(t *testing.T) {
	h := newTestHandler(&stubService{})

	r := httptest.NewRequest(http.MethodDelete, "/api/folders/f1", nil)
	r.SetPathValue("id", "f1")
	r = httputil.WithOwnerID(r, "user-1")
	w := httptest.NewRecorder()
	h.DeleteFolder(w, r)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
}

func TestGetFolder_NotFound(t *testing.T) {
	svc := &stubService{err: domain.ErrNotFound}
	h := newTestHandler(svc)

	r := httptest.NewRequest(http.MethodGet, "/api/folders/missing", nil)
	r.SetPathValue("id", "missing")
	r = httputil.WithOwnerID(r, "user-1")
	w := httptest.NewRecorder()
	h.GetFolder(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLimits(t *testing.T) {
	limits := DefaultLimits()
	if limits.MaxFoldersPerOwner != 20 {
		t.Errorf("MaxFoldersPerOwner = %d, want 20", limits.MaxFoldersPerOwner)
	}
	if limits.MaxFolderNameLength != 50 {
		t.Errorf("MaxFolderNameLength = %d, want 50", limits.MaxFolderNameLength)
	}
	if limits.MinFolderNameLength != 1 {
		t.Errorf("MinFolderNameLength = %d, want 1", limits.MinFolderNameLength)
	}
}

func TestLoadLimits(t *testing.T) {
	t.Run("overrides provided fields only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "limits.yaml")
		if err := os.WriteFile(path, []byte("max_folders_per_owner: 5\n"), 0644); err != nil {
			t.Fatal(err)
		}

		limits, err := LoadLimits(path)
		if err != nil {
			t.Fatalf("LoadLimits: %v", err)
		}
		if limits.MaxFoldersPerOwner != 5 {
			t.Errorf("MaxFoldersPerOwner = %d, want 5", limits.MaxFoldersPerOwner)
		}
		if limits.MaxFolderNameLength != 50 {
			t.Errorf("MaxFolderNameLength = %d, want default 50", limits.MaxFolderNameLength)
		}
	})

	t.Run("missing file returns defaults and error", func(t *testing.T) {
		limits, err := LoadLimits(filepath.Join(t.TempDir(), "absent.yaml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if limits.MaxFoldersPerOwner != 20 {
			t.Errorf("MaxFoldersPerOwner = %d, want default 20", limits.MaxFoldersPerOwner)
		}
	})

	t.Run("malformed yaml returns defaults and error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "limits.yaml")
		if err := os.WriteFile(path, []byte("max_folders_per_owner: [oops"), 0644); err != nil {
			t.Fatal(err)
		}

		limits, err := LoadLimits(path)
		if err == nil {
			t.Fatal("expected error for malformed yaml")
		}
		if limits.MaxFoldersPerOwner != 20 {
			t.Errorf("MaxFoldersPerOwner = %d, want default 20", limits.MaxFoldersPerOwner)
		}
	})
}

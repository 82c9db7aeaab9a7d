package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultMaxFoldersPerOwner caps how many live folders one account
	// can hold. The ordering invariant makes every create/move/delete
	// touch a position range, so the cap keeps those range updates
	// small and the drag-and-drop UI usable.
	DefaultMaxFoldersPerOwner = 20

	// MaxFolderNameLength bounds folder display names. Limited to 50
	// to fit in VARCHAR(50) and keep the sidebar readable.
	MaxFolderNameLength = 50

	// MinFolderNameLength - empty names are rejected.
	MinFolderNameLength = 1
)

// Limits carries the tunable business bounds the folder service is
// constructed with, so deployments can adjust them without code edits.
type Limits struct {
	MaxFoldersPerOwner  int `yaml:"max_folders_per_owner"`
	MaxFolderNameLength int `yaml:"max_folder_name_length"`
	MinFolderNameLength int `yaml:"min_folder_name_length"`
}

// DefaultLimits returns the production defaults.
func DefaultLimits() Limits {
	return Limits{
		MaxFoldersPerOwner:  DefaultMaxFoldersPerOwner,
		MaxFolderNameLength: MaxFolderNameLength,
		MinFolderNameLength: MinFolderNameLength,
	}
}

// LoadLimits reads limit overrides from a YAML file. Fields left at
// zero keep their defaults.
func LoadLimits(path string) (Limits, error) {
	limits := DefaultLimits()

	data, err := os.ReadFile(path)
	if err != nil {
		return limits, fmt.Errorf("read limits file: %w", err)
	}

	var overrides Limits
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return limits, fmt.Errorf("parse limits file: %w", err)
	}

	if overrides.MaxFoldersPerOwner > 0 {
		limits.MaxFoldersPerOwner = overrides.MaxFoldersPerOwner
	}
	if overrides.MaxFolderNameLength > 0 {
		limits.MaxFolderNameLength = overrides.MaxFolderNameLength
	}
	if overrides.MinFolderNameLength > 0 {
		limits.MinFolderNameLength = overrides.MinFolderNameLength
	}

	return limits, nil
}

package models

import (
	"time"
)

// Link is a bookmark record. Links optionally reference a folder of
// the same owner; a deleted folder leaves its links with a NULL
// folder reference rather than cascading.
type Link struct {
	ID        string     `json:"id" db:"id"`
	OwnerID   string     `json:"owner_id" db:"owner_id"`
	FolderID  *string    `json:"folder_id" db:"folder_id"` // NULL = uncategorized
	URL       string     `json:"url" db:"url"`
	Title     string     `json:"title" db:"title"`
	IsRead    bool       `json:"is_read" db:"is_read"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// LinkCounts holds per-folder aggregates used to annotate folder listings.
type LinkCounts struct {
	Links  int `json:"links"`
	Unread int `json:"unread"`
}

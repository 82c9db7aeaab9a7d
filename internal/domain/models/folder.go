package models

import (
	"time"
)

// Folder is a user-owned, named, orderable container for links.
// Position is the zero-based dense rank among the owner's live
// (non-deleted) folders: positions always form exactly {0..N-1}.
type Folder struct {
	ID        string     `json:"id" db:"id"`
	OwnerID   string     `json:"owner_id" db:"owner_id"`
	Name      string     `json:"name" db:"name"`
	Position  int        `json:"position" db:"position"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// Live reports whether the folder participates in ordering and listing.
func (f *Folder) Live() bool {
	return f.DeletedAt == nil
}

// FolderSummary is the list/read representation: a folder annotated
// with link counts joined from the link store.
type FolderSummary struct {
	Folder
	LinkCount       int `json:"link_count"`
	UnreadLinkCount int `json:"unread_link_count"`
}

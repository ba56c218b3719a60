package domain

import "time"

// Bookmark links a user to a saved note. At most one row may exist per
// (user, note) pair; the unique index is what the toggle upsert relies on.
type Bookmark struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_note"`
	NoteID    int64     `json:"note_id" gorm:"not null;index;uniqueIndex:idx_user_note"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Virtual fields for preload
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Note *Note `json:"note,omitempty" gorm:"foreignKey:NoteID;constraint:OnDelete:CASCADE"`
}

func (Bookmark) TableName() string { return "bookmarks" }

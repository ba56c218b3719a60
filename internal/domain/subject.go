package domain

import "time"

// DefaultSubjectIcon is used when a subject is created without one.
const DefaultSubjectIcon = "📘"

type Subject struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Icon        string    `json:"icon" gorm:"size:50;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Subject) TableName() string { return "subjects" }

// SubjectWithCount carries a subject plus how many notes reference it.
// Used by the landing and browse sidebars.
type SubjectWithCount struct {
	Subject
	NoteCount int64 `json:"note_count" gorm:"column:note_count"`
}

package domain

import "time"

type Note struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:200;not null"`
	Description string `json:"description"`
	SubjectID   int64  `json:"subject_id" gorm:"not null;index"`
	UploadedBy  int64  `json:"uploaded_by" gorm:"not null;index"`

	// FilePath is relative to the upload root, notes/YYYY/MM/DD/<name>.
	// FileName keeps the original base name for the attachment disposition.
	FilePath string `json:"-" gorm:"size:500;not null"`
	FileName string `json:"file_name" gorm:"size:255;not null"`
	FileSize int64  `json:"file_size"`

	Downloads int64     `json:"downloads" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Virtual fields for preload
	Subject  *Subject `json:"subject,omitempty" gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE"`
	Uploader *User    `json:"uploader,omitempty" gorm:"foreignKey:UploadedBy;constraint:OnDelete:CASCADE"`
}

func (Note) TableName() string { return "notes" }

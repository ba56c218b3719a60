package domain

import "time"

// Session is a server-side login session. The cookie carries the raw opaque
// token; only the peppered SHA-256 hash is stored here.
type Session struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	TokenHash string    `json:"-" gorm:"size:64;not null;uniqueIndex"`
	UserAgent *string   `json:"user_agent,omitempty"`
	IP        *string   `json:"ip,omitempty"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Session) TableName() string { return "sessions" }

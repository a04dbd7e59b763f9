package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReferenceTypeFile = "file"
	ReferenceTypeLink = "link"
)

// ReferenceItem is a user's saved reference material: an uploaded file (data URL) or a link.
type ReferenceItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	Type      string         `json:"type" gorm:"not null"` // "file", "link"
	Title     string         `json:"title" gorm:"not null"`
	URL       string         `json:"url" gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

package model

import "time"

// Attachment metadata is written once at upload time and only removed
// together with its owning task.
type Attachment struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	TaskID       string    `gorm:"size:36;index;not null" json:"-"`
	OriginalName string    `gorm:"not null" json:"original_name"`
	StoredName   string    `gorm:"uniqueIndex;not null" json:"stored_name"`
	Path         string    `gorm:"not null" json:"path"`
	MimeType     string    `json:"mime_type"`
	SizeBytes    int64     `json:"size_bytes"`
	CreatedAt    time.Time `json:"created_at"`
}

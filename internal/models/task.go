package model

import "time"

type Task struct {
	ID          string       `gorm:"primaryKey;size:36" json:"id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `json:"description"`
	Status      string       `gorm:"type:varchar(20);not null" json:"status"`
	Priority    string       `gorm:"type:varchar(10)" json:"priority"`
	DueDate     string       `gorm:"size:10" json:"due_date"`
	CreatedBy   string       `gorm:"size:36;index;not null" json:"created_by"`
	AssignedTo  *string      `gorm:"size:36;index" json:"assigned_to,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

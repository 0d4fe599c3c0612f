package models

import "time"

// EmailNotification status values.
const (
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// EmailNotification records one outbound email attempt.
type EmailNotification struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Recipient string    `gorm:"size:255;not null" json:"recipient"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Status    string    `gorm:"size:20" json:"status"`
	SentAt    time.Time `json:"sentAt"`
}

// CustomEmail is an admin-composed email kept for reuse.
type CustomEmail struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Subject   string    `gorm:"size:255;not null" json:"subject"`
	Body      string    `gorm:"type:text" json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmailTemplate is a named reusable email body.
type EmailTemplate struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Body      string    `gorm:"type:text" json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package models

import "time"

// Subscriber is a newsletter signup. Email is unique, a second signup with
// the same address is a conflict.
type Subscriber struct {
	ID               string    `gorm:"primaryKey;size:32" json:"id"`
	Email            string    `gorm:"size:255;unique;not null" json:"email"`
	Status           string    `gorm:"size:20;default:'active'" json:"status"`
	SubscriptionDate time.Time `json:"subscriptionDate"`
}

// ContactSubmission is a message sent through the public contact form.
type ContactSubmission struct {
	ID          string    `gorm:"primaryKey;size:32" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Email       string    `gorm:"size:255;not null" json:"email"`
	Subject     string    `gorm:"size:255" json:"subject"`
	Message     string    `gorm:"type:text" json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

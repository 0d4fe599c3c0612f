package models

import "time"

// Shared active/inactive status values for the small content entities.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// BreakingNews is a ticker item shown at the top of the public site.
type BreakingNews struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Text      string    `gorm:"size:512;not null" json:"text"`
	Link      string    `gorm:"size:2048" json:"link"`
	Status    string    `gorm:"size:20;default:'active'" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// QuickLink is a curated shortcut shown in the sidebar.
type QuickLink struct {
	ID          string    `gorm:"primaryKey;size:32" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Category    string    `gorm:"size:100" json:"category"`
	URL         string    `gorm:"size:2048" json:"url"`
	Description string    `gorm:"size:512" json:"description"`
	Status      string    `gorm:"size:20;default:'active'" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UpcomingExam is an exam deadline entry.
type UpcomingExam struct {
	ID               string    `gorm:"primaryKey;size:32" json:"id"`
	Name             string    `gorm:"size:255;not null" json:"name"`
	Deadline         string    `gorm:"size:32" json:"deadline"`
	NotificationLink string    `gorm:"size:2048" json:"notificationLink"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// PreparationBook is a recommended book for exam preparation.
type PreparationBook struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Author    string    `gorm:"size:255" json:"author"`
	URL       string    `gorm:"size:2048" json:"url"`
	ImageURL  string    `gorm:"size:2048" json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PreparationCourse is a recommended online course for exam preparation.
type PreparationCourse struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Platform  string    `gorm:"size:100" json:"platform"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	URL       string    `gorm:"size:2048" json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

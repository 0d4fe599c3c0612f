package models

import "time"

// ContentPost status values.
const (
	PostStatusPublished = "published"
	PostStatusDraft     = "draft"
)

// ContentPost type values. The type decides where the post surfaces on the
// public site (blog posts, exam notices or result announcements).
const (
	PostTypePosts       = "posts"
	PostTypeExamNotices = "exam-notices"
	PostTypeResults     = "results"
)

// ContentPost represents a blog post, exam notice or result announcement.
type ContentPost struct {
	ID             string    `gorm:"primaryKey;size:32" json:"id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Category       string    `gorm:"size:100" json:"category"`
	Content        string    `gorm:"type:text" json:"content"`
	Status         string    `gorm:"size:20;default:'draft'" json:"status"`
	Type           string    `gorm:"size:20;default:'posts'" json:"type"`
	PublishedDate  string    `gorm:"size:32" json:"publishedDate"`
	ExamDate       string    `gorm:"size:32" json:"examDate,omitempty"`
	DetailsURL     string    `gorm:"size:2048" json:"detailsUrl,omitempty"`
	ImageURL       string    `gorm:"size:2048" json:"imageUrl,omitempty"`
	SEOTitle       string    `gorm:"size:255" json:"seoTitle,omitempty"`
	SEODescription string    `gorm:"size:512" json:"seoDescription,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

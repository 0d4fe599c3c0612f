package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Job status values.
const (
	JobStatusActive  = "active"
	JobStatusExpired = "expired"
)

// AffiliateRef is a reference to a preparation course or book attached to a job.
type AffiliateRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Job represents a job listing.
// AffiliateCourses and AffiliateBooks are ordered reference lists stored as
// JSON columns. They always round-trip to an array: a missing or unparseable
// column reads back as an empty list, never null.
type Job struct {
	ID               string         `gorm:"primaryKey;size:32" json:"id"`
	Title            string         `gorm:"size:255;not null" json:"title"`
	Department       string         `gorm:"size:255" json:"department"`
	Category         string         `gorm:"size:100" json:"category"`
	Description      string         `gorm:"type:text" json:"description"`
	Qualification    string         `gorm:"type:text" json:"qualification"`
	Vacancies        int            `json:"vacancies"`
	PostedDate       string         `gorm:"size:32" json:"postedDate"`
	LastDate         string         `gorm:"size:32" json:"lastDate"`
	ApplyLink        string         `gorm:"size:2048" json:"applyLink"`
	Status           string         `gorm:"size:20;default:'active'" json:"status"`
	AffiliateCourses datatypes.JSON `json:"affiliateCourses"`
	AffiliateBooks   datatypes.JSON `json:"affiliateBooks"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// DecodeAffiliates normalizes both affiliate columns so that JSON encoding
// of the job always yields arrays.
func (j *Job) DecodeAffiliates() {
	j.AffiliateCourses = normalizeRefList(j.AffiliateCourses)
	j.AffiliateBooks = normalizeRefList(j.AffiliateBooks)
}

// normalizeRefList returns the column content if it parses as a list of
// affiliate references, an empty JSON array otherwise.
func normalizeRefList(col datatypes.JSON) datatypes.JSON {
	empty := datatypes.JSON([]byte("[]"))

	if len(col) == 0 {
		return empty
	}

	var refs []AffiliateRef
	if err := json.Unmarshal(col, &refs); err != nil {
		return empty
	}

	if refs == nil {
		return empty
	}

	return col
}

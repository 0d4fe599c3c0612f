// Package contact provides operations for contact form submissions.
package contact

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/uniuri"
)

var (
	// ErrContactNotFound is returned when a submission id has no matching row.
	ErrContactNotFound = errors.New("contact submission not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all contact submissions, newest first.
func GetAll(db *gorm.DB) ([]models.ContactSubmission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var subs []models.ContactSubmission
	if result := db.Order("submitted_at DESC").Find(&subs); result.Error != nil {
		return nil, result.Error
	}

	return subs, nil
}

// Create persists a new contact submission.
func Create(db *gorm.DB, c *models.ContactSubmission) (*models.ContactSubmission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	c.ID = uniuri.New()
	c.SubmittedAt = time.Now().UTC()

	if result := db.Create(c); result.Error != nil {
		return nil, result.Error
	}

	return c, nil
}

// Delete removes a submission by id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(&models.ContactSubmission{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}

	return nil
}

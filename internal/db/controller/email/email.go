// Package email provides operations for the email center records:
// outbound notifications, custom emails and templates.
package email

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/uniuri"
)

var (
	// ErrNotificationNotFound is returned when a notification id has no matching row.
	ErrNotificationNotFound = errors.New("email notification not found")
	// ErrCustomEmailNotFound is returned when a custom email id has no matching row.
	ErrCustomEmailNotFound = errors.New("custom email not found")
	// ErrTemplateNotFound is returned when a template id has no matching row.
	ErrTemplateNotFound = errors.New("email template not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAllNotifications retrieves all outbound email records, newest first.
func GetAllNotifications(db *gorm.DB) ([]models.EmailNotification, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []models.EmailNotification
	if result := db.Order("sent_at DESC").Find(&items); result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// RecordNotification persists one outbound email attempt.
func RecordNotification(db *gorm.DB, recipient, subject, status string) (*models.EmailNotification, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	n := &models.EmailNotification{
		ID:        uniuri.New(),
		Recipient: recipient,
		Subject:   subject,
		Status:    status,
		SentAt:    time.Now().UTC(),
	}

	if result := db.Create(n); result.Error != nil {
		return nil, result.Error
	}

	return n, nil
}

// DeleteNotification removes an outbound email record by id.
func DeleteNotification(db *gorm.DB, id string) error {
	return deleteByID(db, &models.EmailNotification{}, id, ErrNotificationNotFound)
}

// GetAllCustomEmails retrieves all custom emails, newest first.
func GetAllCustomEmails(db *gorm.DB) ([]models.CustomEmail, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []models.CustomEmail
	if result := db.Order("created_at DESC").Find(&items); result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// CreateCustomEmail persists a new custom email.
func CreateCustomEmail(db *gorm.DB, e *models.CustomEmail) (*models.CustomEmail, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	e.ID = uniuri.New()
	if result := db.Create(e); result.Error != nil {
		return nil, result.Error
	}

	return e, nil
}

// DeleteCustomEmail removes a custom email by id.
func DeleteCustomEmail(db *gorm.DB, id string) error {
	return deleteByID(db, &models.CustomEmail{}, id, ErrCustomEmailNotFound)
}

// GetAllTemplates retrieves all email templates, newest first.
func GetAllTemplates(db *gorm.DB) ([]models.EmailTemplate, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []models.EmailTemplate
	if result := db.Order("created_at DESC").Find(&items); result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// CreateTemplate persists a new email template.
func CreateTemplate(db *gorm.DB, t *models.EmailTemplate) (*models.EmailTemplate, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	t.ID = uniuri.New()
	if result := db.Create(t); result.Error != nil {
		return nil, result.Error
	}

	return t, nil
}

// DeleteTemplate removes an email template by id.
func DeleteTemplate(db *gorm.DB, id string) error {
	return deleteByID(db, &models.EmailTemplate{}, id, ErrTemplateNotFound)
}

func deleteByID(db *gorm.DB, model interface{}, id string, notFound error) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}

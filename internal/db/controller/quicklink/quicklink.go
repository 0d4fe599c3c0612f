// Package quicklink provides CRUD operations for quick links.
package quicklink

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/uniuri"
)

var (
	// ErrLinkNotFound is returned when a quick link id has no matching row.
	ErrLinkNotFound = errors.New("quick link not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all quick links ordered by title.
func GetAll(db *gorm.DB) ([]models.QuickLink, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var links []models.QuickLink
	if result := db.Order("title ASC").Find(&links); result.Error != nil {
		return nil, result.Error
	}

	return links, nil
}

// Create persists a new quick link.
func Create(db *gorm.DB, l *models.QuickLink) (*models.QuickLink, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	l.ID = uniuri.New()
	if result := db.Create(l); result.Error != nil {
		return nil, result.Error
	}

	return l, nil
}

// Update saves changes to an existing quick link.
func Update(db *gorm.DB, l *models.QuickLink) (*models.QuickLink, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.QuickLink
	result := db.Where("id = ?", l.ID).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, result.Error
	}

	l.CreatedAt = existing.CreatedAt
	if result := db.Save(l); result.Error != nil {
		return nil, result.Error
	}

	return l, nil
}

// Delete removes a quick link by id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(&models.QuickLink{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLinkNotFound
	}

	return nil
}

// Package news provides CRUD operations for breaking news items.
package news

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/uniuri"
)

var (
	// ErrNewsNotFound is returned when a news id has no matching row.
	ErrNewsNotFound = errors.New("breaking news not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all breaking news items, newest first.
func GetAll(db *gorm.DB) ([]models.BreakingNews, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var items []models.BreakingNews
	if result := db.Order("created_at DESC").Find(&items); result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// Create persists a new breaking news item.
func Create(db *gorm.DB, n *models.BreakingNews) (*models.BreakingNews, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	n.ID = uniuri.New()
	if result := db.Create(n); result.Error != nil {
		return nil, result.Error
	}

	return n, nil
}

// Update saves changes to an existing item.
func Update(db *gorm.DB, n *models.BreakingNews) (*models.BreakingNews, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.BreakingNews
	result := db.Where("id = ?", n.ID).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, result.Error
	}

	n.CreatedAt = existing.CreatedAt
	if result := db.Save(n); result.Error != nil {
		return nil, result.Error
	}

	return n, nil
}

// Delete removes an item by id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(&models.BreakingNews{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNewsNotFound
	}

	return nil
}

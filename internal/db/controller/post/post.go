// Package post provides CRUD operations for content posts.
package post

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/uniuri"
)

var (
	// ErrPostNotFound is returned when a post id has no matching row.
	ErrPostNotFound = errors.New("post not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all posts, newest first.
func GetAll(db *gorm.DB) ([]models.ContentPost, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var posts []models.ContentPost
	if result := db.Order("created_at DESC").Find(&posts); result.Error != nil {
		return nil, result.Error
	}

	return posts, nil
}

// Create persists a new post and returns it with the generated id.
func Create(db *gorm.DB, p *models.ContentPost) (*models.ContentPost, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	p.ID = uniuri.New()
	if result := db.Create(p); result.Error != nil {
		return nil, result.Error
	}

	return p, nil
}

// Update saves changes to an existing post.
func Update(db *gorm.DB, p *models.ContentPost) (*models.ContentPost, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.ContentPost
	result := db.Where("id = ?", p.ID).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, result.Error
	}

	p.CreatedAt = existing.CreatedAt
	if result := db.Save(p); result.Error != nil {
		return nil, result.Error
	}

	return p, nil
}

// Delete removes a single post by id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(&models.ContentPost{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// DeleteMany removes all posts whose ids appear in the list and returns the
// number of rows removed.
func DeleteMany(db *gorm.DB, ids []string) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Where("id IN ?", ids).Delete(&models.ContentPost{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

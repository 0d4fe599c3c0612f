// Package ad provides CRUD operations and click tracking for sponsored ads.
package ad

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/uniuri"
)

var (
	// ErrAdNotFound is returned when an ad id has no matching row.
	ErrAdNotFound = errors.New("sponsored ad not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all sponsored ads, newest first.
func GetAll(db *gorm.DB) ([]models.SponsoredAd, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var ads []models.SponsoredAd
	if result := db.Order("created_at DESC").Find(&ads); result.Error != nil {
		return nil, result.Error
	}

	return ads, nil
}

// Create persists a new ad. The click counter always starts at zero.
func Create(db *gorm.DB, a *models.SponsoredAd) (*models.SponsoredAd, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	a.ID = uniuri.New()
	a.Clicks = 0

	if result := db.Create(a); result.Error != nil {
		return nil, result.Error
	}

	return a, nil
}

// Update saves changes to an existing ad. The click counter is never
// written from a payload, it keeps its stored value.
func Update(db *gorm.DB, a *models.SponsoredAd) (*models.SponsoredAd, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.SponsoredAd
	result := db.Where("id = ?", a.ID).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAdNotFound
		}
		return nil, result.Error
	}

	a.CreatedAt = existing.CreatedAt
	a.Clicks = existing.Clicks

	if result := db.Save(a); result.Error != nil {
		return nil, result.Error
	}

	return a, nil
}

// Delete removes an ad by id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(&models.SponsoredAd{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdNotFound
	}

	return nil
}

// TrackClick increments the monotonic click counter for an ad.
func TrackClick(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.SponsoredAd{}).
		Where("id = ?", id).
		UpdateColumn("clicks", gorm.Expr("clicks + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdNotFound
	}

	return nil
}

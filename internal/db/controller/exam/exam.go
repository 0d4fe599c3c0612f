// Package exam provides CRUD operations for upcoming exams.
package exam

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/uniuri"
)

var (
	// ErrExamNotFound is returned when an exam id has no matching row.
	ErrExamNotFound = errors.New("upcoming exam not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all upcoming exams ordered by deadline.
func GetAll(db *gorm.DB) ([]models.UpcomingExam, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var exams []models.UpcomingExam
	if result := db.Order("deadline ASC").Find(&exams); result.Error != nil {
		return nil, result.Error
	}

	return exams, nil
}

// Create persists a new upcoming exam.
func Create(db *gorm.DB, e *models.UpcomingExam) (*models.UpcomingExam, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	e.ID = uniuri.New()
	if result := db.Create(e); result.Error != nil {
		return nil, result.Error
	}

	return e, nil
}

// Update saves changes to an existing exam.
func Update(db *gorm.DB, e *models.UpcomingExam) (*models.UpcomingExam, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.UpcomingExam
	result := db.Where("id = ?", e.ID).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, result.Error
	}

	e.CreatedAt = existing.CreatedAt
	if result := db.Save(e); result.Error != nil {
		return nil, result.Error
	}

	return e, nil
}

// Delete removes an exam by id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(&models.UpcomingExam{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExamNotFound
	}

	return nil
}

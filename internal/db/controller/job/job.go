// Package job provides CRUD operations for job listings.
package job

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/uniuri"
)

var (
	// ErrJobNotFound is returned when a job id has no matching row.
	ErrJobNotFound = errors.New("job not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all jobs, newest first, with affiliate lists normalized.
func GetAll(db *gorm.DB) ([]models.Job, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var jobs []models.Job
	if result := db.Order("created_at DESC").Find(&jobs); result.Error != nil {
		return nil, result.Error
	}

	for i := range jobs {
		jobs[i].DecodeAffiliates()
	}

	return jobs, nil
}

// Get retrieves a job by id.
func Get(db *gorm.DB, id string) (*models.Job, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var j models.Job
	result := db.Where("id = ?", id).First(&j)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, result.Error
	}

	j.DecodeAffiliates()

	return &j, nil
}

// Create persists a new job. The id is generated here; the caller's struct
// is updated in place and re-read from the store so the returned row is the
// authoritative post-write state.
func Create(db *gorm.DB, j *models.Job) (*models.Job, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	j.ID = uniuri.New()
	j.DecodeAffiliates()

	if result := db.Create(j); result.Error != nil {
		return nil, result.Error
	}

	return Get(db, j.ID)
}

// Update saves changes to an existing job.
func Update(db *gorm.DB, j *models.Job) (*models.Job, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.Job
	result := db.Where("id = ?", j.ID).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, result.Error
	}

	j.CreatedAt = existing.CreatedAt
	j.DecodeAffiliates()

	if result := db.Save(j); result.Error != nil {
		return nil, result.Error
	}

	return Get(db, j.ID)
}

// Delete removes a single job by id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// DeleteMany removes all jobs whose ids appear in the list and returns the
// number of rows removed. A zero count is not an error on the bulk path.
func DeleteMany(db *gorm.DB, ids []string) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Where("id IN ?", ids).Delete(&models.Job{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

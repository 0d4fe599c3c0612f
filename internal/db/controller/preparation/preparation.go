// Package preparation provides CRUD operations for preparation books and courses.
package preparation

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/uniuri"
)

var (
	// ErrBookNotFound is returned when a book id has no matching row.
	ErrBookNotFound = errors.New("preparation book not found")
	// ErrCourseNotFound is returned when a course id has no matching row.
	ErrCourseNotFound = errors.New("preparation course not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAllBooks retrieves all preparation books ordered by title.
func GetAllBooks(db *gorm.DB) ([]models.PreparationBook, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var books []models.PreparationBook
	if result := db.Order("title ASC").Find(&books); result.Error != nil {
		return nil, result.Error
	}

	return books, nil
}

// CreateBook persists a new preparation book.
func CreateBook(db *gorm.DB, b *models.PreparationBook) (*models.PreparationBook, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	b.ID = uniuri.New()
	if result := db.Create(b); result.Error != nil {
		return nil, result.Error
	}

	return b, nil
}

// UpdateBook saves changes to an existing book.
func UpdateBook(db *gorm.DB, b *models.PreparationBook) (*models.PreparationBook, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.PreparationBook
	result := db.Where("id = ?", b.ID).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, result.Error
	}

	b.CreatedAt = existing.CreatedAt
	if result := db.Save(b); result.Error != nil {
		return nil, result.Error
	}

	return b, nil
}

// DeleteBook removes a book by id.
func DeleteBook(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(&models.PreparationBook{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookNotFound
	}

	return nil
}

// GetAllCourses retrieves all preparation courses ordered by title.
func GetAllCourses(db *gorm.DB) ([]models.PreparationCourse, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var courses []models.PreparationCourse
	if result := db.Order("title ASC").Find(&courses); result.Error != nil {
		return nil, result.Error
	}

	return courses, nil
}

// CreateCourse persists a new preparation course.
func CreateCourse(db *gorm.DB, c *models.PreparationCourse) (*models.PreparationCourse, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	c.ID = uniuri.New()
	if result := db.Create(c); result.Error != nil {
		return nil, result.Error
	}

	return c, nil
}

// UpdateCourse saves changes to an existing course.
func UpdateCourse(db *gorm.DB, c *models.PreparationCourse) (*models.PreparationCourse, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.PreparationCourse
	result := db.Where("id = ?", c.ID).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, result.Error
	}

	c.CreatedAt = existing.CreatedAt
	if result := db.Save(c); result.Error != nil {
		return nil, result.Error
	}

	return c, nil
}

// DeleteCourse removes a course by id.
func DeleteCourse(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(&models.PreparationCourse{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

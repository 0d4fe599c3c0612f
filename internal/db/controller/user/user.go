// Package user provides operations for admin user accounts.
package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/uniuri"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Count returns the number of admin accounts.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	if result := db.Model(&models.User{}).Count(&count); result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// Create persists a new admin account. The password must already be hashed.
func Create(db *gorm.DB, u *models.User) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	u.ID = uniuri.New()
	if result := db.Create(u); result.Error != nil {
		return nil, result.Error
	}

	return u, nil
}

// GetByID retrieves a user by id.
func GetByID(db *gorm.DB, id string) (*models.User, error) {
	return getBy(db, "id = ?", id)
}

// GetByUsername retrieves a user by username.
func GetByUsername(db *gorm.DB, username string) (*models.User, error) {
	return getBy(db, "username = ?", username)
}

// GetByEmail retrieves a user by email.
func GetByEmail(db *gorm.DB, email string) (*models.User, error) {
	return getBy(db, "email = ?", email)
}

func getBy(db *gorm.DB, query string, arg string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User
	result := db.Where(query, arg).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}

	return &u, nil
}

// Update saves changes to an existing user.
func Update(db *gorm.DB, u *models.User) error {
	if db == nil {
		return ErrDBNil
	}

	if result := db.Save(u); result.Error != nil {
		return result.Error
	}

	return nil
}

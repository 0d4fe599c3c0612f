// Package subscriber provides operations for newsletter subscribers.
package subscriber

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/uniuri"
)

var (
	// ErrSubscriberNotFound is returned when a subscriber id has no matching row.
	ErrSubscriberNotFound = errors.New("subscriber not found")
	// ErrAlreadySubscribed is returned when the email is already registered.
	ErrAlreadySubscribed = errors.New("email is already subscribed")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetAll retrieves all subscribers, newest first.
func GetAll(db *gorm.DB) ([]models.Subscriber, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var subs []models.Subscriber
	if result := db.Order("subscription_date DESC").Find(&subs); result.Error != nil {
		return nil, result.Error
	}

	return subs, nil
}

// Create adds a subscriber. A duplicate email is a conflict.
func Create(db *gorm.DB, email string) (*models.Subscriber, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.Subscriber
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		return nil, ErrAlreadySubscribed
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	sub := &models.Subscriber{
		ID:               uniuri.New(),
		Email:            email,
		Status:           models.StatusActive,
		SubscriptionDate: time.Now().UTC(),
	}

	if result := db.Create(sub); result.Error != nil {
		return nil, result.Error
	}

	return sub, nil
}

// Delete removes a subscriber by id.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("id = ?", id).Delete(&models.Subscriber{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriberNotFound
	}

	return nil
}

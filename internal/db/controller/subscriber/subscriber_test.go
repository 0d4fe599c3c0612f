package subscriber

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Subscriber{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, "reader@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "reader@example.com", created.Email)
	assert.False(t, created.SubscriptionDate.IsZero())
}

func TestCreateDuplicate(t *testing.T) {
	db := setupTestDB(t)

	_, err := Create(db, "reader@example.com")
	require.NoError(t, err)

	_, err = Create(db, "reader@example.com")
	assert.ErrorIs(t, err, ErrAlreadySubscribed)

	// the failed signup must not leave a second row behind
	var count int64
	require.NoError(t, db.Model(&models.Subscriber{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, "reader@example.com")
	require.NoError(t, err)

	require.NoError(t, Delete(db, created.ID))
	assert.ErrorIs(t, Delete(db, created.ID), ErrSubscriberNotFound)
}

func TestGetAll(t *testing.T) {
	db := setupTestDB(t)

	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := Create(db, email)
		require.NoError(t, err)
	}

	all, err := GetAll(db)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

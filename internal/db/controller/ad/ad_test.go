package ad

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

	err = db.AutoMigrate(&models.SponsoredAd{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func newAd() *models.SponsoredAd {
	return &models.SponsoredAd{
		ImageURL:       "https://example.com/ad.png",
		DestinationURL: "https://example.com",
		Placement:      "sidebar",
	}
}

func TestCreateForcesZeroClicks(t *testing.T) {
	db := setupTestDB(t)

	a := newAd()
	a.Clicks = 99

	created, err := Create(db, a)
	require.NoError(t, err)
	assert.Equal(t, int64(0), created.Clicks)
}

func TestTrackClick(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, newAd())
	require.NoError(t, err)

	require.NoError(t, TrackClick(db, created.ID))
	require.NoError(t, TrackClick(db, created.ID))

	var got models.SponsoredAd
	require.NoError(t, db.First(&got, "id = ?", created.ID).Error)
	assert.Equal(t, int64(2), got.Clicks)
}

func TestTrackClickNotFound(t *testing.T) {
	db := setupTestDB(t)

	assert.ErrorIs(t, TrackClick(db, "missing"), ErrAdNotFound)
}

func TestUpdatePreservesClicks(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, newAd())
	require.NoError(t, err)
	require.NoError(t, TrackClick(db, created.ID))

	upd := newAd()
	upd.ID = created.ID
	upd.Placement = "header"

	updated, err := Update(db, upd)
	require.NoError(t, err)
	assert.Equal(t, "header", updated.Placement)
	assert.Equal(t, int64(1), updated.Clicks)
}

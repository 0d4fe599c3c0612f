package settings

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/db/controller/setting"
	"github.com/jobvista/jobvista/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Setting{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestSiteRoundTrip(t *testing.T) {
	repo := New(setupTestDB(t))

	in := Site{
		SiteTitle:       "JobVista",
		Tagline:         "find your posting",
		MetaDescription: "jobs and exam notices",
		MetaKeywords:    []string{"jobs", "exams"},
		ContactEmail:    "hello@example.com",
	}
	require.NoError(t, repo.PutSite(in))

	assert.Equal(t, in, repo.Site())
}

func TestMissingCategoryIsZeroValue(t *testing.T) {
	repo := New(setupTestDB(t))

	assert.Equal(t, Theme{}, repo.Theme())
	assert.Equal(t, Security{}, repo.Security())
}

func TestCorruptRowFallsBackToZeroValue(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	_, err := setting.Set(db, NameTheme, datatypes.JSON(`"not an object`))
	require.NoError(t, err)

	assert.Equal(t, Theme{}, repo.Theme())
}

func TestPublicMap(t *testing.T) {
	db := setupTestDB(t)
	repo := New(db)

	require.NoError(t, repo.PutAds(Ads{Enabled: true}))

	_, err := setting.Set(db, "brokenSettings", datatypes.JSON(`{broken`))
	require.NoError(t, err)

	out := repo.PublicMap()

	ads, ok := out[NameAds].(map[string]interface{})
	require.True(t, ok, "ads settings should decode to a map")
	assert.Equal(t, true, ads["enabled"])

	// unparseable rows surface as empty lists, never as missing keys
	assert.Equal(t, []interface{}{}, out["brokenSettings"])
}

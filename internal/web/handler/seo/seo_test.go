package seo

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	"github.com/jobvista/jobvista/internal/db/models"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "Bank  Clerk – 2024!", want: "bank-clerk-2024"},
		{in: "Station Master", want: "station-master"},
		{in: "SSC CGL (Tier 1)", want: "ssc-cgl-tier-1"},
		{in: "  Leading and trailing  ", want: "leading-and-trailing"},
		{in: "already-hyphenated title", want: "already-hyphenated-title"},
		{in: "!!!", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	err = db.AutoMigrate(&models.Job{}, &models.ContentPost{})
	require.NoError(t, err, "failed to migrate models")

	app := fiber.New()

	cfg := &config.Config{
		Webserver: config.Webserver{
			URL:  "https://jobvista.example.com/",
			Port: 3000,
		},
	}

	var s Service
	require.NoError(t, s.Init(app, cfg, db))

	return app, db
}

func get(t *testing.T, app *fiber.App, target string) string {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(raw)
}

func TestRobots(t *testing.T) {
	app, _ := setupApp(t)

	body := get(t, app, "/robots.txt")

	assert.Contains(t, body, "User-agent: *")
	assert.Contains(t, body, "Disallow: /admin")
	assert.Contains(t, body, "Disallow: /api")
	assert.Contains(t, body, "Sitemap: https://jobvista.example.com/sitemap.xml")
}

func TestSitemapCensus(t *testing.T) {
	app, db := setupApp(t)

	jobs := []models.Job{
		{ID: "j1", Title: "Bank  Clerk – 2024!", Status: models.JobStatusActive},
		{ID: "j2", Title: "Old Posting", Status: models.JobStatusExpired},
	}
	for i := range jobs {
		require.NoError(t, db.Create(&jobs[i]).Error)
	}

	posts := []models.ContentPost{
		{ID: "p1", Title: "Exam Calendar 2026", Status: models.PostStatusPublished, Type: models.PostTypePosts},
		{ID: "p2", Title: "Draft Post", Status: models.PostStatusDraft, Type: models.PostTypePosts},
		{ID: "p3", Title: "Result Notice", Status: models.PostStatusPublished, Type: models.PostTypeResults},
	}
	for i := range posts {
		require.NoError(t, db.Create(&posts[i]).Error)
	}

	body := get(t, app, "/sitemap.xml")

	// static pages
	assert.Contains(t, body, "<loc>https://jobvista.example.com/</loc>")
	assert.Contains(t, body, "<loc>https://jobvista.example.com/jobs</loc>")

	// only the active job, slugified
	assert.Contains(t, body, "<loc>https://jobvista.example.com/jobs/bank-clerk-2024</loc>")
	assert.NotContains(t, body, "old-posting")

	// only published blog posts
	assert.Contains(t, body, "<loc>https://jobvista.example.com/posts/exam-calendar-2026</loc>")
	assert.NotContains(t, body, "draft-post")
	assert.NotContains(t, body, "result-notice")

	// one <url> per static page + 1 job + 1 post
	assert.Equal(t, len(staticPages)+2, strings.Count(body, "<url>"))
}

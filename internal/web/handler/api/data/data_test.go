package data

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	jobctl "github.com/jobvista/jobvista/internal/db/controller/job"
	quicklinkctl "github.com/jobvista/jobvista/internal/db/controller/quicklink"
	subctl "github.com/jobvista/jobvista/internal/db/controller/subscriber"
	"github.com/jobvista/jobvista/internal/db/models"
	websess "github.com/jobvista/jobvista/internal/web/session"
)

// testStorage is a minimal in-memory implementation of storage.Storage for tests.
type testStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ storage.Storage = (*testStorage)(nil)

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.data[key]
	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		s.data = make(map[string][]byte)
	}

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *testStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *testStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

func (s *testStorage) Close() error { return nil }

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	websess.Init(&testStorage{data: make(map[string][]byte)})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	err = db.AutoMigrate(
		&models.Setting{},
		&models.Job{},
		&models.ContentPost{},
		&models.BreakingNews{},
		&models.QuickLink{},
		&models.UpcomingExam{},
		&models.PreparationBook{},
		&models.PreparationCourse{},
		&models.SponsoredAd{},
		&models.Subscriber{},
		&models.ContactSubmission{},
		&models.ActivityLog{},
		&models.EmailNotification{},
		&models.CustomEmail{},
		&models.EmailTemplate{},
	)
	require.NoError(t, err, "failed to migrate models")

	app := fiber.New()

	cfg := &config.Config{
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Minute},
		},
	}

	var s Service
	require.NoError(t, s.Init(app, cfg, db))

	return app, db
}

func fetch(t *testing.T, app *fiber.App, sessionID string) map[string]json.RawMessage {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, Path, nil)
	if sessionID != "" {
		req.Header.Set(fiber.HeaderCookie, websess.CookieName+"="+sessionID)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &out))

	return out
}

func seedContent(t *testing.T, db *gorm.DB) {
	t.Helper()

	_, err := jobctl.Create(db, &models.Job{
		Title:         "Station Master",
		Department:    "Railways",
		Category:      "government",
		Description:   "desc",
		Qualification: "graduate",
		Vacancies:     5,
		PostedDate:    "2026-01-10",
		LastDate:      "2026-02-10",
		ApplyLink:     "https://example.com/apply",
		Status:        models.JobStatusActive,
	})
	require.NoError(t, err)

	_, err = quicklinkctl.Create(db, &models.QuickLink{Title: "Results Portal", URL: "https://example.com"})
	require.NoError(t, err)

	_, err = subctl.Create(db, "reader@example.com")
	require.NoError(t, err)
}

// expectedKeys is every field of the aggregated payload. The shape must be
// identical for admin and anonymous callers.
var expectedKeys = []string{
	"settings", "jobs", "quickLinks", "posts", "breakingNews", "sponsoredAds",
	"preparationCourses", "preparationBooks", "upcomingExams",
	"subscribers", "activityLogs", "contacts",
	"emailNotifications", "customEmails", "emailTemplates",
}

func TestShapeAlwaysComplete(t *testing.T) {
	app, db := setupApp(t)
	seedContent(t, db)

	out := fetch(t, app, "")
	for _, key := range expectedKeys {
		assert.Contains(t, out, key)
	}
}

func TestAnonymousGetsEmptyGatedFields(t *testing.T) {
	app, db := setupApp(t)
	seedContent(t, db)

	out := fetch(t, app, "")

	var jobs []models.Job
	require.NoError(t, json.Unmarshal(out["jobs"], &jobs))
	assert.Len(t, jobs, 1, "public content is visible without a session")

	var subs []models.Subscriber
	require.NoError(t, json.Unmarshal(out["subscribers"], &subs))
	assert.Empty(t, subs, "gated content is present but empty")
}

func TestAdminGetsGatedFields(t *testing.T) {
	app, db := setupApp(t)
	seedContent(t, db)

	sessionID, err := websess.GenerateSessionID()
	require.NoError(t, err)

	admin := &websess.Data{UserID: "u1", Username: "admin", IsAdmin: true}
	require.NoError(t, admin.Write(sessionID, time.Minute))

	out := fetch(t, app, sessionID)

	var subs []models.Subscriber
	require.NoError(t, json.Unmarshal(out["subscribers"], &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, "reader@example.com", subs[0].Email)
}

package job

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
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

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	err = db.AutoMigrate(&models.Job{}, &models.ActivityLog{})
	require.NoError(t, err, "failed to migrate models")

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Minute},
		},
	}
}

// setupApp wires the handler into a fresh app with an in-memory session
// store and returns the cookie of a logged-in admin session.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
	t.Helper()

	websess.Init(&testStorage{data: make(map[string][]byte)})

	app := fiber.New()
	db := newTestDB(t)

	var s Service
	require.NoError(t, s.Init(app, newTestConfig(), db))

	sessionID, err := websess.GenerateSessionID()
	require.NoError(t, err)

	data := &websess.Data{UserID: "u1", Username: "admin", IsAdmin: true}
	require.NoError(t, data.Write(sessionID, time.Minute))

	return app, db, sessionID
}

const validJobBody = `{
	"title": "Station Master",
	"department": "Railways",
	"category": "government",
	"description": "desc",
	"qualification": "graduate",
	"vacancies": 12,
	"postedDate": "2026-01-10",
	"lastDate": "2026-02-10",
	"applyLink": "https://example.com/apply"
}`

func doJSON(t *testing.T, app *fiber.App, method, target, body, sessionID string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if sessionID != "" {
		req.Header.Set(fiber.HeaderCookie, websess.CookieName+"="+sessionID)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(raw)
}

func TestCreateRequiresAuth(t *testing.T) {
	app, _, _ := setupApp(t)

	status, _ := doJSON(t, app, fiber.MethodPost, Path, validJobBody, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestCreateBlockedForDemoSession(t *testing.T) {
	app, _, _ := setupApp(t)

	sessionID, err := websess.GenerateSessionID()
	require.NoError(t, err)

	demo := &websess.Data{UserID: "demo", Username: "demo", IsAdmin: true, IsDemo: true}
	require.NoError(t, demo.Write(sessionID, time.Minute))

	status, body := doJSON(t, app, fiber.MethodPost, Path, validJobBody, sessionID)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Contains(t, body, "read-only")
}

func TestCreateValidationNamesEachMissingField(t *testing.T) {
	app, _, sessionID := setupApp(t)

	fields := []string{
		"title", "department", "category", "description",
		"qualification", "vacancies", "postedDate", "lastDate", "applyLink",
	}

	for _, field := range fields {
		t.Run(field, func(t *testing.T) {
			var payload map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(validJobBody), &payload))
			delete(payload, field)

			body, err := json.Marshal(payload)
			require.NoError(t, err)

			status, respBody := doJSON(t, app, fiber.MethodPost, Path, string(body), sessionID)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Contains(t, respBody, field+" is required")
		})
	}
}

func TestCreateRejectsMalformedDate(t *testing.T) {
	app, _, sessionID := setupApp(t)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(validJobBody), &payload))
	payload["postedDate"] = "tenth of january"

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	status, respBody := doJSON(t, app, fiber.MethodPost, Path, string(body), sessionID)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, respBody, "postedDate is invalid")
}

func TestCreateSuccess(t *testing.T) {
	app, db, sessionID := setupApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, Path, validJobBody, sessionID)
	require.Equal(t, fiber.StatusCreated, status)

	var created models.Job
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.JobStatusActive, created.Status)
	assert.Equal(t, "[]", string(created.AffiliateCourses))

	// the mutation leaves an audit entry behind
	var count int64
	require.NoError(t, db.Model(&models.ActivityLog{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateNotFoundNamesID(t *testing.T) {
	app, _, sessionID := setupApp(t)

	status, body := doJSON(t, app, fiber.MethodPut, Path+"/ghost42", validJobBody, sessionID)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, "ghost42")
}

func TestDeleteReturnsNoContent(t *testing.T) {
	app, _, sessionID := setupApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, Path, validJobBody, sessionID)
	require.Equal(t, fiber.StatusCreated, status)

	var created models.Job
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	status, _ = doJSON(t, app, fiber.MethodDelete, Path+"/"+created.ID, "", sessionID)
	assert.Equal(t, fiber.StatusNoContent, status)
}

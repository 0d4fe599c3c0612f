package subscriber

import (
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

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	websess.Init(&testStorage{data: make(map[string][]byte)})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	err = db.AutoMigrate(&models.Subscriber{}, &models.ActivityLog{})
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

func subscribe(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, Path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(raw)
}

func TestSubscribeIsPublic(t *testing.T) {
	app, _ := setupApp(t)

	status, body := subscribe(t, app, `{"email":"reader@example.com"}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Contains(t, body, "reader@example.com")
}

func TestSubscribeDuplicateConflict(t *testing.T) {
	app, db := setupApp(t)

	status, _ := subscribe(t, app, `{"email":"reader@example.com"}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, body := subscribe(t, app, `{"email":"reader@example.com"}`)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Contains(t, body, "already subscribed")

	var count int64
	require.NoError(t, db.Model(&models.Subscriber{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubscribeValidation(t *testing.T) {
	app, _ := setupApp(t)

	testCases := []struct {
		name string
		body string
	}{
		{name: "missing email", body: `{}`},
		{name: "malformed email", body: `{"email":"not-an-address"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := subscribe(t, app, tc.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Contains(t, body, "email")
		})
	}
}

func TestDeleteRequiresAuth(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(fiber.MethodDelete, Path+"/some-id", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

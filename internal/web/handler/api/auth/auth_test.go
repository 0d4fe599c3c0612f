package auth

import (
	"io"
	"net/http"
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

	err = db.AutoMigrate(&models.User{}, &models.ActivityLog{})
	require.NoError(t, err, "failed to migrate models")

	app := fiber.New()

	cfg := &config.Config{
		DevMode: true,
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Minute},
		},
		Auth: config.Auth{
			DemoEnabled:  false,
			DemoUsername: "demo",
			DemoPassword: "demo",
		},
	}

	var s Service
	require.NoError(t, s.Init(app, cfg, db))

	return app, db
}

func do(t *testing.T, app *fiber.App, method, target, body, cookie string) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if cookie != "" {
		req.Header.Set(fiber.HeaderCookie, websess.CookieName+"="+cookie)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	return resp, string(raw)
}

func sessionCookie(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == websess.CookieName && c.MaxAge >= 0 {
			return c.Value
		}
	}

	return ""
}

const signupBody = `{"username":"admin","email":"admin@example.com","password":"supersecret"}`

func TestSignupOnlyOnce(t *testing.T) {
	app, db := setupApp(t)

	resp, body := do(t, app, fiber.MethodPost, Path+"/signup", signupBody, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Contains(t, body, "admin")

	// a second signup is forbidden once an admin exists
	resp, body = do(t, app, fiber.MethodPost, Path+"/signup",
		`{"username":"intruder","email":"x@example.com","password":"supersecret"}`, "")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Contains(t, body, "already exists")

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSignupValidation(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := do(t, app, fiber.MethodPost, Path+"/signup",
		`{"username":"admin","email":"admin@example.com","password":"short"}`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "password")
}

func TestLoginAndStatus(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := do(t, app, fiber.MethodPost, Path+"/signup", signupBody, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := do(t, app, fiber.MethodPost, Path+"/login",
		`{"username":"admin","password":"supersecret"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"isAdmin":true`)

	cookie := sessionCookie(resp)
	require.NotEmpty(t, cookie, "login must set the session cookie")

	resp, body = do(t, app, fiber.MethodGet, Path+"/status", "", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"username":"admin"`)
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := do(t, app, fiber.MethodPost, Path+"/signup", signupBody, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = do(t, app, fiber.MethodPost, Path+"/login",
		`{"username":"admin","password":"wrong"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestStatusWithoutSession(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := do(t, app, fiber.MethodGet, Path+"/status", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDemoLoginDisabled(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := do(t, app, fiber.MethodPost, Path+"/demo-login",
		`{"username":"demo","password":"demo"}`, "")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestLogoutDestroysSession(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := do(t, app, fiber.MethodPost, Path+"/signup", signupBody, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = do(t, app, fiber.MethodPost, Path+"/login",
		`{"username":"admin","password":"supersecret"}`, "")
	cookie := sessionCookie(resp)
	require.NotEmpty(t, cookie)

	resp, _ = do(t, app, fiber.MethodPost, Path+"/logout", "", cookie)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, app, fiber.MethodGet, Path+"/status", "", cookie)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestResetPasswordWithoutResetState(t *testing.T) {
	app, _ := setupApp(t)

	// no session at all
	resp, _ := do(t, app, fiber.MethodPost, Path+"/reset-password",
		`{"password":"newpassword1"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// a logged-in session without the reset state is rejected too
	resp, _ = do(t, app, fiber.MethodPost, Path+"/signup", signupBody, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = do(t, app, fiber.MethodPost, Path+"/login",
		`{"username":"admin","password":"supersecret"}`, "")
	cookie := sessionCookie(resp)
	require.NotEmpty(t, cookie)

	resp, _ = do(t, app, fiber.MethodPost, Path+"/reset-password",
		`{"password":"newpassword1"}`, cookie)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestForgotPasswordFlow(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := do(t, app, fiber.MethodPost, Path+"/signup", signupBody, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// unknown address reports not-found
	resp, _ = do(t, app, fiber.MethodPost, Path+"/forgot-password",
		`{"email":"nobody@example.com"}`, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// known address opens the reset state
	resp, _ = do(t, app, fiber.MethodPost, Path+"/forgot-password",
		`{"email":"admin@example.com"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotEmpty(t, cookie, "forgot-password must open a reset session")

	resp, _ = do(t, app, fiber.MethodPost, Path+"/reset-password",
		`{"password":"newpassword1"}`, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// old password no longer works, the new one does
	resp, _ = do(t, app, fiber.MethodPost, Path+"/login",
		`{"username":"admin","password":"supersecret"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = do(t, app, fiber.MethodPost, Path+"/login",
		`{"username":"admin","password":"newpassword1"}`, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUpdateCredentials(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := do(t, app, fiber.MethodPost, Path+"/signup", signupBody, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = do(t, app, fiber.MethodPost, Path+"/login",
		`{"username":"admin","password":"supersecret"}`, "")
	cookie := sessionCookie(resp)
	require.NotEmpty(t, cookie)

	// wrong current password is rejected
	resp, _ = do(t, app, fiber.MethodPut, Path+"/credentials",
		`{"currentPassword":"wrong","newPassword":"newpassword1"}`, cookie)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, body := do(t, app, fiber.MethodPut, Path+"/credentials",
		`{"username":"root","currentPassword":"supersecret","newPassword":"newpassword1"}`, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"username":"root"`)

	resp, _ = do(t, app, fiber.MethodPost, Path+"/login",
		`{"username":"root","password":"newpassword1"}`, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

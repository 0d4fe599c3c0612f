// Package session maps opaque session cookies to a small JSON payload kept
// in a storage backend. There is no server-side session table beyond that
// storage; every request re-reads the payload.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage"
)

// CookieName is the single HTTP-only cookie carrying the session id.
const CookieName = "session"

// Store is the global session store instance.
var Store *session.Store

// Data is the session payload. ResetUserID carries the pre-auth password
// reset state between the forgot-password and reset-password steps.
type Data struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	IsAdmin     bool   `json:"isAdmin"`
	IsDemo      bool   `json:"isDemo"`
	ResetUserID string `json:"resetUserId,omitempty"`
}

// Write writes the session data for the given session ID with an expiration duration.
func (s *Data) Write(sessionID string, exp time.Duration) error {
	out, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return Store.Storage.Set(sessionID, out, exp)
}

// Read reads the session data for the given session ID.
func (s *Data) Read(sessionID string) error {
	byteData, err := Store.Storage.Get(sessionID)
	if err != nil {
		return err
	}

	return json.Unmarshal(byteData, s)
}

// Destroy removes the session payload for the given session ID.
func Destroy(sessionID string) error {
	return Store.Storage.Delete(sessionID)
}

// Init initializes the session store with the provided storage backend.
func Init(storage storage.Storage) {
	if storage == nil {
		panic("storage is nil")
	}

	Store = session.New(session.Config{
		Storage: storage,
	})
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

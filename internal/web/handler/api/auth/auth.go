// Package auth implements the admin account lifecycle: one-time signup,
// login (real or demo), logout, session status, the forgot/reset password
// pair and credential updates.
package auth

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	"github.com/jobvista/jobvista/internal/db/controller/activity"
	userctl "github.com/jobvista/jobvista/internal/db/controller/user"
	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/web/handler"
	authmw "github.com/jobvista/jobvista/internal/web/middleware/auth"
	"github.com/jobvista/jobvista/internal/web/session"
)

const (
	// Path is the base path of the auth routes.
	Path = handler.APIRoot + "/auth"

	// DemoUserID is the sentinel identity of demo sessions. It never
	// exists as a database row.
	DemoUserID = "demo"
)

// Service is the auth handler.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers the auth routes. Everything here is public by design;
// the operations that need an authenticated caller check the session
// themselves.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.validator = handler.NewValidator()

	app.Post(Path+"/signup", s.Signup)
	app.Post(Path+"/login", s.Login)
	app.Post(Path+"/demo-login", s.DemoLogin)
	app.Post(Path+"/logout", s.Logout)
	app.Get(Path+"/status", s.Status)
	app.Post(Path+"/forgot-password", s.ForgotPassword)
	app.Post(Path+"/reset-password", s.ResetPassword)
	app.Put(Path+"/credentials", authmw.RequireAdmin, authmw.BlockDemo, s.UpdateCredentials)

	return nil
}

// userInfo is the display identity returned on login and status checks.
type userInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
	IsDemo   bool   `json:"isDemo"`
}

type signupPayload struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Signup handles POST /api/auth/signup. Only the very first admin can be
// created this way; the guard is a count check, so concurrent first
// signups can race. A single-operator deployment makes that acceptable.
func (s *Service) Signup(c *fiber.Ctx) error {
	var p signupPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	count, err := userctl.Count(s.db)
	if err != nil {
		return err
	}

	if count > 0 {
		return fiber.NewError(fiber.StatusForbidden, "admin account already exists")
	}

	created, err := userctl.Create(s.db, &models.User{
		Username: p.Username,
		Email:    p.Email,
		Password: models.HashPassword(p.Password),
	})
	if err != nil {
		return err
	}

	activity.Record(s.db, "Admin Account Created", created.Username)

	return c.Status(fiber.StatusCreated).JSON(userInfo{
		ID:       created.ID,
		Username: created.Username,
		Email:    created.Email,
		IsAdmin:  true,
	})
}

type loginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/auth/login.
func (s *Service) Login(c *fiber.Ctx) error {
	var p loginPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	user, err := userctl.GetByUsername(s.db, p.Username)
	if err != nil || !user.VerifyPassword(p.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid username or password")
	}

	info := userInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  true,
	}

	if err := s.openSession(c, &session.Data{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  true,
	}); err != nil {
		return err
	}

	activity.Record(s.db, "Admin Login", user.Username)

	return c.JSON(info)
}

// DemoLogin handles POST /api/auth/demo-login. The demo identity is a
// fixed sentinel; it gets an admin-looking session whose writes are
// blocked by middleware.
func (s *Service) DemoLogin(c *fiber.Ctx) error {
	if !s.cfg.Auth.DemoEnabled {
		return fiber.NewError(fiber.StatusForbidden, "demo mode is disabled")
	}

	var p loginPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if p.Username != s.cfg.Auth.DemoUsername || p.Password != s.cfg.Auth.DemoPassword {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid username or password")
	}

	if err := s.openSession(c, &session.Data{
		UserID:   DemoUserID,
		Username: s.cfg.Auth.DemoUsername,
		IsAdmin:  true,
		IsDemo:   true,
	}); err != nil {
		return err
	}

	activity.Record(s.db, "Demo Login", s.cfg.Auth.DemoUsername)

	return c.JSON(userInfo{
		ID:       DemoUserID,
		Username: s.cfg.Auth.DemoUsername,
		IsAdmin:  true,
		IsDemo:   true,
	})
}

// Logout handles POST /api/auth/logout.
func (s *Service) Logout(c *fiber.Ctx) error {
	sessionID := c.Cookies(session.CookieName)
	if sessionID != "" {
		data := new(session.Data)
		if err := data.Read(sessionID); err == nil && data.Username != "" {
			activity.Record(s.db, "Logout", data.Username)
		}

		if err := session.Destroy(sessionID); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}
	}

	s.clearSessionCookie(c)

	return c.SendStatus(fiber.StatusNoContent)
}

// Status handles GET /api/auth/status. It reports the current session
// identity, or 401 when there is none.
func (s *Service) Status(c *fiber.Ctx) error {
	data, ok := authmw.Current(c)
	if !ok || !data.IsAdmin {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	return c.JSON(userInfo{
		ID:       data.UserID,
		Username: data.Username,
		IsAdmin:  data.IsAdmin,
		IsDemo:   data.IsDemo,
	})
}

type forgotPasswordPayload struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword handles POST /api/auth/forgot-password. A match stores
// the reset state in an anonymous session; a miss reports not-found, so
// callers can learn whether an address is registered. That exposure is
// kept for client compatibility.
func (s *Service) ForgotPassword(c *fiber.Ctx) error {
	var p forgotPasswordPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	user, err := userctl.GetByEmail(s.db, p.Email)
	if err != nil {
		if errors.Is(err, userctl.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("no account registered for %s", p.Email))
		}
		return err
	}

	if err := s.openSession(c, &session.Data{ResetUserID: user.ID}); err != nil {
		return err
	}

	activity.Record(s.db, "Password Reset Requested", user.Username)

	return c.JSON(handler.Message{Message: "password reset allowed"})
}

type resetPasswordPayload struct {
	Password string `json:"password" validate:"required,min=8"`
}

// ResetPassword handles POST /api/auth/reset-password. It requires the
// reset state set by ForgotPassword and destroys the session afterwards
// so the user has to log in again.
func (s *Service) ResetPassword(c *fiber.Ctx) error {
	sessionID := c.Cookies(session.CookieName)
	if sessionID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "no password reset in progress")
	}

	data := new(session.Data)
	if err := data.Read(sessionID); err != nil || data.ResetUserID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "no password reset in progress")
	}

	var p resetPasswordPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	user, err := userctl.GetByID(s.db, data.ResetUserID)
	if err != nil {
		if errors.Is(err, userctl.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("user %s not found", data.ResetUserID))
		}
		return err
	}

	user.Password = models.HashPassword(p.Password)
	if err := userctl.Update(s.db, user); err != nil {
		return err
	}

	if err := session.Destroy(sessionID); err != nil {
		log.Error().Err(err).Msg("failed to delete session")
	}
	s.clearSessionCookie(c)

	activity.Record(s.db, "Password Reset", user.Username)

	return c.JSON(handler.Message{Message: "password updated"})
}

type credentialsPayload struct {
	Username        string `json:"username"`
	Email           string `json:"email" validate:"omitempty,email"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"omitempty,min=8"`
}

// UpdateCredentials handles PUT /api/auth/credentials. The current
// password is always re-verified.
func (s *Service) UpdateCredentials(c *fiber.Ctx) error {
	data, _ := authmw.Current(c)

	var p credentialsPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	user, err := userctl.GetByID(s.db, data.UserID)
	if err != nil {
		if errors.Is(err, userctl.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("user %s not found", data.UserID))
		}
		return err
	}

	if !user.VerifyPassword(p.CurrentPassword) {
		return fiber.NewError(fiber.StatusUnauthorized, "current password is incorrect")
	}

	if p.Username != "" {
		user.Username = p.Username
	}
	if p.Email != "" {
		user.Email = p.Email
	}
	if p.NewPassword != "" {
		user.Password = models.HashPassword(p.NewPassword)
	}

	if err := userctl.Update(s.db, user); err != nil {
		return err
	}

	// keep the session identity in sync with the new username
	data.Username = user.Username
	if sessionID := c.Cookies(session.CookieName); sessionID != "" {
		if err := data.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
			log.Error().Err(err).Msg("failed to refresh session")
		}
	}

	activity.Record(s.db, "Credentials Updated", user.Username)

	return c.JSON(userInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  true,
	})
}

// openSession writes a fresh session payload and sets the cookie.
func (s *Service) openSession(c *fiber.Ctx, data *session.Data) error {
	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")
		return err
	}

	if err := data.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return err
	}

	cookie := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookie.Secure = false
	}

	c.Cookie(cookie)

	return nil
}

func (s *Service) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		MaxAge:   -1,
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// Package activity exposes the audit trail to the admin panel.
package activity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	activityctl "github.com/jobvista/jobvista/internal/db/controller/activity"
	"github.com/jobvista/jobvista/internal/web/handler"
	"github.com/jobvista/jobvista/internal/web/middleware/auth"
)

const (
	// Path is the base path of the activity log.
	Path = handler.APIRoot + "/activity"
)

// Service is the activity log handler.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers the activity log routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	grp := app.Group(Path, auth.RequireAdmin)

	grp.Get("/", s.GetAll)
	grp.Delete("/", auth.BlockDemo, s.Clear)

	return nil
}

// GetAll handles GET /api/activity.
func (s *Service) GetAll(c *fiber.Ctx) error {
	entries, err := activityctl.GetAll(s.db)
	if err != nil {
		return err
	}

	return c.JSON(entries)
}

// Clear handles DELETE /api/activity. The wipe itself leaves one entry
// recording that it happened.
func (s *Service) Clear(c *fiber.Ctx) error {
	if _, err := activityctl.Clear(s.db); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

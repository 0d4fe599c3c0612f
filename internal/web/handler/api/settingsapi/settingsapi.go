// Package settingsapi exposes the typed settings categories over the API.
// Each category is one named row in the settings bag; the payload shape is
// enforced here so arbitrary JSON never reaches the store.
package settingsapi

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	"github.com/jobvista/jobvista/internal/db/controller/activity"
	"github.com/jobvista/jobvista/internal/settings"
	"github.com/jobvista/jobvista/internal/web/handler"
	"github.com/jobvista/jobvista/internal/web/middleware/auth"
)

const (
	// Path is the base path of the settings resource.
	Path = handler.APIRoot + "/settings"
)

// Service is the settings handler.
type Service struct {
	cfg  *config.Config
	db   *gorm.DB
	repo *settings.Repository
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers the settings routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.repo = settings.New(db)

	grp := app.Group(Path, auth.RequireAdmin, auth.BlockDemo)

	grp.Get("/", s.GetAll)
	grp.Put("/:category", s.Put)

	return nil
}

// GetAll handles GET /api/settings. Every category is returned, zero
// values where nothing has been stored yet.
func (s *Service) GetAll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		settings.NameSite:     s.repo.Site(),
		settings.NameTheme:    s.repo.Theme(),
		settings.NameSecurity: s.repo.Security(),
		settings.NameSMTP:     s.repo.SMTP(),
		settings.NameAds:      s.repo.Ads(),
		settings.NameHome:     s.repo.Home(),
	})
}

// Put handles PUT /api/settings/:category. The category name selects the
// schema the payload must satisfy.
func (s *Service) Put(c *fiber.Ctx) error {
	category := c.Params("category")

	var (
		stored interface{}
		err    error
	)

	switch category {
	case settings.NameSite:
		var v settings.Site
		if err = c.BodyParser(&v); err == nil {
			err = s.repo.PutSite(v)
			stored = v
		}
	case settings.NameTheme:
		var v settings.Theme
		if err = c.BodyParser(&v); err == nil {
			err = s.repo.PutTheme(v)
			stored = v
		}
	case settings.NameSecurity:
		var v settings.Security
		if err = c.BodyParser(&v); err == nil {
			err = s.repo.PutSecurity(v)
			stored = v
		}
	case settings.NameSMTP:
		var v settings.SMTP
		if err = c.BodyParser(&v); err == nil {
			err = s.repo.PutSMTP(v)
			stored = v
		}
	case settings.NameAds:
		var v settings.Ads
		if err = c.BodyParser(&v); err == nil {
			err = s.repo.PutAds(v)
			stored = v
		}
	case settings.NameHome:
		var v settings.Home
		if err = c.BodyParser(&v); err == nil {
			err = s.repo.PutHome(v)
			stored = v
		}
	default:
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("settings category %s not found", category))
	}

	if err != nil {
		if stored == nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
		}
		return err
	}

	activity.Record(s.db, "Settings Updated", category)

	return c.JSON(stored)
}

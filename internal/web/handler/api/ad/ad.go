// Package ad implements the sponsored ad REST resource and the public
// click tracking endpoint.
package ad

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	"github.com/jobvista/jobvista/internal/db/controller/activity"
	adctl "github.com/jobvista/jobvista/internal/db/controller/ad"
	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/web/handler"
	"github.com/jobvista/jobvista/internal/web/middleware/auth"
)

const (
	// Path is the base path of the sponsored ad resource.
	Path = handler.APIRoot + "/ads"
)

// Service is the sponsored ad resource handler.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers the ad routes. Click tracking is public, everything else
// is admin-only.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.validator = handler.NewValidator()

	// public click tracking, registered before the guarded group
	app.Post(Path+"/:id/click", s.TrackClick)

	grp := app.Group(Path, auth.RequireAdmin, auth.BlockDemo)
	grp.Post("/", s.Create)
	grp.Put("/:id", s.Update)
	grp.Delete("/:id", s.Delete)

	return nil
}

type adPayload struct {
	ImageURL       string `json:"imageUrl"       validate:"required"`
	DestinationURL string `json:"destinationUrl" validate:"required"`
	Placement      string `json:"placement"`
	Status         string `json:"status"         validate:"omitempty,oneof=active inactive"`
}

func (p *adPayload) toModel() *models.SponsoredAd {
	m := &models.SponsoredAd{
		ImageURL:       p.ImageURL,
		DestinationURL: p.DestinationURL,
		Placement:      p.Placement,
		Status:         p.Status,
	}
	if m.Status == "" {
		m.Status = models.StatusActive
	}

	return m
}

// Create handles POST /api/ads.
func (s *Service) Create(c *fiber.Ctx) error {
	var p adPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	created, err := adctl.Create(s.db, p.toModel())
	if err != nil {
		return err
	}

	activity.Record(s.db, "Sponsored Ad Created", created.Placement)

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update handles PUT /api/ads/:id.
func (s *Service) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var p adPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	m := p.toModel()
	m.ID = id

	updated, err := adctl.Update(s.db, m)
	if err != nil {
		if errors.Is(err, adctl.ErrAdNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("sponsored ad %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Sponsored Ad Updated", updated.Placement)

	return c.JSON(updated)
}

// Delete handles DELETE /api/ads/:id.
func (s *Service) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := adctl.Delete(s.db, id); err != nil {
		if errors.Is(err, adctl.ErrAdNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("sponsored ad %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Sponsored Ad Deleted", id)

	return c.SendStatus(fiber.StatusNoContent)
}

// TrackClick handles POST /api/ads/:id/click. It is the only path that
// moves the click counter, and it only ever moves it up.
func (s *Service) TrackClick(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := adctl.TrackClick(s.db, id); err != nil {
		if errors.Is(err, adctl.ErrAdNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("sponsored ad %s not found", id))
		}
		return err
	}

	return c.JSON(handler.Message{Message: "click recorded"})
}

// Package quicklink implements the quick link REST resource.
package quicklink

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	"github.com/jobvista/jobvista/internal/db/controller/activity"
	linkctl "github.com/jobvista/jobvista/internal/db/controller/quicklink"
	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/web/handler"
	"github.com/jobvista/jobvista/internal/web/middleware/auth"
)

const (
	// Path is the base path of the quick link resource.
	Path = handler.APIRoot + "/quick-links"
)

// Service is the quick link resource handler.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers the quick link routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.validator = handler.NewValidator()

	grp := app.Group(Path, auth.RequireAdmin, auth.BlockDemo)
	grp.Post("/", s.Create)
	grp.Put("/:id", s.Update)
	grp.Delete("/:id", s.Delete)

	return nil
}

type linkPayload struct {
	Title       string `json:"title"  validate:"required"`
	Category    string `json:"category"`
	URL         string `json:"url"    validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (p *linkPayload) toModel() *models.QuickLink {
	m := &models.QuickLink{
		Title:       p.Title,
		Category:    p.Category,
		URL:         p.URL,
		Description: p.Description,
		Status:      p.Status,
	}
	if m.Status == "" {
		m.Status = models.StatusActive
	}

	return m
}

// Create handles POST /api/quick-links.
func (s *Service) Create(c *fiber.Ctx) error {
	var p linkPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	created, err := linkctl.Create(s.db, p.toModel())
	if err != nil {
		return err
	}

	activity.Record(s.db, "Quick Link Created", created.Title)

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update handles PUT /api/quick-links/:id.
func (s *Service) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var p linkPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	m := p.toModel()
	m.ID = id

	updated, err := linkctl.Update(s.db, m)
	if err != nil {
		if errors.Is(err, linkctl.ErrLinkNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("quick link %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Quick Link Updated", updated.Title)

	return c.JSON(updated)
}

// Delete handles DELETE /api/quick-links/:id.
func (s *Service) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := linkctl.Delete(s.db, id); err != nil {
		if errors.Is(err, linkctl.ErrLinkNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("quick link %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Quick Link Deleted", id)

	return c.SendStatus(fiber.StatusNoContent)
}

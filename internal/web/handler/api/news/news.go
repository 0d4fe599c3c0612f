// Package news implements the breaking news REST resource.
package news

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	"github.com/jobvista/jobvista/internal/db/controller/activity"
	newsctl "github.com/jobvista/jobvista/internal/db/controller/news"
	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/web/handler"
	"github.com/jobvista/jobvista/internal/web/middleware/auth"
)

const (
	// Path is the base path of the breaking news resource.
	Path = handler.APIRoot + "/breaking-news"
)

// Service is the breaking news resource handler.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers the breaking news routes.
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

type newsPayload struct {
	Text   string `json:"text"   validate:"required"`
	Link   string `json:"link"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (p *newsPayload) toModel() *models.BreakingNews {
	m := &models.BreakingNews{Text: p.Text, Link: p.Link, Status: p.Status}
	if m.Status == "" {
		m.Status = models.StatusActive
	}

	return m
}

// Create handles POST /api/breaking-news.
func (s *Service) Create(c *fiber.Ctx) error {
	var p newsPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	created, err := newsctl.Create(s.db, p.toModel())
	if err != nil {
		return err
	}

	activity.Record(s.db, "Breaking News Created", created.Text)

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update handles PUT /api/breaking-news/:id.
func (s *Service) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var p newsPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	m := p.toModel()
	m.ID = id

	updated, err := newsctl.Update(s.db, m)
	if err != nil {
		if errors.Is(err, newsctl.ErrNewsNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("breaking news %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Breaking News Updated", updated.Text)

	return c.JSON(updated)
}

// Delete handles DELETE /api/breaking-news/:id.
func (s *Service) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := newsctl.Delete(s.db, id); err != nil {
		if errors.Is(err, newsctl.ErrNewsNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("breaking news %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Breaking News Deleted", id)

	return c.SendStatus(fiber.StatusNoContent)
}

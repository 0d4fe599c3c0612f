// Package contact implements the public contact form and its admin-side
// listing and cleanup.
package contact

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	"github.com/jobvista/jobvista/internal/db/controller/activity"
	contactctl "github.com/jobvista/jobvista/internal/db/controller/contact"
	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/web/handler"
	"github.com/jobvista/jobvista/internal/web/middleware/auth"
)

const (
	// Path is the base path of the contact resource.
	Path = handler.APIRoot + "/contacts"
)

// Service is the contact resource handler.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers the contact routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.validator = handler.NewValidator()

	app.Post(Path, s.Submit)
	app.Delete(Path+"/:id", auth.RequireAdmin, auth.BlockDemo, s.Delete)

	return nil
}

type contactPayload struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// Submit handles the public POST /api/contacts.
func (s *Service) Submit(c *fiber.Ctx) error {
	var p contactPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	created, err := contactctl.Create(s.db, &models.ContactSubmission{
		Name:    p.Name,
		Email:   p.Email,
		Subject: p.Subject,
		Message: p.Message,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Delete handles DELETE /api/contacts/:id.
func (s *Service) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := contactctl.Delete(s.db, id); err != nil {
		if errors.Is(err, contactctl.ErrContactNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("contact submission %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Contact Submission Deleted", id)

	return c.SendStatus(fiber.StatusNoContent)
}

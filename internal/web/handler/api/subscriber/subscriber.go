// Package subscriber implements newsletter subscription. Signup is public,
// removal is admin-only.
package subscriber

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	"github.com/jobvista/jobvista/internal/db/controller/activity"
	subctl "github.com/jobvista/jobvista/internal/db/controller/subscriber"
	"github.com/jobvista/jobvista/internal/web/handler"
	"github.com/jobvista/jobvista/internal/web/middleware/auth"
)

const (
	// Path is the base path of the subscriber resource.
	Path = handler.APIRoot + "/subscribers"
)

// Service is the subscriber resource handler.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers the subscriber routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.validator = handler.NewValidator()

	app.Post(Path, s.Subscribe)
	app.Delete(Path+"/:id", auth.RequireAdmin, auth.BlockDemo, s.Delete)

	return nil
}

type subscribePayload struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe handles the public POST /api/subscribers. A second signup with
// the same address is a conflict.
func (s *Service) Subscribe(c *fiber.Ctx) error {
	var p subscribePayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	created, err := subctl.Create(s.db, p.Email)
	if err != nil {
		if errors.Is(err, subctl.ErrAlreadySubscribed) {
			return fiber.NewError(fiber.StatusConflict, "email is already subscribed")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Delete handles DELETE /api/subscribers/:id.
func (s *Service) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := subctl.Delete(s.db, id); err != nil {
		if errors.Is(err, subctl.ErrSubscriberNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("subscriber %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Subscriber Deleted", id)

	return c.SendStatus(fiber.StatusNoContent)
}

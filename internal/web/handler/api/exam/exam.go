// Package exam implements the upcoming exam REST resource.
package exam

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	"github.com/jobvista/jobvista/internal/db/controller/activity"
	examctl "github.com/jobvista/jobvista/internal/db/controller/exam"
	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/web/handler"
	"github.com/jobvista/jobvista/internal/web/middleware/auth"
)

const (
	// Path is the base path of the upcoming exam resource.
	Path = handler.APIRoot + "/upcoming-exams"
)

// Service is the upcoming exam resource handler.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers the exam routes.
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

type examPayload struct {
	Name             string `json:"name"     validate:"required"`
	Deadline         string `json:"deadline" validate:"required"`
	NotificationLink string `json:"notificationLink"`
}

func (p *examPayload) validate(v *validator.Validate) error {
	if err := v.Struct(p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	if !handler.ValidDate(p.Deadline) {
		return fiber.NewError(fiber.StatusBadRequest, "deadline is invalid")
	}

	return nil
}

func (p *examPayload) toModel() *models.UpcomingExam {
	return &models.UpcomingExam{
		Name:             p.Name,
		Deadline:         p.Deadline,
		NotificationLink: p.NotificationLink,
	}
}

// Create handles POST /api/upcoming-exams.
func (s *Service) Create(c *fiber.Ctx) error {
	var p examPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := p.validate(s.validator); err != nil {
		return err
	}

	created, err := examctl.Create(s.db, p.toModel())
	if err != nil {
		return err
	}

	activity.Record(s.db, "Upcoming Exam Created", created.Name)

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update handles PUT /api/upcoming-exams/:id.
func (s *Service) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var p examPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := p.validate(s.validator); err != nil {
		return err
	}

	m := p.toModel()
	m.ID = id

	updated, err := examctl.Update(s.db, m)
	if err != nil {
		if errors.Is(err, examctl.ErrExamNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("upcoming exam %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Upcoming Exam Updated", updated.Name)

	return c.JSON(updated)
}

// Delete handles DELETE /api/upcoming-exams/:id.
func (s *Service) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := examctl.Delete(s.db, id); err != nil {
		if errors.Is(err, examctl.ErrExamNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("upcoming exam %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Upcoming Exam Deleted", id)

	return c.SendStatus(fiber.StatusNoContent)
}

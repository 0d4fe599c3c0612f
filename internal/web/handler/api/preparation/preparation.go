// Package preparation implements the preparation book and course REST resources.
package preparation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	"github.com/jobvista/jobvista/internal/db/controller/activity"
	prepctl "github.com/jobvista/jobvista/internal/db/controller/preparation"
	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/web/handler"
	"github.com/jobvista/jobvista/internal/web/middleware/auth"
)

const (
	// BooksPath is the base path of the preparation book resource.
	BooksPath = handler.APIRoot + "/preparation-books"
	// CoursesPath is the base path of the preparation course resource.
	CoursesPath = handler.APIRoot + "/preparation-courses"
)

// Service is the preparation resources handler.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers the book and course routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.validator = handler.NewValidator()

	books := app.Group(BooksPath, auth.RequireAdmin, auth.BlockDemo)
	books.Post("/", s.CreateBook)
	books.Put("/:id", s.UpdateBook)
	books.Delete("/:id", s.DeleteBook)

	courses := app.Group(CoursesPath, auth.RequireAdmin, auth.BlockDemo)
	courses.Post("/", s.CreateCourse)
	courses.Put("/:id", s.UpdateCourse)
	courses.Delete("/:id", s.DeleteCourse)

	return nil
}

type bookPayload struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author"`
	URL      string `json:"url"   validate:"required"`
	ImageURL string `json:"imageUrl"`
}

type coursePayload struct {
	Platform string `json:"platform" validate:"required"`
	Title    string `json:"title"    validate:"required"`
	URL      string `json:"url"      validate:"required"`
}

// CreateBook handles POST /api/preparation-books.
func (s *Service) CreateBook(c *fiber.Ctx) error {
	var p bookPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	created, err := prepctl.CreateBook(s.db, &models.PreparationBook{
		Title:    p.Title,
		Author:   p.Author,
		URL:      p.URL,
		ImageURL: p.ImageURL,
	})
	if err != nil {
		return err
	}

	activity.Record(s.db, "Preparation Book Created", created.Title)

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateBook handles PUT /api/preparation-books/:id.
func (s *Service) UpdateBook(c *fiber.Ctx) error {
	id := c.Params("id")

	var p bookPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	updated, err := prepctl.UpdateBook(s.db, &models.PreparationBook{
		ID:       id,
		Title:    p.Title,
		Author:   p.Author,
		URL:      p.URL,
		ImageURL: p.ImageURL,
	})
	if err != nil {
		if errors.Is(err, prepctl.ErrBookNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("preparation book %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Preparation Book Updated", updated.Title)

	return c.JSON(updated)
}

// DeleteBook handles DELETE /api/preparation-books/:id.
func (s *Service) DeleteBook(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := prepctl.DeleteBook(s.db, id); err != nil {
		if errors.Is(err, prepctl.ErrBookNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("preparation book %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Preparation Book Deleted", id)

	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCourse handles POST /api/preparation-courses.
func (s *Service) CreateCourse(c *fiber.Ctx) error {
	var p coursePayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	created, err := prepctl.CreateCourse(s.db, &models.PreparationCourse{
		Platform: p.Platform,
		Title:    p.Title,
		URL:      p.URL,
	})
	if err != nil {
		return err
	}

	activity.Record(s.db, "Preparation Course Created", created.Title)

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateCourse handles PUT /api/preparation-courses/:id.
func (s *Service) UpdateCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	var p coursePayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	updated, err := prepctl.UpdateCourse(s.db, &models.PreparationCourse{
		ID:       id,
		Platform: p.Platform,
		Title:    p.Title,
		URL:      p.URL,
	})
	if err != nil {
		if errors.Is(err, prepctl.ErrCourseNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("preparation course %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Preparation Course Updated", updated.Title)

	return c.JSON(updated)
}

// DeleteCourse handles DELETE /api/preparation-courses/:id.
func (s *Service) DeleteCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := prepctl.DeleteCourse(s.db, id); err != nil {
		if errors.Is(err, prepctl.ErrCourseNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("preparation course %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Preparation Course Deleted", id)

	return c.SendStatus(fiber.StatusNoContent)
}

// Package post implements the content post REST resource (blog posts, exam
// notices and result announcements).
package post

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	"github.com/jobvista/jobvista/internal/db/controller/activity"
	postctl "github.com/jobvista/jobvista/internal/db/controller/post"
	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/web/handler"
	"github.com/jobvista/jobvista/internal/web/middleware/auth"
)

const (
	// Path is the base path of the post resource.
	Path = handler.APIRoot + "/posts"
)

// Service is the post resource handler.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers the post routes.
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
	grp.Delete("/", s.DeleteMany)

	return nil
}

type postPayload struct {
	Title          string `json:"title"    validate:"required"`
	Category       string `json:"category" validate:"required"`
	Content        string `json:"content"  validate:"required"`
	Status         string `json:"status"   validate:"omitempty,oneof=published draft"`
	Type           string `json:"type"     validate:"omitempty,oneof=posts exam-notices results"`
	PublishedDate  string `json:"publishedDate"`
	ExamDate       string `json:"examDate"`
	DetailsURL     string `json:"detailsUrl"`
	ImageURL       string `json:"imageUrl"`
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
}

func (p *postPayload) validate(v *validator.Validate) error {
	if err := v.Struct(p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	if p.PublishedDate != "" && !handler.ValidDate(p.PublishedDate) {
		return fiber.NewError(fiber.StatusBadRequest, "publishedDate is invalid")
	}

	if p.ExamDate != "" && !handler.ValidDate(p.ExamDate) {
		return fiber.NewError(fiber.StatusBadRequest, "examDate is invalid")
	}

	return nil
}

func (p *postPayload) toModel() *models.ContentPost {
	m := &models.ContentPost{
		Title:          p.Title,
		Category:       p.Category,
		Content:        p.Content,
		Status:         p.Status,
		Type:           p.Type,
		PublishedDate:  p.PublishedDate,
		ExamDate:       p.ExamDate,
		DetailsURL:     p.DetailsURL,
		ImageURL:       p.ImageURL,
		SEOTitle:       p.SEOTitle,
		SEODescription: p.SEODescription,
	}

	if m.Status == "" {
		m.Status = models.PostStatusDraft
	}

	if m.Type == "" {
		m.Type = models.PostTypePosts
	}

	return m
}

// Create handles POST /api/posts.
func (s *Service) Create(c *fiber.Ctx) error {
	var p postPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := p.validate(s.validator); err != nil {
		return err
	}

	created, err := postctl.Create(s.db, p.toModel())
	if err != nil {
		return err
	}

	activity.Record(s.db, "Post Created", created.Title)

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update handles PUT /api/posts/:id.
func (s *Service) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var p postPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := p.validate(s.validator); err != nil {
		return err
	}

	m := p.toModel()
	m.ID = id

	updated, err := postctl.Update(s.db, m)
	if err != nil {
		if errors.Is(err, postctl.ErrPostNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("post %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Post Updated", updated.Title)

	return c.JSON(updated)
}

// Delete handles DELETE /api/posts/:id.
func (s *Service) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := postctl.Delete(s.db, id); err != nil {
		if errors.Is(err, postctl.ErrPostNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("post %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Post Deleted", id)

	return c.SendStatus(fiber.StatusNoContent)
}

type bulkDeletePayload struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// DeleteMany handles DELETE /api/posts with an id list.
func (s *Service) DeleteMany(c *fiber.Ctx) error {
	var p bulkDeletePayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	count, err := postctl.DeleteMany(s.db, p.IDs)
	if err != nil {
		return err
	}

	activity.Record(s.db, "Posts Deleted", fmt.Sprintf("%d posts removed", count))

	return c.SendStatus(fiber.StatusNoContent)
}

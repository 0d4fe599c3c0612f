// Package job implements the job listing REST resource.
package job

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	"github.com/jobvista/jobvista/internal/db/controller/activity"
	jobctl "github.com/jobvista/jobvista/internal/db/controller/job"
	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/web/handler"
	"github.com/jobvista/jobvista/internal/web/middleware/auth"
)

const (
	// Path is the base path of the job resource.
	Path = handler.APIRoot + "/jobs"
)

// Service is the job resource handler.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers the job routes. All of them are admin-only writes.
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

type jobPayload struct {
	Title            string                `json:"title"         validate:"required"`
	Department       string                `json:"department"    validate:"required"`
	Category         string                `json:"category"      validate:"required"`
	Description      string                `json:"description"   validate:"required"`
	Qualification    string                `json:"qualification" validate:"required"`
	Vacancies        int                   `json:"vacancies"     validate:"required,min=1"`
	PostedDate       string                `json:"postedDate"    validate:"required"`
	LastDate         string                `json:"lastDate"      validate:"required"`
	ApplyLink        string                `json:"applyLink"     validate:"required"`
	Status           string                `json:"status"        validate:"omitempty,oneof=active expired"`
	AffiliateCourses []models.AffiliateRef `json:"affiliateCourses"`
	AffiliateBooks   []models.AffiliateRef `json:"affiliateBooks"`
}

func (p *jobPayload) validate(v *validator.Validate) error {
	if err := v.Struct(p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	if !handler.ValidDate(p.PostedDate) {
		return fiber.NewError(fiber.StatusBadRequest, "postedDate is invalid")
	}

	if !handler.ValidDate(p.LastDate) {
		return fiber.NewError(fiber.StatusBadRequest, "lastDate is invalid")
	}

	return nil
}

func (p *jobPayload) toModel() *models.Job {
	j := &models.Job{
		Title:         p.Title,
		Department:    p.Department,
		Category:      p.Category,
		Description:   p.Description,
		Qualification: p.Qualification,
		Vacancies:     p.Vacancies,
		PostedDate:    p.PostedDate,
		LastDate:      p.LastDate,
		ApplyLink:     p.ApplyLink,
		Status:        p.Status,
	}

	if j.Status == "" {
		j.Status = models.JobStatusActive
	}

	j.AffiliateCourses = marshalRefs(p.AffiliateCourses)
	j.AffiliateBooks = marshalRefs(p.AffiliateBooks)

	return j
}

func marshalRefs(refs []models.AffiliateRef) datatypes.JSON {
	if refs == nil {
		refs = []models.AffiliateRef{}
	}

	raw, _ := json.Marshal(refs)

	return datatypes.JSON(raw)
}

// Create handles POST /api/jobs.
func (s *Service) Create(c *fiber.Ctx) error {
	var p jobPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := p.validate(s.validator); err != nil {
		return err
	}

	created, err := jobctl.Create(s.db, p.toModel())
	if err != nil {
		return err
	}

	activity.Record(s.db, "Job Created", created.Title)

	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update handles PUT /api/jobs/:id.
func (s *Service) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var p jobPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := p.validate(s.validator); err != nil {
		return err
	}

	j := p.toModel()
	j.ID = id

	updated, err := jobctl.Update(s.db, j)
	if err != nil {
		if errors.Is(err, jobctl.ErrJobNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("job %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Job Updated", updated.Title)

	return c.JSON(updated)
}

// Delete handles DELETE /api/jobs/:id.
func (s *Service) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := jobctl.Delete(s.db, id); err != nil {
		if errors.Is(err, jobctl.ErrJobNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("job %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Job Deleted", id)

	return c.SendStatus(fiber.StatusNoContent)
}

type bulkDeletePayload struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// DeleteMany handles DELETE /api/jobs with an id list. The removed count is
// logged even when it is zero; the bulk path never reports not-found.
func (s *Service) DeleteMany(c *fiber.Ctx) error {
	var p bulkDeletePayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	count, err := jobctl.DeleteMany(s.db, p.IDs)
	if err != nil {
		return err
	}

	activity.Record(s.db, "Jobs Deleted", fmt.Sprintf("%d jobs removed", count))

	return c.SendStatus(fiber.StatusNoContent)
}

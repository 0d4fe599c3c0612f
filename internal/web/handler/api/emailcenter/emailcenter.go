// Package emailcenter implements the admin email center: saved custom
// emails, reusable templates, the delivery log, and outbound sending.
package emailcenter

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	"github.com/jobvista/jobvista/internal/db/controller/activity"
	emailctl "github.com/jobvista/jobvista/internal/db/controller/email"
	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/mailer"
	"github.com/jobvista/jobvista/internal/web/handler"
	"github.com/jobvista/jobvista/internal/web/middleware/auth"
)

const (
	// Path is the base path of the email center.
	Path = handler.APIRoot + "/emails"

	// CustomPath holds admin-composed emails kept for reuse.
	CustomPath = Path + "/custom"

	// TemplatesPath holds named reusable templates.
	TemplatesPath = Path + "/templates"

	// NotificationsPath is the outbound delivery log.
	NotificationsPath = Path + "/notifications"
)

// Service is the email center handler.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
	sender    mailer.Sender
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers the email center routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.validator = handler.NewValidator()

	if cfg.Mail.Enabled {
		s.sender = mailer.NewResendSender(cfg.Mail.ResendAPIKey, cfg.Mail.From)
	} else {
		s.sender = mailer.Disabled{}
	}

	grp := app.Group(Path, auth.RequireAdmin, auth.BlockDemo)

	grp.Post("/send", s.Send)

	grp.Get("/custom", s.GetCustomEmails)
	grp.Post("/custom", s.CreateCustomEmail)
	grp.Delete("/custom/:id", s.DeleteCustomEmail)

	grp.Get("/templates", s.GetTemplates)
	grp.Post("/templates", s.CreateTemplate)
	grp.Delete("/templates/:id", s.DeleteTemplate)

	grp.Get("/notifications", s.GetNotifications)
	grp.Delete("/notifications/:id", s.DeleteNotification)

	return nil
}

type sendPayload struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

// Send delivers one email and records the outcome in the delivery log. A
// delivery failure still answers the admin with the recorded notification.
func (s *Service) Send(c *fiber.Ctx) error {
	var p sendPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	status := models.EmailStatusSent
	messageID, err := s.sender.Send(c.Context(), p.To, p.Subject, p.Body)
	if err != nil {
		status = models.EmailStatusFailed
		log.Error().Err(err).Str("recipient", p.To).Msg("email delivery failed")
	} else {
		log.Info().Str("recipient", p.To).Str("messageId", messageID).Msg("email delivered")
	}

	note, recErr := emailctl.RecordNotification(s.db, p.To, p.Subject, status)
	if recErr != nil {
		return recErr
	}

	activity.Record(s.db, "Email Sent", fmt.Sprintf("%s (%s)", p.To, status))

	return c.Status(fiber.StatusCreated).JSON(note)
}

// GetCustomEmails handles GET /api/emails/custom.
func (s *Service) GetCustomEmails(c *fiber.Ctx) error {
	emails, err := emailctl.GetAllCustomEmails(s.db)
	if err != nil {
		return err
	}

	return c.JSON(emails)
}

type customEmailPayload struct {
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

// CreateCustomEmail handles POST /api/emails/custom.
func (s *Service) CreateCustomEmail(c *fiber.Ctx) error {
	var p customEmailPayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	created, err := emailctl.CreateCustomEmail(s.db, &models.CustomEmail{
		Subject: p.Subject,
		Body:    p.Body,
	})
	if err != nil {
		return err
	}

	activity.Record(s.db, "Custom Email Created", created.Subject)

	return c.Status(fiber.StatusCreated).JSON(created)
}

// DeleteCustomEmail handles DELETE /api/emails/custom/:id.
func (s *Service) DeleteCustomEmail(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := emailctl.DeleteCustomEmail(s.db, id); err != nil {
		if errors.Is(err, emailctl.ErrCustomEmailNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("custom email %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Custom Email Deleted", id)

	return c.SendStatus(fiber.StatusNoContent)
}

// GetTemplates handles GET /api/emails/templates.
func (s *Service) GetTemplates(c *fiber.Ctx) error {
	templates, err := emailctl.GetAllTemplates(s.db)
	if err != nil {
		return err
	}

	return c.JSON(templates)
}

type templatePayload struct {
	Name    string `json:"name" validate:"required"`
	Subject string `json:"subject"`
	Body    string `json:"body" validate:"required"`
}

// CreateTemplate handles POST /api/emails/templates.
func (s *Service) CreateTemplate(c *fiber.Ctx) error {
	var p templatePayload
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request payload")
	}

	if err := s.validator.Struct(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	created, err := emailctl.CreateTemplate(s.db, &models.EmailTemplate{
		Name:    p.Name,
		Subject: p.Subject,
		Body:    p.Body,
	})
	if err != nil {
		return err
	}

	activity.Record(s.db, "Email Template Created", created.Name)

	return c.Status(fiber.StatusCreated).JSON(created)
}

// DeleteTemplate handles DELETE /api/emails/templates/:id.
func (s *Service) DeleteTemplate(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := emailctl.DeleteTemplate(s.db, id); err != nil {
		if errors.Is(err, emailctl.ErrTemplateNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("email template %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Email Template Deleted", id)

	return c.SendStatus(fiber.StatusNoContent)
}

// GetNotifications handles GET /api/emails/notifications.
func (s *Service) GetNotifications(c *fiber.Ctx) error {
	notes, err := emailctl.GetAllNotifications(s.db)
	if err != nil {
		return err
	}

	return c.JSON(notes)
}

// DeleteNotification handles DELETE /api/emails/notifications/:id.
func (s *Service) DeleteNotification(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := emailctl.DeleteNotification(s.db, id); err != nil {
		if errors.Is(err, emailctl.ErrNotificationNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("email notification %s not found", id))
		}
		return err
	}

	activity.Record(s.db, "Email Notification Deleted", id)

	return c.SendStatus(fiber.StatusNoContent)
}

// Package data implements the aggregation endpoint. One request returns
// every collection the front end needs, with the admin-only collections
// gated by role. The response shape is identical for every caller; only
// the content of the gated fields changes.
package data

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	activityctl "github.com/jobvista/jobvista/internal/db/controller/activity"
	adctl "github.com/jobvista/jobvista/internal/db/controller/ad"
	contactctl "github.com/jobvista/jobvista/internal/db/controller/contact"
	emailctl "github.com/jobvista/jobvista/internal/db/controller/email"
	examctl "github.com/jobvista/jobvista/internal/db/controller/exam"
	jobctl "github.com/jobvista/jobvista/internal/db/controller/job"
	newsctl "github.com/jobvista/jobvista/internal/db/controller/news"
	postctl "github.com/jobvista/jobvista/internal/db/controller/post"
	prepctl "github.com/jobvista/jobvista/internal/db/controller/preparation"
	quicklinkctl "github.com/jobvista/jobvista/internal/db/controller/quicklink"
	subctl "github.com/jobvista/jobvista/internal/db/controller/subscriber"
	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/settings"
	"github.com/jobvista/jobvista/internal/web/handler"
	"github.com/jobvista/jobvista/internal/web/middleware/auth"
)

const (
	// Path is the aggregation endpoint path.
	Path = handler.APIRoot + "/data"
)

// Service is the aggregation handler.
type Service struct {
	cfg  *config.Config
	db   *gorm.DB
	repo *settings.Repository
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers the aggregation route. The endpoint itself is public;
// the role check happens inside so the gated fields can be emptied
// instead of omitted.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.repo = settings.New(db)

	app.Get(Path, s.Get)

	return nil
}

// payload is the full aggregated application state. The admin-only
// collections are always present; they are empty slices for callers
// without an admin session.
type payload struct {
	Settings           map[string]interface{}     `json:"settings"`
	Jobs               []models.Job               `json:"jobs"`
	QuickLinks         []models.QuickLink         `json:"quickLinks"`
	Posts              []models.ContentPost       `json:"posts"`
	BreakingNews       []models.BreakingNews      `json:"breakingNews"`
	SponsoredAds       []models.SponsoredAd       `json:"sponsoredAds"`
	PreparationCourses []models.PreparationCourse `json:"preparationCourses"`
	PreparationBooks   []models.PreparationBook   `json:"preparationBooks"`
	UpcomingExams      []models.UpcomingExam      `json:"upcomingExams"`
	Subscribers        []models.Subscriber        `json:"subscribers"`
	ActivityLogs       []models.ActivityLog       `json:"activityLogs"`
	Contacts           []models.ContactSubmission `json:"contacts"`
	EmailNotifications []models.EmailNotification `json:"emailNotifications"`
	CustomEmails       []models.CustomEmail       `json:"customEmails"`
	EmailTemplates     []models.EmailTemplate     `json:"emailTemplates"`
}

// Get handles GET /api/data.
func (s *Service) Get(c *fiber.Ctx) error {
	out := payload{
		Settings:           s.repo.PublicMap(),
		Jobs:               []models.Job{},
		QuickLinks:         []models.QuickLink{},
		Posts:              []models.ContentPost{},
		BreakingNews:       []models.BreakingNews{},
		SponsoredAds:       []models.SponsoredAd{},
		PreparationCourses: []models.PreparationCourse{},
		PreparationBooks:   []models.PreparationBook{},
		UpcomingExams:      []models.UpcomingExam{},
		Subscribers:        []models.Subscriber{},
		ActivityLogs:       []models.ActivityLog{},
		Contacts:           []models.ContactSubmission{},
		EmailNotifications: []models.EmailNotification{},
		CustomEmails:       []models.CustomEmail{},
		EmailTemplates:     []models.EmailTemplate{},
	}

	var err error

	if out.Jobs, err = jobctl.GetAll(s.db); err != nil {
		return err
	}
	if out.QuickLinks, err = quicklinkctl.GetAll(s.db); err != nil {
		return err
	}
	if out.Posts, err = postctl.GetAll(s.db); err != nil {
		return err
	}
	if out.BreakingNews, err = newsctl.GetAll(s.db); err != nil {
		return err
	}
	if out.SponsoredAds, err = adctl.GetAll(s.db); err != nil {
		return err
	}
	if out.PreparationCourses, err = prepctl.GetAllCourses(s.db); err != nil {
		return err
	}
	if out.PreparationBooks, err = prepctl.GetAllBooks(s.db); err != nil {
		return err
	}
	if out.UpcomingExams, err = examctl.GetAll(s.db); err != nil {
		return err
	}

	if data, ok := auth.Current(c); ok && data.IsAdmin {
		if out.Subscribers, err = subctl.GetAll(s.db); err != nil {
			return err
		}
		if out.ActivityLogs, err = activityctl.GetAll(s.db); err != nil {
			return err
		}
		if out.Contacts, err = contactctl.GetAll(s.db); err != nil {
			return err
		}
		if out.EmailNotifications, err = emailctl.GetAllNotifications(s.db); err != nil {
			return err
		}
		if out.CustomEmails, err = emailctl.GetAllCustomEmails(s.db); err != nil {
			return err
		}
		if out.EmailTemplates, err = emailctl.GetAllTemplates(s.db); err != nil {
			return err
		}

		log.Debug().Str("user", data.Username).Msg("aggregated payload includes admin collections")
	}

	return c.JSON(out)
}

// Package daemon wires the database, session store and web service into
// one long-running process.
package daemon

import (
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	"github.com/jobvista/jobvista/internal/db/dsn"
	"github.com/jobvista/jobvista/internal/db/models"
	"github.com/jobvista/jobvista/internal/web"
	"github.com/jobvista/jobvista/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
}

// Start starts the Daemon's web service and, unless running serverless,
// blocks until the listener has drained and stopped.
func (d *Daemon) Start(addr string) error {
	go d.webService.WaitShutdown()

	return d.webService.Start(addr)
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	dbDriver := gormpostgres.Open(dsn.Create(cfg))

	db, err := gorm.Open(dbDriver, &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.Setting{},
		&models.Job{},
		&models.ContentPost{},
		&models.BreakingNews{},
		&models.QuickLink{},
		&models.UpcomingExam{},
		&models.PreparationBook{},
		&models.PreparationCourse{},
		&models.SponsoredAd{},
		&models.Subscriber{},
		&models.ContactSubmission{},
		&models.ActivityLog{},
		&models.EmailNotification{},
		&models.CustomEmail{},
		&models.EmailTemplate{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	seed(cfg, db)

	sessionStorage := sessionpostgres.New(sessionpostgres.Config{
		ConnectionURI: dsn.CreateURI(cfg),
		Table:         "sessions",
	})

	session.Init(sessionStorage)

	return &Daemon{
		webService: web.New(cfg, db),
	}
}

// Package web assembles the fiber application: middleware, the JSON error
// surface and every handler package, plus the listener lifecycle.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	fiberlogger "github.com/jobvista/jobvista/internal/logger/adapter/fiber"
	"github.com/jobvista/jobvista/internal/web/handler"
	activityhandler "github.com/jobvista/jobvista/internal/web/handler/api/activity"
	adhandler "github.com/jobvista/jobvista/internal/web/handler/api/ad"
	authhandler "github.com/jobvista/jobvista/internal/web/handler/api/auth"
	contacthandler "github.com/jobvista/jobvista/internal/web/handler/api/contact"
	datahandler "github.com/jobvista/jobvista/internal/web/handler/api/data"
	emailhandler "github.com/jobvista/jobvista/internal/web/handler/api/emailcenter"
	examhandler "github.com/jobvista/jobvista/internal/web/handler/api/exam"
	jobhandler "github.com/jobvista/jobvista/internal/web/handler/api/job"
	newshandler "github.com/jobvista/jobvista/internal/web/handler/api/news"
	posthandler "github.com/jobvista/jobvista/internal/web/handler/api/post"
	prephandler "github.com/jobvista/jobvista/internal/web/handler/api/preparation"
	quicklinkhandler "github.com/jobvista/jobvista/internal/web/handler/api/quicklink"
	settingshandler "github.com/jobvista/jobvista/internal/web/handler/api/settingsapi"
	subscriberhandler "github.com/jobvista/jobvista/internal/web/handler/api/subscriber"
	seohandler "github.com/jobvista/jobvista/internal/web/handler/seo"
)

// CheckAliveURI is the liveness endpoint path.
const CheckAliveURI = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// errorHandler is the central JSON error surface. Handler-raised 4xx
// messages pass through verbatim; everything else is genericized to avoid
// leaking internals, with the full error logged server-side.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("request failed")

		return c.Status(code).JSON(handler.Message{Message: "internal server error"})
	}

	return c.Status(code).JSON(handler.Message{Message: err.Error()})
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			ErrorHandler:   errorHandler,
		},
	)

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAliveURI,
	}))

	service := &Service{
		cfg:          cfg,
		App:          app,
		db:           db,
		fastShutDown: cfg.Serverless,
	}
	service.alive.Store(true)

	app.Get(CheckAliveURI, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	inits := []func(*fiber.App, *config.Config, *gorm.DB) error{
		authhandler.Handler.Init,
		jobhandler.Handler.Init,
		posthandler.Handler.Init,
		newshandler.Handler.Init,
		quicklinkhandler.Handler.Init,
		examhandler.Handler.Init,
		prephandler.Handler.Init,
		adhandler.Handler.Init,
		subscriberhandler.Handler.Init,
		contacthandler.Handler.Init,
		emailhandler.Handler.Init,
		settingshandler.Handler.Init,
		activityhandler.Handler.Init,
		datahandler.Handler.Init,
		seohandler.Handler.Init,
	}

	for _, init := range inits {
		if err := init(app, cfg, db); err != nil {
			log.Fatal().Err(err).Msg("handler initialization failed")
		}
	}

	return service
}

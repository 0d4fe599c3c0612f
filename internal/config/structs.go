package config

import (
	"time"

	"github.com/jobvista/jobvista/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode    bool // enable dev mode for development
	Serverless bool // skip the long-running listener lifecycle (no signal wait, no drain)
	DB         DB
	Log        logger.Log
	Title      string
	Webserver  Webserver
	Auth       Auth
	Mail       Mail
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath           bool    // use clean path middleware to allow multi slash requests
	DisableRecover      bool    // disable recover middleware
	Domain              string  // domain name for the webserver
	Port                int     // listening port for the webserver
	ShutDownTime        int     // wait time for shutdown
	URL                 string  // base url for the webserver, used in sitemap and robots output
	CookieEncryptionKey string  // encryption key for cookies
	Session             Session // session settings
}

// Auth holds authentication related settings.
type Auth struct {
	// DemoEnabled allows logging in with the demo identity. Demo sessions
	// look like admin sessions but every write operation is blocked.
	DemoEnabled  bool
	DemoUsername string
	DemoPassword string
}

// Mail holds outbound email settings.
type Mail struct {
	Enabled      bool
	ResendAPIKey string
	From         string
}

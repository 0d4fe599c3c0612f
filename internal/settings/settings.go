// Package settings layers typed configuration categories on top of the
// generic settings bag. Every category is one named row whose value is a
// JSON document; shape is validated at this boundary and a decode failure
// falls back to the category's zero value instead of propagating.
package settings

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/db/controller/setting"
)

// Category names used as keys in the settings bag.
const (
	NameSite     = "siteSettings"
	NameTheme    = "themeSettings"
	NameSecurity = "securitySettings"
	NameSMTP     = "smtpSettings"
	NameAds      = "adsSettings"
	NameHome     = "homePageSettings"
)

// Site holds the public site identity and SEO defaults.
type Site struct {
	SiteTitle       string   `json:"siteTitle"`
	Tagline         string   `json:"tagline"`
	MetaDescription string   `json:"metaDescription"`
	MetaKeywords    []string `json:"metaKeywords"`
	ContactEmail    string   `json:"contactEmail"`
}

// Theme holds public theming options.
type Theme struct {
	PrimaryColor string `json:"primaryColor"`
	AccentColor  string `json:"accentColor"`
	DarkMode     bool   `json:"darkMode"`
}

// Security holds admin-facing security toggles.
type Security struct {
	MaintenanceMode bool `json:"maintenanceMode"`
	DemoMode        bool `json:"demoMode"`
}

// SMTP holds the outbound mail relay settings shown in the admin panel.
type SMTP struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FromEmail string `json:"fromEmail"`
}

// Ads holds sponsored ad display settings.
type Ads struct {
	Enabled  bool `json:"enabled"`
	TestMode bool `json:"testMode"`
}

// Home holds homepage composition settings.
type Home struct {
	HeroText           string   `json:"heroText"`
	FeaturedCategories []string `json:"featuredCategories"`
}

// Repository provides typed access to the settings bag.
type Repository struct {
	db *gorm.DB
}

// New creates a settings repository over the given database.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Site returns the site settings, zero value when absent or unparseable.
func (r *Repository) Site() Site {
	var out Site
	r.get(NameSite, &out)
	return out
}

// PutSite stores the site settings.
func (r *Repository) PutSite(v Site) error { return r.put(NameSite, v) }

// Theme returns the theme settings.
func (r *Repository) Theme() Theme {
	var out Theme
	r.get(NameTheme, &out)
	return out
}

// PutTheme stores the theme settings.
func (r *Repository) PutTheme(v Theme) error { return r.put(NameTheme, v) }

// Security returns the security settings.
func (r *Repository) Security() Security {
	var out Security
	r.get(NameSecurity, &out)
	return out
}

// PutSecurity stores the security settings.
func (r *Repository) PutSecurity(v Security) error { return r.put(NameSecurity, v) }

// SMTP returns the SMTP settings.
func (r *Repository) SMTP() SMTP {
	var out SMTP
	r.get(NameSMTP, &out)
	return out
}

// PutSMTP stores the SMTP settings.
func (r *Repository) PutSMTP(v SMTP) error { return r.put(NameSMTP, v) }

// Ads returns the ads settings.
func (r *Repository) Ads() Ads {
	var out Ads
	r.get(NameAds, &out)
	return out
}

// PutAds stores the ads settings.
func (r *Repository) PutAds(v Ads) error { return r.put(NameAds, v) }

// Home returns the homepage settings.
func (r *Repository) Home() Home {
	var out Home
	r.get(NameHome, &out)
	return out
}

// PutHome stores the homepage settings.
func (r *Repository) PutHome(v Home) error { return r.put(NameHome, v) }

// PublicMap decodes every stored settings row into a generic map for the
// aggregation endpoint. A row that fails to decode becomes an empty list so
// the client side never sees a missing or malformed key.
func (r *Repository) PublicMap() map[string]interface{} {
	out := make(map[string]interface{})

	rows, err := setting.GetAll(r.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings bag")
		return out
	}

	for _, row := range rows {
		var decoded interface{}
		if err := json.Unmarshal(row.Value, &decoded); err != nil {
			out[row.Name] = []interface{}{}
			continue
		}

		out[row.Name] = decoded
	}

	return out
}

func (r *Repository) get(name string, out interface{}) {
	row, err := setting.Get(r.db, name)
	if err != nil {
		return // zero value fallback
	}

	if err := json.Unmarshal(row.Value, out); err != nil {
		log.Warn().Err(err).Str("setting", name).Msg("settings row is unparseable, using defaults")
	}
}

func (r *Repository) put(name string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = setting.Set(r.db, name, datatypes.JSON(raw))

	return err
}

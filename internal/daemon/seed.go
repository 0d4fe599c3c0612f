package daemon

import (
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	"github.com/jobvista/jobvista/internal/settings"
)

// seed writes the default settings categories on first start so the
// aggregation payload and admin panel never see missing rows. Existing
// rows are left alone.
func seed(cfg *config.Config, db *gorm.DB) {
	repo := settings.New(db)

	if site := repo.Site(); site.SiteTitle == "" {
		site.SiteTitle = cfg.Title
		site.MetaKeywords = []string{}
		_ = repo.PutSite(site)
	}

	if theme := repo.Theme(); theme.PrimaryColor == "" {
		theme.PrimaryColor = "#1d4ed8"
		theme.AccentColor = "#f59e0b"
		_ = repo.PutTheme(theme)
	}

	if home := repo.Home(); home.FeaturedCategories == nil {
		home.FeaturedCategories = []string{}
		_ = repo.PutHome(home)
	}
}

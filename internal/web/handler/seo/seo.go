// Package seo serves the crawler-facing documents. Both are computed per
// request from the current database state, nothing is cached.
package seo

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/jobvista/jobvista/internal/config"
	jobctl "github.com/jobvista/jobvista/internal/db/controller/job"
	postctl "github.com/jobvista/jobvista/internal/db/controller/post"
	"github.com/jobvista/jobvista/internal/db/models"
)

// staticPages are the fixed public pages always present in the sitemap.
var staticPages = []string{
	"/",
	"/jobs",
	"/posts",
	"/exam-notices",
	"/results",
	"/preparation",
	"/contact",
}

// disallowedPaths are never offered to crawlers.
var disallowedPaths = []string{
	"/admin",
	"/api",
	"/login",
}

// Service is the SEO document handler.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers the robots and sitemap routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.cfg = cfg
	s.db = db

	app.Get("/robots.txt", s.Robots)
	app.Get("/sitemap.xml", s.Sitemap)

	return nil
}

// Robots handles GET /robots.txt.
func (s *Service) Robots(c *fiber.Ctx) error {
	var b strings.Builder

	b.WriteString("User-agent: *\n")
	for _, path := range disallowedPaths {
		fmt.Fprintf(&b, "Disallow: %s\n", path)
	}
	fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", strings.TrimSuffix(s.cfg.Webserver.URL, "/"))

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")

	return c.SendString(b.String())
}

// Sitemap handles GET /sitemap.xml. It lists the static pages, every
// non-expired job and every published blog post.
func (s *Service) Sitemap(c *fiber.Ctx) error {
	base := strings.TrimSuffix(s.cfg.Webserver.URL, "/")

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	now := time.Now().Format("2006-01-02")
	for _, page := range staticPages {
		writeURL(&b, base+page, now)
	}

	jobs, err := jobctl.GetAll(s.db)
	if err != nil {
		return err
	}
	for _, j := range jobs {
		if j.Status == models.JobStatusExpired {
			continue
		}
		writeURL(&b, fmt.Sprintf("%s/jobs/%s", base, Slugify(j.Title)), j.CreatedAt.Format("2006-01-02"))
	}

	posts, err := postctl.GetAll(s.db)
	if err != nil {
		return err
	}
	for _, p := range posts {
		if p.Status != models.PostStatusPublished || p.Type != models.PostTypePosts {
			continue
		}
		writeURL(&b, fmt.Sprintf("%s/posts/%s", base, Slugify(p.Title)), p.CreatedAt.Format("2006-01-02"))
	}

	b.WriteString("</urlset>\n")

	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")

	return c.SendString(b.String())
}

func writeURL(b *strings.Builder, loc, lastmod string) {
	fmt.Fprintf(b, "  <url><loc>%s</loc><lastmod>%s</lastmod></url>\n", loc, lastmod)
}

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	hyphenRunRe  = regexp.MustCompile(`-+`)
)

// Slugify turns a title into a URL path segment: lowercase, drop anything
// that is not a word character, turn whitespace into hyphens and collapse
// the result.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonWordRe.ReplaceAllString(slug, "")
	slug = whitespaceRe.ReplaceAllString(slug, "-")
	slug = hyphenRunRe.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}

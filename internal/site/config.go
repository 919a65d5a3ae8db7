// Package site holds the static, non-news content of the website: band
// details, navigation, SEO metadata per page, visuals and audio tracks.
package site

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/DjordjeVuckovic/lbw-site/internal/domain"
)

// Page keys used in the pages section of the configuration.
const (
	PageHome     = "home"
	PageAbout    = "about"
	PageNews     = "news"
	PageVisual   = "visual"
	PageAudio    = "audio"
	PageContact  = "contact"
	PageLegal    = "legal"
	PageNotFound = "not_found"
)

var requiredPages = []string{PageHome, PageAbout, PageNews, PageVisual, PageAudio, PageContact, PageLegal, PageNotFound}

type Config struct {
	Band    Band                `yaml:"band" validate:"required"`
	BaseURL string              `yaml:"baseUrl" validate:"required,url"`
	Pages   map[string]PageMeta `yaml:"pages" validate:"required,dive"`
	Nav     []NavLink           `yaml:"nav" validate:"required,min=1,dive"`
	About   []string            `yaml:"about"`
	Visuals []domain.Visual     `yaml:"visuals" validate:"dive"`
	Tracks  []domain.Track      `yaml:"tracks" validate:"dive"`
	Contact Contact             `yaml:"contact"`
	Legal   Legal               `yaml:"legal"`
}

type Band struct {
	Name    string `yaml:"name" validate:"required"`
	Tagline string `yaml:"tagline"`
	Logo    string `yaml:"logo"`
	LogoAlt string `yaml:"logoAlt"`
}

// PageMeta is the SEO metadata of a single page.
type PageMeta struct {
	Title       string `yaml:"title" validate:"required"`
	Heading     string `yaml:"heading"`
	Description string `yaml:"description" validate:"required"`
	Image       string `yaml:"image"`
}

type NavLink struct {
	Label string `yaml:"label" validate:"required"`
	Path  string `yaml:"path" validate:"required"`
}

type Contact struct {
	Email   string    `yaml:"email" validate:"omitempty,email"`
	Booking string    `yaml:"booking" validate:"omitempty,email"`
	Socials []NavLink `yaml:"socials" validate:"dive"`
}

type Legal struct {
	Owner   string   `yaml:"owner"`
	Address []string `yaml:"address"`
	Email   string   `yaml:"email" validate:"omitempty,email"`
}

// Page returns the metadata for key. Missing pages fall back to the band name.
func (c *Config) Page(key string) PageMeta {
	if p, ok := c.Pages[key]; ok {
		if p.Heading == "" {
			p.Heading = p.Title
		}
		return p
	}
	return PageMeta{Title: c.Band.Name, Heading: c.Band.Name}
}

// CanonicalURL joins path onto the configured base URL.
func (c *Config) CanonicalURL(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func (c *Config) Validate() error {
	if err := domain.Validator().Struct(c); err != nil {
		return fmt.Errorf("invalid site config: %w", err)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("invalid site config: baseUrl %q has no host", c.BaseURL)
	}
	for _, key := range requiredPages {
		if _, ok := c.Pages[key]; !ok {
			return fmt.Errorf("invalid site config: missing page %q", key)
		}
	}
	return nil
}

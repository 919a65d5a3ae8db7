package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/lbw-site/internal/apperr"
	"github.com/DjordjeVuckovic/lbw-site/internal/domain"
	"github.com/DjordjeVuckovic/lbw-site/internal/site"
	"github.com/DjordjeVuckovic/lbw-site/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/lbw-site/internal/view"
)

// makeNews returns n items where item i happened i days after 2020-01-01,
// so sorting newest first yields ids n..1.
func makeNews(n int) []domain.NewsItem {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	items := make([]domain.NewsItem, n)
	for i := range items {
		id := i + 1
		item := domain.NewsItem{
			ID:          id,
			Type:        domain.NewsStatus,
			Happened:    base.AddDate(0, 0, id).Format(time.RFC3339),
			Description: []string{fmt.Sprintf("News %d", id)},
		}
		if id%2 == 0 {
			item.Type = domain.NewsVisual
			item.PictureLarge = fmt.Sprintf("/img/%d.jpg", id)
			item.PictureAlt = fmt.Sprintf("Picture %d", id)
		}
		items[i] = item
	}
	return items
}

func makeVisuals(n int) []domain.Visual {
	visuals := make([]domain.Visual, n)
	for i := range visuals {
		visuals[i] = domain.Visual{
			Title:    fmt.Sprintf("Visual %d", i+1),
			ImageURL: fmt.Sprintf("/img/visual-%d.jpg", i+1),
		}
	}
	return visuals
}

func testSite(visuals int) *site.Config {
	pages := map[string]site.PageMeta{}
	for _, key := range []string{site.PageHome, site.PageAbout, site.PageNews, site.PageVisual, site.PageAudio, site.PageContact, site.PageLegal} {
		pages[key] = site.PageMeta{Title: key + " | Test Band", Heading: key, Description: key + " description"}
	}
	pages[site.PageNotFound] = site.PageMeta{Title: "Not found", Heading: "Page not found", Description: "Missing"}

	return &site.Config{
		Band:    site.Band{Name: "Test Band", Tagline: "Loud", Logo: "/img/logo.png", LogoAlt: "Test Band logo"},
		BaseURL: "https://band.example.com",
		Pages:   pages,
		Nav: []site.NavLink{
			{Label: "Home", Path: "/"},
			{Label: "About", Path: "/about"},
			{Label: "News", Path: "/news"},
			{Label: "Visual", Path: "/visual"},
			{Label: "Audio", Path: "/audio"},
			{Label: "Contact", Path: "/contact"},
		},
		About:   []string{"We are a band."},
		Visuals: makeVisuals(visuals),
		Tracks:  []domain.Track{{Title: "Song", Year: 2021, URL: "/audio/song.mp3"}},
		Contact: site.Contact{Email: "hello@band.example.com"},
		Legal:   site.Legal{Owner: "Test Band GbR", Address: []string{"Street 1"}},
	}
}

func newTestEcho(t *testing.T, news []domain.NewsItem, visuals int) *echo.Echo {
	t.Helper()

	engine, err := view.NewEngine()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = engine

	reader := in_mem.NewInMemReader(news...)
	NewNewsRouter(e, reader).Bind()
	pages := NewPagesRouter(e, reader, testSite(visuals))
	pages.Bind()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler(apperr.WithErrorPages(pages.ErrorPage))

	return e
}

func get(t *testing.T, e *echo.Echo, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(echo.HeaderAccept, "text/html,application/xhtml+xml,*/*")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func document(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

package router

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/lbw-site/internal/domain"
	"github.com/DjordjeVuckovic/lbw-site/internal/metrics"
	"github.com/DjordjeVuckovic/lbw-site/internal/site"
	"github.com/DjordjeVuckovic/lbw-site/internal/storage"
	"github.com/DjordjeVuckovic/lbw-site/internal/view"
	"github.com/DjordjeVuckovic/lbw-site/pkg/pagination"
)

// LatestNewsCount is the number of news items teased on the home page
const LatestNewsCount = 3

const (
	endpointNewsPage   = "news_page"
	endpointVisualPage = "visual_page"
)

// PagesRouter serves the server-rendered pages of the site.
type PagesRouter struct {
	e      *echo.Echo
	reader storage.NewsReader
	site   *site.Config
}

func NewPagesRouter(e *echo.Echo, reader storage.NewsReader, cfg *site.Config) *PagesRouter {
	return &PagesRouter{
		e:      e,
		reader: reader,
		site:   cfg,
	}
}

func (r *PagesRouter) Bind() {
	r.e.GET("/", r.homeHandler)
	r.e.GET("/about", r.staticPage(site.PageAbout, "/about"))
	r.e.GET("/news", r.newsHandler)
	r.e.GET("/visual", r.visualHandler)
	r.e.GET("/audio", r.audioHandler)
	r.e.GET("/contact", r.staticPage(site.PageContact, "/contact"))
	r.e.GET("/legal", r.staticPage(site.PageLegal, "/legal"))
}

func (r *PagesRouter) homeHandler(c echo.Context) error {
	news, err := sortedNews(c.Request().Context(), r.reader)
	if err != nil {
		return err
	}

	latest := news[:min(LatestNewsCount, len(news))]
	return r.render(c, http.StatusOK, site.PageHome, "/", view.HomeData{
		Tagline: r.site.Band.Tagline,
		Latest:  latest,
	}, structuredData(latest))
}

func (r *PagesRouter) newsHandler(c echo.Context) error {
	const path = "/news"

	requested, err := pagination.ValidatePageQuery(c.QueryParams())
	if err != nil {
		slog.Debug("Redirecting invalid page parameter", "path", path, "error", err)
		metrics.RecordInvalidPage(endpointNewsPage)
		return c.Redirect(http.StatusFound, path)
	}

	news, err := sortedNews(c.Request().Context(), r.reader)
	if err != nil {
		return err
	}

	totalPages := pagination.TotalPages(len(news), pagination.PageSize)
	if pagination.ShouldRedirectToFirstPage(requested, totalPages) {
		metrics.RecordPage(endpointNewsPage, metrics.OutcomeRedirect, requested)
		return c.Redirect(http.StatusFound, path)
	}

	page := pagination.Paginate(news, requested, pagination.PageSize)
	metrics.RecordPage(endpointNewsPage, outcome(requested, page.Result), requested)

	return r.render(c, http.StatusOK, site.PageNews, pagination.PageURL(path, page.CurrentPage), view.NewsPageData{
		Items: page.Items,
		Pager: view.Pager{Path: path, Result: page.Result},
	}, structuredData(page.Items))
}

func (r *PagesRouter) visualHandler(c echo.Context) error {
	const path = "/visual"

	requested, err := pagination.ValidatePageQuery(c.QueryParams())
	if err != nil {
		metrics.RecordInvalidPage(endpointVisualPage)
		return c.Redirect(http.StatusFound, path)
	}

	totalPages := pagination.TotalPages(len(r.site.Visuals), pagination.VisualPageSize)
	if pagination.ShouldRedirectToFirstPage(requested, totalPages) {
		metrics.RecordPage(endpointVisualPage, metrics.OutcomeRedirect, requested)
		return c.Redirect(http.StatusFound, path)
	}

	page := pagination.Paginate(r.site.Visuals, requested, pagination.VisualPageSize)
	metrics.RecordPage(endpointVisualPage, outcome(requested, page.Result), requested)

	return r.render(c, http.StatusOK, site.PageVisual, pagination.PageURL(path, page.CurrentPage), view.VisualPageData{
		Items: page.Items,
		Pager: view.Pager{Path: path, Result: page.Result},
	}, "")
}

func (r *PagesRouter) audioHandler(c echo.Context) error {
	return r.render(c, http.StatusOK, site.PageAudio, "/audio", view.AudioPageData{
		Tracks: r.site.Tracks,
	}, "")
}

func (r *PagesRouter) staticPage(key, path string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return r.render(c, http.StatusOK, key, path, nil, "")
	}
}

// ErrorPage renders the not found page for any error status. It is used by
// the global error handler for non-API requests.
func (r *PagesRouter) ErrorPage(c echo.Context, code int) error {
	return r.render(c, code, site.PageNotFound, c.Request().URL.Path, view.ErrorPageData{Code: code}, "")
}

func (r *PagesRouter) render(c echo.Context, code int, key, canonicalPath string, data any, ld template.JS) error {
	return c.Render(code, key, view.TemplateData{
		Site:         r.site,
		Meta:         r.site.Page(key),
		CanonicalURL: r.site.CanonicalURL(canonicalPath),
		CurrentPath:  c.Request().URL.Path,
		JSONLD:       ld,
		Data:         data,
	})
}

// structuredData collects the schema.org metadata of the shown news items.
func structuredData(items []domain.NewsItem) template.JS {
	var all []domain.StructuredData
	for _, item := range items {
		all = append(all, item.Structured...)
	}
	if len(all) == 0 {
		return ""
	}
	ld, err := view.JSONLD(all)
	if err != nil {
		slog.Error("Failed to encode structured data", "error", err)
		return ""
	}
	return ld
}

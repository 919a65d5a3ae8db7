package view

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/lbw-site/internal/metrics"
	"github.com/DjordjeVuckovic/lbw-site/internal/site"
	"github.com/DjordjeVuckovic/lbw-site/pkg/dates"
	"github.com/DjordjeVuckovic/lbw-site/pkg/pagination"
	"github.com/DjordjeVuckovic/lbw-site/web"
)

// Engine renders HTML pages. It implements echo.Renderer.
type Engine struct {
	pages map[string]*template.Template
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Site         *site.Config
	Meta         site.PageMeta
	CanonicalURL string
	CurrentPath  string
	JSONLD       template.JS
	Data         any
}

// NewEngine parses the layout and partials once and every page on top of them.
func NewEngine() (*Engine, error) {
	return newEngine(web.Templates)
}

func newEngine(fsys fs.FS) (*Engine, error) {
	base, err := template.New("root").Funcs(funcMap()).ParseFS(fsys, "templates/layouts/*.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	files, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, f := range files {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFS(fsys, f); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", f, err)
		}
		pages[strings.TrimSuffix(path.Base(f), ".html")] = clone
	}

	return &Engine{pages: pages}, nil
}

// Render executes the page template name with data, which must be TemplateData.
func (e *Engine) Render(w io.Writer, name string, data any, c echo.Context) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	tpl, ok := e.pages[name]
	if !ok {
		return fmt.Errorf("unknown page template %q", name)
	}

	start := time.Now()
	defer func() {
		metrics.RecordRender(name, time.Since(start).Seconds())
	}()

	return tpl.ExecuteTemplate(w, "base", data)
}

// Has reports whether a page template exists.
func (e *Engine) Has(name string) bool {
	_, ok := e.pages[name]
	return ok
}

// JSONLD encodes schema.org metadata for a ld+json script tag.
func JSONLD(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": dates.FormatDate,
		"pageURL":    pagination.PageURL,
		"year": func() int {
			return time.Now().Year()
		},
		"isActive": func(current, p string) bool {
			if p == "/" {
				return current == "/"
			}
			return current == p || strings.HasPrefix(current, p+"/")
		},
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i + 1
			}
			return out
		},
	}
}

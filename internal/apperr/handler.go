package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ValidationTitle is the title of every validation error response.
const ValidationTitle = "validation error"

// ErrorResponse is the JSON body of every error answered by GlobalErrorHandler.
type ErrorResponse struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}

// PageRenderer renders an HTML error page for the given status code.
type PageRenderer func(c echo.Context, code int) error

type HandlerOption func(*handlerOpts)

type handlerOpts struct {
	pages     PageRenderer
	apiPrefix string
}

// WithErrorPages renders HTML error pages for requests outside the API prefix.
func WithErrorPages(r PageRenderer) HandlerOption {
	return func(o *handlerOpts) {
		o.pages = r
	}
}

// WithAPIPrefix sets the path prefix whose errors are always answered with JSON.
func WithAPIPrefix(prefix string) HandlerOption {
	return func(o *handlerOpts) {
		o.apiPrefix = prefix
	}
}

func GlobalErrorHandler(opts ...HandlerOption) echo.HTTPErrorHandler {
	o := handlerOpts{apiPrefix: "/api"}
	for _, opt := range opts {
		opt(&o)
	}

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Message, Title: ValidationTitle})
			return
		}

		code := http.StatusInternalServerError
		msg := "internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprintf("%v", he.Message)
		} else {
			slog.Error("Unhandled error", "error", err, "uri", c.Request().RequestURI)
		}

		if o.pages != nil && wantsHTML(c, o.apiPrefix) {
			rerr := o.pages(c, code)
			if rerr == nil {
				return
			}
			slog.Error("Failed to render error page", "error", rerr, "code", code)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, ErrorResponse{Error: msg})
	}
}

func wantsHTML(c echo.Context, apiPrefix string) bool {
	if apiPrefix != "" && strings.HasPrefix(c.Request().URL.Path, apiPrefix) {
		return false
	}
	accept := c.Request().Header.Get(echo.HeaderAccept)
	return accept == "" || strings.Contains(accept, echo.MIMETextHTML) || strings.Contains(accept, "*/*")
}

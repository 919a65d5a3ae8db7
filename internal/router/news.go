package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/lbw-site/internal/apperr"
	"github.com/DjordjeVuckovic/lbw-site/internal/domain"
	"github.com/DjordjeVuckovic/lbw-site/internal/dto"
	"github.com/DjordjeVuckovic/lbw-site/internal/metrics"
	"github.com/DjordjeVuckovic/lbw-site/internal/storage"
	"github.com/DjordjeVuckovic/lbw-site/pkg/dates"
	"github.com/DjordjeVuckovic/lbw-site/pkg/pagination"
)

const endpointNewsAPI = "news_api"

type NewsRouter struct {
	e      *echo.Echo
	reader storage.NewsReader
}

func NewNewsRouter(e *echo.Echo, reader storage.NewsReader) *NewsRouter {
	return &NewsRouter{
		e:      e,
		reader: reader,
	}
}

func (r *NewsRouter) Bind() {
	r.e.GET("/api/news", r.newsFeedHandler)
}

// newsFeedHandler godoc
// @Summary Paginated news feed
// @Description Returns news items newest first, 10 per page. Pages past the end are clamped to the last page.
// @Tags news
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} dto.NewsFeedResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 500 {object} apperr.ErrorResponse
// @Router /api/news [get]
func (r *NewsRouter) newsFeedHandler(c echo.Context) error {
	requested, err := pagination.ValidatePageQuery(c.QueryParams())
	if err != nil {
		metrics.RecordInvalidPage(endpointNewsAPI)
		return apperr.NewFieldValidation(pagination.PageQueryParam, "invalid page parameter", err)
	}

	news, err := sortedNews(c.Request().Context(), r.reader)
	if err != nil {
		return err
	}

	page := pagination.Paginate(news, requested, pagination.PageSize)
	metrics.RecordPage(endpointNewsAPI, outcome(requested, page.Result), requested)

	return c.JSON(http.StatusOK, dto.NewsFeedResponse{
		News:  page.Items,
		Total: page.TotalPages,
		Page:  page.CurrentPage,
	})
}

// sortedNews lists the collection newest first.
func sortedNews(ctx context.Context, reader storage.NewsReader) ([]domain.NewsItem, error) {
	items, err := reader.List(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "request canceled")
		}
		slog.Error("Failed to list news", "error", err)
		return nil, fmt.Errorf("list news: %w", err)
	}
	metrics.SetNewsItems(len(items))
	return dates.SortByDateDescending(items), nil
}

func outcome(requested int, res pagination.Result) string {
	if requested != res.CurrentPage {
		return metrics.OutcomeClamped
	}
	return metrics.OutcomeOK
}

package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PageRequestsTotal counts paginated requests.
	// Labels: endpoint (news_api, news_page, visual_page), outcome (ok, clamped, redirect, invalid), page_range
	PageRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_pagination_requests_total",
			Help: "Total number of paginated requests",
		},
		[]string{"endpoint", "outcome", "page_range"},
	)

	// InvalidPageParamsTotal counts rejected page parameters per endpoint.
	InvalidPageParamsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_invalid_page_params_total",
			Help: "Total number of rejected page parameters",
		},
		[]string{"endpoint"},
	)

	// NewsItems tracks the size of the loaded news collection.
	NewsItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "site_news_items",
			Help: "Number of news items served",
		},
	)

	// RenderDurationSeconds tracks template rendering time.
	RenderDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "site_render_duration_seconds",
			Help:    "HTML page render duration distribution",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"page"},
	)
)

const (
	OutcomeOK       = "ok"
	OutcomeClamped  = "clamped"
	OutcomeRedirect = "redirect"
	OutcomeInvalid  = "invalid"
)

// RecordPage records a paginated request for the requested page number.
func RecordPage(endpoint, outcome string, page int) {
	PageRequestsTotal.WithLabelValues(endpoint, outcome, PageRangeBucket(page)).Inc()
}

// RecordInvalidPage records a rejected page parameter.
func RecordInvalidPage(endpoint string) {
	InvalidPageParamsTotal.WithLabelValues(endpoint).Inc()
	PageRequestsTotal.WithLabelValues(endpoint, OutcomeInvalid, "none").Inc()
}

// RecordRender records how long a page took to render.
func RecordRender(page string, seconds float64) {
	RenderDurationSeconds.WithLabelValues(page).Observe(seconds)
}

// SetNewsItems updates the news collection size gauge.
func SetNewsItems(n int) {
	NewsItems.Set(float64(n))
}

// PageRangeBucket returns a low cardinality label for a page number.
func PageRangeBucket(page int) string {
	switch {
	case page <= 0:
		return "none"
	case page <= 5:
		return strconv.Itoa(page)
	case page <= 10:
		return "6-10"
	case page <= 50:
		return "11-50"
	default:
		return "50+"
	}
}

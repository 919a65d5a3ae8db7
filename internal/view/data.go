package view

import (
	"github.com/DjordjeVuckovic/lbw-site/internal/domain"
	"github.com/DjordjeVuckovic/lbw-site/pkg/pagination"
)

// Pager carries what the pagination partial needs to build its links.
type Pager struct {
	Path string
	pagination.Result
}

type HomeData struct {
	Tagline string
	Latest  []domain.NewsItem
}

type NewsPageData struct {
	Items []domain.NewsItem
	Pager Pager
}

type VisualPageData struct {
	Items []domain.Visual
	Pager Pager
}

type AudioPageData struct {
	Tracks []domain.Track
}

type ErrorPageData struct {
	Code int
}

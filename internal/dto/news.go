package dto

import "github.com/DjordjeVuckovic/lbw-site/internal/domain"

// NewsFeedResponse is one page of the news feed.
type NewsFeedResponse struct {
	News  []domain.NewsItem `json:"news"`
	Total int               `json:"total"` // Total is the number of pages, not items
	Page  int               `json:"page"`
}

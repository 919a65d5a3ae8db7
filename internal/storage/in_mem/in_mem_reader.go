package in_mem

import (
	"context"
	"slices"

	"github.com/DjordjeVuckovic/lbw-site/internal/domain"
)

// InMemReader serves a fixed news collection held in memory.
type InMemReader struct {
	items []domain.NewsItem
}

func NewInMemReader(items ...domain.NewsItem) *InMemReader {
	return &InMemReader{
		items: slices.Clone(items),
	}
}

func (r *InMemReader) List(ctx context.Context) ([]domain.NewsItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.items == nil {
		return []domain.NewsItem{}, nil
	}
	return slices.Clone(r.items), nil
}

func (r *InMemReader) Healthy(ctx context.Context) bool {
	return true
}

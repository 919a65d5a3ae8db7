package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/DjordjeVuckovic/lbw-site/internal/domain"
)

// Reader serves news items decoded once from a static JSON file.
type Reader struct {
	filePath string
	items    []domain.NewsItem
}

// NewReader loads and validates the data file. The collection is read-only
// afterwards, so a Reader is safe for concurrent use.
func NewReader(filePath string) (*Reader, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read news file: %w", err)
	}

	items, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("news file %s: %w", filePath, err)
	}

	slog.Info("Loaded news items", "path", filePath, "count", len(items))

	return &Reader{
		filePath: filePath,
		items:    items,
	}, nil
}

// Decode parses a JSON array of news items and validates each entry.
func Decode(data []byte) ([]domain.NewsItem, error) {
	var items []domain.NewsItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal news: %w", err)
	}
	if items == nil {
		items = []domain.NewsItem{}
	}
	if err := domain.ValidateNews(items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Reader) List(ctx context.Context) ([]domain.NewsItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.items), nil
}

// Healthy reports whether the data file the collection was loaded from is
// still in place. A missing file means the next restart fails to boot.
func (r *Reader) Healthy(ctx context.Context) bool {
	info, err := os.Stat(r.filePath)
	if err != nil {
		slog.Warn("News data file is not accessible", "path", r.filePath, "error", err)
		return false
	}
	return info.Mode().IsRegular()
}

package storage

import (
	"context"

	"github.com/DjordjeVuckovic/lbw-site/internal/domain"
)

// NewsReader gives read-only access to the news collection.
// Implementations return the collection in storage order; callers sort.
type NewsReader interface {
	List(ctx context.Context) ([]domain.NewsItem, error)
}

type Type string

const (
	JSONFile Type = "json"
	InMem    Type = "in_mem"
)

type ReaderError string

const (
	ErrUnsupportedReader ReaderError = "unsupported news reader type: %s"
)

func (e ReaderError) Error() string {
	return string(e)
}

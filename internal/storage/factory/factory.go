package factory

import (
	"fmt"

	"github.com/DjordjeVuckovic/lbw-site/internal/storage"
	"github.com/DjordjeVuckovic/lbw-site/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/lbw-site/internal/storage/jsonfile"
	pkgserver "github.com/DjordjeVuckovic/lbw-site/pkg/server"
)

// Reader is a news reader that can report its own health.
type Reader interface {
	storage.NewsReader
	pkgserver.HealthChecker
}

// NewReader creates a news reader based on the storage type
func NewReader(cfg StorageConfig) (Reader, error) {
	switch cfg.Type {
	case storage.JSONFile:
		r, err := jsonfile.NewReader(cfg.NewsDataPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load news data: %w", err)
		}
		return r, nil

	case storage.InMem:
		return in_mem.NewInMemReader(), nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedReader), cfg.Type)
	}
}

package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/lbw-site/internal/storage"
)

const DefaultNewsDataPath = "data/news.json"

type StorageConfig struct {
	storage.Type
	NewsDataPath string
}

func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		storageType = storage.JSONFile
	}
	if storageType != storage.JSONFile && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.JSONFile, storage.InMem})
	}

	dataPath := os.Getenv("NEWS_DATA_PATH")
	if dataPath == "" {
		slog.Info("NEWS_DATA_PATH is not set, using default path", "defaultPath", DefaultNewsDataPath)
		dataPath = DefaultNewsDataPath
	}

	return &StorageConfig{
		Type:         storageType,
		NewsDataPath: dataPath,
	}, nil
}

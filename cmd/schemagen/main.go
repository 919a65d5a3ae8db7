package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/lbw-site/internal/domain"
	"github.com/DjordjeVuckovic/lbw-site/pkg/schema"
)

// schemagen writes the JSON Schema of the static news data file so editors
// can validate data/news.json before deploying.
func main() {
	var (
		outputDir = flag.String("output", "api", "Output directory for generated schemas")
		baseID    = flag.String("base-id", "https://likebatswings.com/schemas", "Base URL used for the schema $id")
	)
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		slog.Error("Failed to create output directory", "dir", *outputDir, "error", err)
		os.Exit(1)
	}

	b, err := schema.NewGenerator(*baseID).GenerateJSON("News", []domain.NewsItem{})
	if err != nil {
		slog.Error("Failed to generate news schema", "error", err)
		os.Exit(1)
	}

	out := filepath.Join(*outputDir, "news-v1.json")
	if err := os.WriteFile(out, b, 0o644); err != nil {
		slog.Error("Failed to write news schema", "path", out, "error", err)
		os.Exit(1)
	}

	slog.Info("Generated JSON schema", "path", out)
}

// Package main Like Bats Wings website
// @title Like Bats Wings Site API
// @version 1.0
// @description News feed of the Like Bats Wings band website
// @contact.name Band Office
// @contact.email hello@likebatswings.com
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	_ "github.com/DjordjeVuckovic/lbw-site/docs"
	"github.com/DjordjeVuckovic/lbw-site/internal/apperr"
	"github.com/DjordjeVuckovic/lbw-site/internal/router"
	"github.com/DjordjeVuckovic/lbw-site/internal/server"
	"github.com/DjordjeVuckovic/lbw-site/internal/site"
	"github.com/DjordjeVuckovic/lbw-site/internal/storage/factory"
	"github.com/DjordjeVuckovic/lbw-site/internal/view"
	"github.com/DjordjeVuckovic/lbw-site/web"
	pkgserver "github.com/DjordjeVuckovic/lbw-site/pkg/server"
)

func main() {
	if os.Getenv("ENV") != "production" {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	siteCfg, err := site.LoadFromFile(cfg.SiteConfigPath)
	if err != nil {
		slog.Error("Failed to load site configuration", "path", cfg.SiteConfigPath, "error", err)
		os.Exit(1)
	}

	reader, err := factory.NewReader(cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create news reader", "error", err)
		os.Exit(1)
	}

	engine, err := view.NewEngine()
	if err != nil {
		slog.Error("Failed to parse templates", "error", err)
		os.Exit(1)
	}

	health := pkgserver.All(reader, pkgserver.CheckerFunc(func(context.Context) bool {
		return engine.Has(site.PageNotFound)
	}))

	s := server.New(sCfg, health).
		SetupMiddlewares().
		SetupRenderer(engine).
		SetupStatic("/static", echo.MustSubFS(web.Static, "static")).
		SetupHealthChecks("/health").
		SetupMetrics("/metrics").
		SetupOpenApi("/swagger/*")

	router.NewNewsRouter(s.Echo, reader).Bind()

	pages := router.NewPagesRouter(s.Echo, reader, siteCfg)
	pages.Bind()
	s.SetupErrorHandler(apperr.WithErrorPages(pages.ErrorPage))

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

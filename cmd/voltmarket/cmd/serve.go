package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/voltmarket/api/openapi"
	"github.com/donaldgifford/voltmarket/internal/aggregate"
	"github.com/donaldgifford/voltmarket/internal/api/handlers"
	"github.com/donaldgifford/voltmarket/internal/api/middleware"
	"github.com/donaldgifford/voltmarket/pkg/logger"
	"github.com/donaldgifford/voltmarket/pkg/suggest"
)

const shutdownTimeout = 10 * time.Second

// backend is everything the server needs from the marketplace.
type backend interface {
	aggregate.Fetcher
	handlers.ListingWriter
	handlers.CatalogWriter
	handlers.Pinger
}

// serverDeps are the collaborators wired into the HTTP server. Uploader is
// nil when image uploads are disabled.
type serverDeps struct {
	Backend   backend
	Suggester suggest.Suggester
	Uploader  handlers.ImageUploader
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long: "Start the HTTP API serving the feed, compare, listing composition,\n" +
			"price suggestion and image upload endpoints.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := serverDeps{
		Backend:   newMarketplaceClient(cfg, log),
		Suggester: newSuggester(cfg, log),
	}
	store, err := newImageStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	if store != nil {
		deps.Uploader = store
	}

	e := newServer(deps, log)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := cfg.Server.Addr()
	log.Info("starting server",
		"addr", addr,
		"marketplace", cfg.Marketplace.BaseURL,
		"suggester", deps.Suggester.Name(),
		"images", cfg.Images.Enabled(),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("starting server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newServer builds the Echo instance with middleware, health checks, metrics and
// every API route registered.
func newServer(deps serverDeps, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	httpLog := logger.Component(log, "http")
	e.Use(middleware.RequestLog(httpLog))
	e.Use(middleware.Recovery(httpLog))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(deps.Backend)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig("VoltMarket API", Version)
	humaCfg.OpenAPIPath = ""
	humaCfg.DocsPath = ""
	api := humaecho.New(e, humaCfg)

	agg := newAggregator(deps.Backend, log)
	handlers.RegisterFeedRoutes(api, handlers.NewFeedHandler(agg))
	handlers.RegisterCompareRoutes(api, handlers.NewCompareHandler(agg))
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(agg))
	handlers.RegisterComposeRoutes(api,
		handlers.NewComposeHandler(agg, deps.Backend, logger.Component(log, "compose")))
	handlers.RegisterCatalogRoutes(api,
		handlers.NewCatalogHandler(agg, deps.Backend, logger.Component(log, "catalog")))
	handlers.RegisterSuggestRoutes(api,
		handlers.NewSuggestHandler(deps.Suggester, logger.Component(log, "suggest")))

	if deps.Uploader != nil {
		e.POST("/api/v1/images", handlers.NewImagesHandler(deps.Uploader).Upload)
	}

	openapi.RegisterRoutes(e, api)

	return e
}

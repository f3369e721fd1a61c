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

	"github.com/donaldgifford/shopsite-adapter/api/openapi"
	"github.com/donaldgifford/shopsite-adapter/internal/api/handlers"
	mw "github.com/donaldgifford/shopsite-adapter/internal/api/middleware"
	"github.com/donaldgifford/shopsite-adapter/internal/config"
	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: "Serve orders, products, inventory, session, and quota endpoints\n" +
			"backed by a single ShopSite client, plus /healthz and /metrics.",
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	e := newServer(cfg, newShopSiteClient(cfg, log), log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "store", cfg.ShopSite.BaseURL)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

// newServer builds the Echo instance with middleware, operational endpoints,
// and the Huma API routes.
func newServer(cfg *config.Config, client *shopsite.Client, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(mw.RequestLog(log), mw.Metrics(), mw.Recovery(log))

	e.GET("/healthz", handlers.Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	registerRoutes(humaecho.New(e, openapi.Config(Version)), client)

	return e
}

func registerRoutes(api huma.API, client *shopsite.Client) {
	handlers.RegisterOrderRoutes(api, handlers.NewOrdersHandler(client))
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(client))
	handlers.RegisterInventoryRoutes(api, handlers.NewInventoryHandler(client))
	handlers.RegisterSessionRoutes(api, handlers.NewSessionHandler(client.Session()))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(client.RateLimiter()))
}

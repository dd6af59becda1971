// Package main is the entry point for the shopadmin API server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"go.uber.org/fx"

	"shopadmin/config"
	"shopadmin/internal/app"
	"shopadmin/internal/domain/audit"
	"shopadmin/internal/domain/catalogs/account"
	"shopadmin/internal/domain/catalogs/product"
	"shopadmin/internal/domain/documents/order"
	"shopadmin/internal/domain/registers/metric"
	"shopadmin/internal/domain/reports"
	v1 "shopadmin/internal/infrastructure/http/v1"
	"shopadmin/internal/infrastructure/storage/memory"
	"shopadmin/internal/metadata"
	"shopadmin/internal/seed"
	"shopadmin/pkg/logger"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		app.Module,
		app.WithLogger,
		fx.Provide(
			setupMetadataRegistry,
			newRouterConfig,
			newHTTPServer,
		),
		fx.Invoke(startServer),
	).Run()
}

type routerParams struct {
	fx.In

	Logger   *logger.Logger
	Store    *memory.Store
	Journal  audit.Journal
	Accounts *account.Service
	Products *product.Service
	Orders   *order.Service
	Metrics  *metric.Service
	Reports  *reports.Service
	Registry *metadata.Registry
}

func newRouterConfig(p routerParams) v1.RouterConfig {
	return v1.RouterConfig{
		Logger:           p.Logger,
		Store:            p.Store,
		AccountService:   p.Accounts,
		ProductService:   p.Products,
		OrderService:     p.Orders,
		MetricService:    p.Metrics,
		ReportsService:   p.Reports,
		AuditJournal:     p.Journal,
		MetadataRegistry: p.Registry,
	}
}

func newHTTPServer(cfg *config.Config, routerCfg v1.RouterConfig) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort("", strconv.Itoa(cfg.HTTP.Port)),
		Handler:      v1.NewHandler(routerCfg),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}
}

type startParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config *config.Config
	Logger *logger.Logger
	Server *http.Server
	Seed   seed.Services
}

// startServer seeds the store when asked to, then serves until fx stops.
func startServer(p startParams) {
	p.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := app.SeedDemo(ctx, p.Config, p.Logger, p.Seed); err != nil {
				return fmt.Errorf("seed demo data: %w", err)
			}

			ln, err := net.Listen("tcp", p.Server.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", p.Server.Addr, err)
			}

			go func() {
				p.Logger.Infow("server starting", "addr", ln.Addr().String(), "version", v1.Version)
				if err := p.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Errorw("server failed", "error", err)
					_ = p.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Logger.Info("shutting down server...")

			shutdownCtx, cancel := context.WithTimeout(ctx, p.Config.HTTP.ShutdownTimeout)
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}
			p.Logger.Info("server stopped")
			return nil
		},
	})
}

// Package app assembles the store, repositories and services for the commands.
package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"shopadmin/config"
	"shopadmin/internal/domain/audit"
	"shopadmin/internal/domain/catalogs/account"
	"shopadmin/internal/domain/catalogs/product"
	"shopadmin/internal/domain/documents"
	"shopadmin/internal/domain/documents/order"
	"shopadmin/internal/domain/registers/metric"
	"shopadmin/internal/domain/reports"
	"shopadmin/internal/infrastructure/storage/memory"
	"shopadmin/internal/seed"
	"shopadmin/pkg/logger"
	"shopadmin/pkg/numerator"
)

// Module provides everything below the transport layer.
// The caller supplies *config.Config.
var Module = fx.Options(
	injectInfra(),
	injectRepo(),
	injectService(),
	fx.Invoke(trackChanges),
)

// WithLogger routes fx's own events to the application logger.
var WithLogger = fx.WithLogger(func(log *logger.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: log.Desugar()}
})

func injectInfra() fx.Option {
	return fx.Provide(
		NewLogger,
		NewStore,
		NewAuditJournal,
		fx.Annotate(numerator.New, fx.As(new(numerator.Generator))),
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		fx.Annotate(memory.NewAccountRepo, fx.As(new(account.Repository))),
		fx.Annotate(memory.NewProductRepo, fx.As(new(product.Repository))),
		fx.Annotate(memory.NewOrderRepo, fx.As(new(order.Repository))),
		fx.Annotate(memory.NewMetricRepo, fx.As(new(metric.Repository))),
		func(store *memory.Store) reports.Repository { return store },
	)
}

func injectService() fx.Option {
	return fx.Provide(
		documents.NewNameResolver,
		newAccountService,
		product.NewService,
		order.NewService,
		metric.NewService,
		newReportsService,
		newSeedServices,
	)
}

// NewLogger builds the zap logger from the log section.
func NewLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
}

// NewStore creates the in-memory store.
func NewStore(cfg *config.Config, log *logger.Logger) *memory.Store {
	return memory.New(
		memory.WithUniqueConstraints(cfg.Store.EnforceUnique),
		memory.WithLogger(log.WithComponent("store")),
	)
}

// NewAuditJournal returns nil when auditing is disabled.
func NewAuditJournal(cfg *config.Config) (audit.Journal, error) {
	if !cfg.Audit.Enabled {
		return nil, nil
	}
	journal, err := memory.NewAuditJournal(cfg.Audit.CompressThreshold)
	if err != nil {
		return nil, err
	}
	return journal, nil
}

func newAccountService(repo account.Repository, cfg *config.Config) *account.Service {
	return account.NewService(repo, cfg.Auth.BcryptCost)
}

func newReportsService(repo reports.Repository, orders order.Repository, products product.Repository, cfg *config.Config) *reports.Service {
	return reports.NewService(repo, orders, products, cfg.Reports.LowStockThreshold)
}

func newSeedServices(accounts *account.Service, products *product.Service, orders *order.Service, metrics *metric.Service) seed.Services {
	return seed.Services{
		Accounts: accounts,
		Products: products,
		Orders:   orders,
		Metrics:  metrics,
	}
}

type trackParams struct {
	fx.In

	Journal  audit.Journal
	Accounts *account.Service
	Products *product.Service
	Orders   *order.Service
	Metrics  *metric.Service
}

// trackChanges attaches the audit journal to every collection's hooks.
func trackChanges(p trackParams) {
	if p.Journal == nil {
		return
	}
	audit.Track(p.Accounts.Hooks(), p.Journal, "account")
	audit.Track(p.Products.Hooks(), p.Journal, "product")
	audit.Track(p.Orders.Hooks(), p.Journal, "order")
	audit.Track(p.Metrics.Hooks(), p.Journal, "metric")
}

// SeedDemo seeds the demo data when store.seedDemo is set.
func SeedDemo(ctx context.Context, cfg *config.Config, log *logger.Logger, svc seed.Services) error {
	if !cfg.Store.SeedDemo {
		return nil
	}
	_, err := seed.Demo(logger.WithLogger(ctx, log), svc)
	return err
}

// Package main seeds a fresh store with the demo data and prints the resulting dashboard.
// Useful for checking a config file and the report figures without starting the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/fx"

	"shopadmin/config"
	"shopadmin/internal/app"
	"shopadmin/internal/domain/reports"
	"shopadmin/internal/infrastructure/http/v1/dto"
	"shopadmin/internal/infrastructure/storage/memory"
	"shopadmin/internal/seed"
	"shopadmin/pkg/logger"
)

type summary struct {
	Collections map[string]int                 `json:"collections"`
	Dashboard   dto.DashboardStatsResponse     `json:"dashboard"`
	OrderStatus dto.OrderStatusSummaryResponse `json:"orderStatus"`
	LowStock    dto.LowStockResponse           `json:"lowStock"`
	Categories  dto.CategorySummaryResponse    `json:"categories"`
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	var (
		log        *logger.Logger
		store      *memory.Store
		services   seed.Services
		reportsSvc *reports.Service
	)
	container := fx.New(
		fx.Supply(cfg),
		app.Module,
		fx.NopLogger,
		fx.Populate(&log, &store, &services, &reportsSvc),
	)
	if err := container.Err(); err != nil {
		fmt.Printf("failed to build application: %v\n", err)
		os.Exit(1)
	}

	ctx := logger.WithLogger(context.Background(), log)

	if _, err := seed.Demo(ctx, services); err != nil {
		log.Fatalw("failed to seed demo data", "error", err)
	}

	out, err := buildSummary(ctx, store, reportsSvc)
	if err != nil {
		log.Fatalw("failed to build reports", "error", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalw("failed to write summary", "error", err)
	}
}

func buildSummary(ctx context.Context, store *memory.Store, svc *reports.Service) (*summary, error) {
	stats, err := svc.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := svc.OrderStatusSummary(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := svc.LowStock(ctx, 0)
	if err != nil {
		return nil, err
	}
	categories, err := svc.CategorySummary(ctx)
	if err != nil {
		return nil, err
	}

	return &summary{
		Collections: store.Counts(),
		Dashboard:   dto.FromDashboardStats(stats),
		OrderStatus: dto.FromOrderStatusSummary(byStatus),
		LowStock:    dto.FromLowStockReport(lowStock),
		Categories:  dto.FromCategorySummary(categories),
	}, nil
}

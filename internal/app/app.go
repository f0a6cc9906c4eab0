package app

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/riolentius/customer-accounts/internal/config"
	"github.com/riolentius/customer-accounts/internal/db"
	httpdelivery "github.com/riolentius/customer-accounts/internal/delivery/http"
	"github.com/riolentius/customer-accounts/internal/delivery/middleware"
	"github.com/riolentius/customer-accounts/internal/logging"
	"github.com/riolentius/customer-accounts/internal/repository/memory"
	"github.com/riolentius/customer-accounts/internal/repository/postgres"
	customeruc "github.com/riolentius/customer-accounts/internal/usecase/customer"
)

const appName = "customer-accounts"

type App struct {
	f       *fiber.App
	cfg     config.Config
	log     *zap.Logger
	closers []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, appName)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	store, closeStore, err := openStore(context.Background(), cfg, log)
	if err != nil {
		return nil, err
	}

	a := NewWithStore(cfg, log, store)
	a.closers = append(a.closers, closeStore)
	return a, nil
}

// NewWithStore wires the HTTP app around an already opened store.
func NewWithStore(cfg config.Config, log *zap.Logger, store customeruc.Store) *App {
	if log == nil {
		log = zap.NewNop()
	}
	if !cfg.AuthEnabled() {
		log.Warn("no API key configured; mutating routes are open")
	}

	f := fiber.New(fiber.Config{
		AppName:      appName,
		ErrorHandler: httpdelivery.ErrorHandler(log),
	})

	f.Use(middleware.RequestLogger(log))
	f.Use(recover.New())

	httpdelivery.RegisterRoutes(f, cfg, store, log)

	return &App{f: f, cfg: cfg, log: log}
}

func openStore(ctx context.Context, cfg config.Config, log *zap.Logger) (customeruc.Store, func(), error) {
	if cfg.StoreDriver == config.StoreMemory {
		log.Info("using in-memory customer store")
		return memory.NewCustomerStore(), func() {}, nil
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}

	log.Info("connected to postgres", zap.Int("max_conns", cfg.DBMaxConns))
	store := postgres.NewCustomerStoreAdapter(postgres.NewCustomerRepo(pool))
	return store, pool.Close, nil
}

// Fiber exposes the underlying app, mainly for app.Test in tests.
func (a *App) Fiber() *fiber.App {
	return a.f
}

func (a *App) Run() error {
	defer a.Close()
	a.log.Info("listening", zap.String("port", a.cfg.Port))
	return a.f.Listen(":" + a.cfg.Port)
}

func (a *App) Close() {
	for _, c := range a.closers {
		c()
	}
	a.closers = nil
	_ = a.log.Sync()
}

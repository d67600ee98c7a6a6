package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/kioskhub/internal/cache"
	"github.com/GlebRadaev/kioskhub/internal/config"
	"github.com/GlebRadaev/kioskhub/internal/handlers"
	"github.com/GlebRadaev/kioskhub/internal/mq"
	"github.com/GlebRadaev/kioskhub/internal/pg"
	"github.com/GlebRadaev/kioskhub/internal/repo"
	"github.com/GlebRadaev/kioskhub/internal/service"
	"github.com/GlebRadaev/kioskhub/internal/settlement"
	"github.com/GlebRadaev/kioskhub/pkg/clients"
	"github.com/GlebRadaev/kioskhub/pkg/logger"
)

const (
	sessionSweepInterval = time.Minute
	sessionMaxIdle       = 30 * time.Minute
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	ext  *settlement.Service

	closers []func() error
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.closers = append(a.closers, func() error { pool.Close(); return nil })
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, a.options(cfg))
	a.api = handlers.New(a.srv)
	a.ext = settlement.New(cfg, a.srv.Gateway, clients.NewHTTPClient())

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startSettlement(ctx)
	a.startSessionJanitor(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// options connects the optional backends. A backend that is not configured
// or cannot be reached is left out and the service runs without it.
func (a *Application) options(cfg *config.Config) service.Options {
	opts := service.Options{
		JWTSecret: cfg.JWTSecret,
		HashCost:  cfg.BcryptCost,
		FailOpen:  cfg.FailOpen,
		MockDelay: cfg.MockDelay,
	}

	if cfg.RedisAddress != "" {
		client, err := cache.NewRedisClient(cfg.RedisAddress, cfg.RedisPassword)
		if err != nil {
			zap.L().Warn("redis unavailable, kiosk cache disabled", zap.Error(err))
		} else {
			opts.Cache = cache.NewKioskStore(client, cfg.KioskCacheTTL)
			a.closers = append(a.closers, client.Close)
		}
	}

	if cfg.RabbitURL != "" {
		publisher, err := a.dialPublisher(cfg)
		if err != nil {
			zap.L().Warn("rabbitmq unavailable, payment events disabled", zap.Error(err))
		} else {
			opts.Publisher = publisher
		}
	}

	return opts
}

func (a *Application) dialPublisher(cfg *config.Config) (*mq.Publisher, error) {
	conn, err := mq.Dial(cfg.RabbitURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("cannot open channel: %w", err)
	}
	publisher, err := mq.NewPublisher(ch, cfg.PaymentExch)
	if err != nil {
		conn.Close()
		return nil, err
	}
	a.closers = append(a.closers, publisher.Close, conn.Close)
	return publisher, nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSettlement(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.ext.Start(ctx)
	}()
}

func (a *Application) startSessionJanitor(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.srv.Workflow.RunJanitor(ctx, sessionSweepInterval, sessionMaxIdle)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	a.close()
	return appErr
}

// close releases backends in reverse order of acquisition.
func (a *Application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			zap.L().Warn("close failed", zap.Error(err))
		}
	}
	a.closers = nil
}

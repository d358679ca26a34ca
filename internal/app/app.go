package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertracker/internal/config"
	"github.com/GlebRadaev/ordertracker/internal/handlers"
	"github.com/GlebRadaev/ordertracker/internal/repo"
	"github.com/GlebRadaev/ordertracker/internal/service"
	"github.com/GlebRadaev/ordertracker/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	server *http.Server

	errCh chan error
	wg    sync.WaitGroup
	ready bool
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

	return a.start(ctx, cfg)
}

// start builds the backend, services and router from cfg, then serves until
// ctx is cancelled.
func (a *Application) start(ctx context.Context, cfg *config.Config) error {
	a.cfg = cfg
	a.repo = repo.New(ctx, cfg)
	srv, err := service.New(a.repo, cfg)
	if err != nil {
		a.repo.Close()
		return fmt.Errorf("can't build services: %w", err)
	}
	a.srv = srv
	a.api = handlers.New(a.srv, cfg)

	router := chi.NewRouter()
	a.api.InitRoutes(router)
	a.server = &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: shutdownTimeout,
	}

	a.wg.Add(2)
	go a.serve()
	go a.shutdownOnDone(ctx)

	a.ready = true
	zap.L().Info("order tracker started",
		zap.String("address", cfg.Address),
		zap.String("backend", a.repo.Backend),
		zap.Bool("auth", a.srv.AuthRequired))
	return nil
}

func (a *Application) serve() {
	defer a.wg.Done()
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.errCh <- fmt.Errorf("http server exited with error: %w", err)
	}
}

// shutdownOnDone drains in-flight requests before the backend clients are
// closed.
func (a *Application) shutdownOnDone(ctx context.Context) {
	defer a.wg.Done()
	<-ctx.Done()

	sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(sCtx); err != nil {
		zap.L().Error("http server shutdown failed", zap.Error(err))
	}
	a.repo.Close()
	zap.L().Info("order tracker stopped")
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

	return appErr
}

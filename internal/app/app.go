package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/openboards/openboards-backend/internal/adapter/postgres"
	dashboardrepo "github.com/openboards/openboards-backend/internal/adapter/postgres/dashboard"
	menurepo "github.com/openboards/openboards-backend/internal/adapter/postgres/menu"
	tokenrepo "github.com/openboards/openboards-backend/internal/adapter/postgres/token"
	userrepo "github.com/openboards/openboards-backend/internal/adapter/postgres/user"
	workspacerepo "github.com/openboards/openboards-backend/internal/adapter/postgres/workspace"
	"github.com/openboards/openboards-backend/internal/adapter/rediskv"
	authjwt "github.com/openboards/openboards-backend/internal/auth"
	"github.com/openboards/openboards-backend/internal/config"
	"github.com/openboards/openboards-backend/internal/module"
	authsvc "github.com/openboards/openboards-backend/internal/service/auth"
	dashboardsvc "github.com/openboards/openboards-backend/internal/service/dashboard"
	menusvc "github.com/openboards/openboards-backend/internal/service/menu"
	navigationsvc "github.com/openboards/openboards-backend/internal/service/navigation"
	"github.com/openboards/openboards-backend/internal/transport/middleware"
	"github.com/openboards/openboards-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, builds the
// dependency graph bottom-up and serves HTTP until ctx is cancelled,
// then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	// Selection store: Redis when configured, in-process map otherwise.
	var selections rediskv.KV
	if cfg.Redis.Addr != "" {
		client, err := rediskv.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		selections = rediskv.NewRedisKV(client)
	} else {
		logger.Warn("redis not configured, using in-memory selection store")
		selections = rediskv.NewMemoryKV()
	}

	dashboards := dashboardrepo.New(pool)
	workspaces := workspacerepo.New(pool)
	menus := menurepo.New(pool)
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := authjwt.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	dashboardService := dashboardsvc.NewService(logger, dashboards, workspaces)
	menuService := menusvc.NewService(logger, menus, dashboards, workspaces, txManager)
	navigationService := navigationsvc.NewService(logger, dashboards, workspaces, menus, selections, cfg.Navigation)

	registry := module.DefaultRegistry()
	loader := module.NewLoader(logger, registry, module.NewRemoteResolver(cfg.Modules))
	mount := module.NewMount(logger, loader, registry)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handlers := rest.Handlers{
		Auth:       rest.NewAuthHandler(authService, logger),
		Navigation: rest.NewNavigationHandler(navigationService, mount, logger),
		Dashboard:  rest.NewDashboardHandler(dashboardService, logger),
		Menu:       rest.NewMenuHandler(menuService, logger),
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
	}

	router := rest.NewRouter(logger, cfg, handlers, middleware.Auth(jwtManager), limiter)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httptransport "github.com/plantnet/marketplace/internal/api/http"
	"github.com/plantnet/marketplace/internal/api/http/handlers"
	"github.com/plantnet/marketplace/internal/auth"
	"github.com/plantnet/marketplace/internal/cache"
	"github.com/plantnet/marketplace/internal/config"
	"github.com/plantnet/marketplace/internal/events"
	"github.com/plantnet/marketplace/internal/observability"
	"github.com/plantnet/marketplace/internal/persistence"
	"github.com/plantnet/marketplace/internal/repository"
	"github.com/plantnet/marketplace/internal/service"
	"github.com/plantnet/marketplace/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to configure mongo", zap.Error(err))
	}
	defer func() {
		closeCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		store.Close(closeCtx)
	}()

	db := store.Database()

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	var roleCache cache.RoleCache
	var redisProbe handlers.Pinger
	if redis != nil {
		roleCache = cache.NewRedisRoleCache(redis.Cmdable(), cfg.Redis.RoleCacheTTL())
		redisProbe = redis
	}

	dispatcher := events.NewInMemoryDispatcher(func(event events.Event, err error) {
		logger.Warn("event handler failed", zap.String("type", string(event.Type)), zap.Error(err))
	})

	userService := service.NewUserService(service.UserDependencies{
		UserRepo:   repository.NewUserRepository(db),
		Roles:      roleCache,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	plantService := service.NewPlantService(repository.NewPlantRepository(db), dispatcher)
	orderService := service.NewOrderService(repository.NewOrderRepository(db), dispatcher)
	authService := service.NewAuthService(cfg.Auth)

	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger, metrics))

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), cfg.Auth.CookieName)
	cookie := auth.CookieSettings{Name: cfg.Auth.CookieName, CrossSite: cfg.App.IsProduction()}

	app := httptransport.NewApp(cfg.App.Name)
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.CORS)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store, redisProbe),
		Users:          handlers.NewUsersHandler(userService),
		Auth:           handlers.NewAuthHandler(authService, cookie),
		Plants:         handlers.NewPlantsHandler(plantService),
		Orders:         handlers.NewOrdersHandler(orderService),
		AuthMiddleware: authMiddleware,
		Roles:          userService,
		Metrics:        metrics,
	})

	go func() {
		logger.Info("plantNet is running", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"basegraph.app/taskhub/common/id"
	"basegraph.app/taskhub/common/logger"
	"basegraph.app/taskhub/common/metrics"
	"basegraph.app/taskhub/common/otel"
	"basegraph.app/taskhub/core/config"
	"basegraph.app/taskhub/core/db"
	dbsqlite "basegraph.app/taskhub/core/db/sqlite"
	"basegraph.app/taskhub/internal/http/middleware"
	httprouter "basegraph.app/taskhub/internal/http/router"
	"basegraph.app/taskhub/internal/queue"
	"basegraph.app/taskhub/internal/service"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "taskhub starting", "env", cfg.Env, "storage", cfg.StorageDriver)
	if err := id.Init(cfg.NodeID); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	sessions, eventProducer, closeBackends, err := openBackends(ctx, cfg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to start backends", "error", err)
		os.Exit(1)
	}
	defer closeBackends()

	services := service.NewServices(service.ServicesConfig{
		Sessions: sessions,
		Events:   eventProducer,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

// Replaced in tests.
var (
	openStorageFn      = openStorage
	newEventProducerFn = newEventProducer
)

// openBackends opens storage and the event producer. On failure nothing is
// left open; on success the returned func closes both.
func openBackends(ctx context.Context, cfg config.Config) (service.SessionRunner, queue.Producer, func(), error) {
	sessions, closeStorage, err := openStorageFn(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening %s storage: %w", cfg.StorageDriver, err)
	}

	events, err := newEventProducerFn(ctx, cfg.Events)
	if err != nil {
		closeStorage()
		return nil, nil, nil, fmt.Errorf("connecting events producer: %w", err)
	}

	closeAll := func() {
		if err := events.Close(); err != nil {
			slog.Error("events producer close error", "error", err)
		}
		closeStorage()
	}
	return sessions, events, closeAll, nil
}

// openStorage connects the configured backend and creates the schema if absent.
func openStorage(ctx context.Context, cfg config.Config) (service.SessionRunner, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		database, err := db.New(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, nil, err
		}
		slog.InfoContext(ctx, "database connected")
		return service.NewSessionRunner(database), database.Close, nil

	case config.StorageDriverSQLite:
		database, err := dbsqlite.Open(ctx, cfg.SQLite)
		if err != nil {
			return nil, nil, err
		}
		slog.InfoContext(ctx, "sqlite opened", "path", cfg.SQLite.Path)
		closeFn := func() {
			if err := database.Close(); err != nil {
				slog.Error("sqlite close error", "error", err)
			}
		}
		return service.NewSQLiteSessionRunner(database), closeFn, nil
	}

	return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
}

func newEventProducer(ctx context.Context, cfg config.EventsConfig) (queue.Producer, error) {
	if !cfg.Enabled() {
		slog.InfoContext(ctx, "activity events disabled (no redis url configured)")
		return queue.NewNoopProducer(), nil
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, err
	}
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Stream)

	return queue.NewRedisProducer(redisClient, cfg.Stream, slog.Default()), nil
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()
	reg := metrics.NewRegistry()

	// Order matters: OTel creates span → RequestID tags context → Logger sees the final status → Recovery turns panics into 500s
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.RequestID(cfg.HTTP.RequestIDHeader))
	router.Use(middleware.Logger("/health", "/metrics"))
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics(metrics.NewHTTP(reg)))

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		MetricsHandler: metrics.Handler(reg),
	})

	return router
}

const banner = `
████████╗ █████╗ ███████╗██╗  ██╗██╗  ██╗██╗   ██╗██████╗
╚══██╔══╝██╔══██╗██╔════╝██║ ██╔╝██║  ██║██║   ██║██╔══██╗
   ██║   ███████║███████╗█████╔╝ ███████║██║   ██║██████╔╝
   ██║   ██╔══██║╚════██║██╔═██╗ ██╔══██║██║   ██║██╔══██╗
   ██║   ██║  ██║███████║██║  ██╗██║  ██║╚██████╔╝██████╔╝
   ╚═╝   ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝ ╚═════╝
`

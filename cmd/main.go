package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-calendar-notify/internal/app"
	"github.com/KasumiMercury/primind-calendar-notify/internal/config"
	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
	"github.com/KasumiMercury/primind-calendar-notify/internal/infra/cache"
	"github.com/KasumiMercury/primind-calendar-notify/internal/infra/handler"
	"github.com/KasumiMercury/primind-calendar-notify/internal/infra/notifier"
	"github.com/KasumiMercury/primind-calendar-notify/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-calendar-notify/internal/infra/push"
	"github.com/KasumiMercury/primind-calendar-notify/internal/infra/repository"
	"github.com/KasumiMercury/primind-calendar-notify/internal/infra/timer"
	"github.com/KasumiMercury/primind-calendar-notify/internal/observability/logging"
	"github.com/KasumiMercury/primind-calendar-notify/internal/observability/metrics"
	"github.com/KasumiMercury/primind-calendar-notify/internal/observability/middleware"
)

// Version is set at build time with -ldflags.
var Version = "dev"

const instrumentationName = "github.com/KasumiMercury/primind-calendar-notify"

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	if err := cfg.PubSub.Validate(); err != nil {
		slog.Error("pubsub configuration error", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("failed to shutdown observability", "error", err)
		}
	}()

	db, err := initDatabase(cfg.Database, cfg.Log)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		return 1
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get underlying sql.DB", "error", err)
		return 1
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
	}()

	directory, closeDirectory, err := initDirectory(cfg.Cache, db)
	if err != nil {
		slog.Error("failed to initialize endpoint directory", "error", err)
		return 1
	}
	defer closeDirectory()

	transport, err := push.NewFCMTransport(ctx, push.FCMConfig{
		ProjectID:       cfg.Push.ProjectID,
		CredentialsFile: cfg.Push.CredentialsFile,
		DryRun:          cfg.Push.DryRun,
	})
	if err != nil {
		slog.Error("failed to initialize push transport", "error", err)
		return 1
	}

	meter := obs.Metrics.Meter(instrumentationName)

	dispatchMetrics, err := metrics.NewDispatchMetrics(meter)
	if err != nil {
		slog.Error("failed to create dispatch metrics", "error", err)
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics(meter)
	if err != nil {
		slog.Error("failed to create http metrics", "error", err)
		return 1
	}

	changeUseCase := app.NewChangeNotificationUseCase(
		app.NewRecipientResolver(directory),
		app.NewTokenAggregator(directory, cfg.FanOut.AggregatorConcurrency),
		app.NewFanOutDispatcher(transport, directory, dispatchMetrics),
	)

	publisher, err := initPublisher(ctx, cfg)
	if err != nil {
		slog.Error("failed to create publisher", "error", err)
		return 1
	}

	var alertPublisher notifier.AlertPublisher
	if publisher != nil {
		alertPublisher = publisher
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Warn("failed to close publisher", "error", err)
			}
		}()
	}

	center := notifier.NewNotificationCenter(alertPublisher)

	var alarmUseCase app.AlarmUseCase

	alarmTimer := timer.NewCronTimer(
		func(ctx context.Context, payload string) {
			alarmUseCase.HandleAlarmFired(logging.WithModule(ctx, logging.ModuleAlarm), payload)
		},
		timer.WithIdleBypass(cfg.Alarm.IdleBypass),
		timer.WithLocation(cfg.Alarm.Location),
		timer.WithLogger(slog.Default()),
	)
	alarmUseCase = app.NewAlarmUseCase(alarmTimer, center)

	alarmTimer.Start()
	defer func() {
		<-alarmTimer.Stop().Done()
	}()

	slog.Info("alarm timer started",
		"idle_bypass", cfg.Alarm.IdleBypass,
		"timezone", cfg.Alarm.Location.String(),
	)

	msgRouter, err := initChangeConsumer(cfg, changeUseCase)
	if err != nil {
		slog.Error("failed to initialize change consumer", "error", err)
		return 1
	}

	if msgRouter != nil {
		go func() {
			if err := msgRouter.Run(ctx); err != nil {
				slog.Error("message router stopped", "error", err)
			}
		}()
		defer func() {
			if err := msgRouter.Close(); err != nil {
				slog.Warn("failed to close message router", "error", err)
			}
		}()
	}

	router := setupRouter(
		handler.NewChangeHandler(changeUseCase),
		handler.NewAlarmHandler(alarmUseCase, alarmTimer),
		httpMetrics,
	)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", "address", cfg.Server.Address(), "version", Version)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", "error", err)
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", "error", err)
		return 1
	}
}

func initDatabase(cfg config.DatabaseConfig, logCfg config.LogConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logging.NewGormLogger(cfg.SlowThreshold, logging.ParseLevel(logCfg.Level)),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// initDirectory wraps the postgres directory with the redis cache when
// REDIS_URL is set.
func initDirectory(cfg config.CacheConfig, db *gorm.DB) (domain.EndpointDirectory, func(), error) {
	directory := repository.NewEndpointDirectory(db)

	if cfg.RedisURL == "" {
		slog.Warn("REDIS_URL not set, endpoint cache disabled")
		return directory, func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}

	client := redis.NewClient(opts)

	slog.Info("endpoint cache enabled", "ttl", cfg.EndpointTTL)

	return cache.NewCachedEndpointDirectory(directory, client, cfg.EndpointTTL), func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}, nil
}

func initChangeConsumer(cfg *config.Config, useCase app.ChangeNotificationUseCase) (*message.Router, error) {
	subscriber, err := initSubscriber(cfg)
	if err != nil {
		return nil, err
	}

	if subscriber == nil {
		return nil, nil
	}

	msgRouter, err := pubsub.NewRouter()
	if err != nil {
		return nil, err
	}

	if err := pubsub.RegisterChangeConsumer(msgRouter, subscriber, pubsub.NewChangeConsumer(useCase)); err != nil {
		return nil, err
	}

	return msgRouter, nil
}

func setupRouter(changeHandler *handler.ChangeHandler, alarmHandler *handler.AlarmHandler, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Gin(middleware.GinConfig{
			SkipPaths:      []string{"/ping"},
			Module:         logging.ModuleChange,
			ModuleResolver: resolveModule,
			TracerName:     instrumentationName,
			HTTPMetrics:    httpMetrics,
		}),
		middleware.PanicRecoveryGin(),
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1")
	changeHandler.RegisterRoutes(v1)
	alarmHandler.RegisterRoutes(v1)

	return router
}

func resolveModule(c *gin.Context) logging.Module {
	if strings.HasPrefix(c.Request.URL.Path, "/api/v1/alarms") {
		return logging.ModuleAlarm
	}

	return ""
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hr-dashboard-api/internal/config"
	"hr-dashboard-api/internal/database"
	"hr-dashboard-api/internal/handlers"
	"hr-dashboard-api/internal/logging"
	"hr-dashboard-api/internal/metrics"
	"hr-dashboard-api/internal/realtime"
	"hr-dashboard-api/internal/routes"
	"hr-dashboard-api/internal/service"
	"hr-dashboard-api/internal/store"
	"hr-dashboard-api/internal/store/mongostore"
	"hr-dashboard-api/internal/store/sqlstore"

	"github.com/gin-gonic/gin"
)

func main() {
	os.Exit(run())
}

// run owns every deferred cleanup; main only converts its result into an exit code.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		return 1
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	st, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.DBDriver, "err", err)
		return 1
	}
	defer st.Close()

	hub := realtime.NewHub(logger)
	svc, err := service.New(st, service.WithPublisher(hub), service.WithLogger(logger))
	if err != nil {
		logger.Error("service initiation failed", "err", err)
		return 1
	}

	m := metrics.New()
	m.ObserveSubscribers(hub.Len)

	router := routes.SetupRoutes(routes.Dependencies{
		Handler: handlers.New(svc, logger),
		Hub:     hub,
		Metrics: m,
		Logger:  logger,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("server starting", "addr", cfg.Addr(), "driver", cfg.DBDriver)
	logger.Info("API endpoints",
		"employees", "GET|POST /employees, GET|PUT|DELETE /employees/:id",
		"tasks", "GET|POST /tasks, GET|PUT|DELETE /tasks/:id",
		"other", "GET /stats /health /ready /metrics /ws",
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	// an error return still runs the deferred store Close
	if err := serve(server, stop, cfg.ShutdownTimeout, logger); err != nil {
		logger.Error("server failed", "err", err)
		return 1
	}
	logger.Info("shut down gracefully")
	return 0
}

// serve runs server until it fails or stop fires, then shuts it down within timeout.
func serve(server *http.Server, stop <-chan os.Signal, timeout time.Duration, logger *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-stop:
		logger.Info("shut down signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return server.Shutdown(ctx)
}

func openStore(cfg config.Config, logger *slog.Logger) (store.Store, error) {
	if cfg.DBDriver == config.DriverMongo {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return mongostore.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
	}

	db, err := database.Open(cfg.DBDriver, cfg.DatabaseURL, database.GormLogLevel(logging.ParseLevel(cfg.LogLevel)))
	if err != nil {
		return nil, err
	}
	logger.Debug("sql store ready", "driver", cfg.DBDriver)
	return sqlstore.New(db), nil
}

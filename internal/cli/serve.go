package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"comments-api/internal/auth"
	"comments-api/internal/config"
	"comments-api/internal/handler"
	"comments-api/internal/infrastructure/database"
	"comments-api/internal/logger"
	"comments-api/internal/metrics"
	"comments-api/internal/repository"
	"comments-api/internal/server"
	"comments-api/internal/service"
	"comments-api/internal/validator"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger.Configure(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	commentService := service.NewCommentService(store, validator.NewValidator())

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(server.Deps{
		Comments:  handler.NewCommentHandler(commentService),
		Health:    handler.NewHealthHandler(store),
		Verifier:  auth.NewVerifier(cfg.JWTSecret),
		AccessLog: true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
	return nil
}

// openStore builds the repository selected by STORE_DRIVER. The returned
// func releases whatever the store holds.
func openStore(ctx context.Context, cfg *config.Config) (repository.CommentRepository, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("Using in-memory store; comments are lost on exit")
		return repository.NewMemoryCommentRepository(), func() {}, nil
	}

	if cfg.DBAutoMigrate {
		if err := database.Migrate(cfg.DatabaseURL(), database.Up); err != nil {
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("Database schema is up to date")
	}

	pool, err := database.NewPostgres(ctx, poolConfig(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	collector := metrics.NewPoolStatsCollector(pool)
	collector.Start(cfg.MetricsPoolInterval)

	return repository.NewPostgresCommentRepository(pool), func() {
		collector.Stop()
		pool.Close()
	}, nil
}

func poolConfig(cfg *config.Config) database.PoolConfig {
	return database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}
}

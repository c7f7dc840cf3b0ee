package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/godilite/catalyst360/api/v1"
	"github.com/godilite/catalyst360/internal/config"
	"github.com/godilite/catalyst360/internal/framework"
	handler "github.com/godilite/catalyst360/internal/grpc"
	"github.com/godilite/catalyst360/internal/repository"
	"github.com/godilite/catalyst360/internal/service"
	"github.com/godilite/catalyst360/pkg/cache"
	dbbuilder "github.com/godilite/catalyst360/pkg/database"
	grpcsrv "github.com/godilite/catalyst360/pkg/grpc/server"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      handler.Cacher
	grpcServer *grpcsrv.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	fw := framework.Default()

	dsn := cfg.DBPath
	if cfg.DBDriver == "sqlite3" {
		dsn = dbbuilder.SQLiteDSN(dsn)
	}
	dbOpts := []dbbuilder.Option{
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(dsn),
		dbbuilder.WithInit(repository.Migrate),
	}
	if cfg.DBPath == ":memory:" {
		dbOpts = append(dbOpts, dbbuilder.WithMaxOpenConns(1))
	}
	dbPool, err := dbbuilder.New(dbOpts...)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	var cacheClient handler.Cacher = cache.Nop{}
	if cfg.CacheEnabled {
		c, err := cache.New(ctx,
			cache.WithAddress(cfg.RedisAddr),
			cache.WithPassword(cfg.RedisPassword),
			cache.WithDB(cfg.RedisDB),
			cache.WithPrefix("catalyst360:"),
		)
		if err != nil {
			_ = dbPool.Close()
			return nil, fmt.Errorf("cache init failed: %w", err)
		}
		cacheClient = c
		logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))
	} else {
		logger.Info("Cache disabled, reads go to the database")
	}

	feedbackRepo := repository.NewFeedbackRepository(dbPool)

	feedbackService := service.NewFeedbackService(feedbackRepo, fw, cfg.Policy(), logger)
	reportService := service.NewReportService(feedbackService, logger)
	adminService := service.NewAdminService(feedbackRepo, cfg.Policy(), logger)

	grpcHandlers := handler.NewGRPCHandlers(feedbackService, reportService, adminService, cacheClient, logger, cfg.CacheTTL)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
		grpcsrv.WithLogging(cfg.GRPCLoggingEnabled),
		grpcsrv.WithRecovery(true),
	)
	if err != nil {
		_ = cacheClient.Close()
		_ = dbPool.Close()
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterServiceWithHealth(pb.Feedback_ServiceDesc.ServiceName, func(s *grpc.Server) {
		pb.RegisterFeedbackServer(s, grpcHandlers)
	})

	return &App{
		logger:     logger,
		dbPool:     dbPool,
		cache:      cacheClient,
		grpcServer: grpcServer,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return a.Shutdown(ctx)
}

// Shutdown stops the gRPC server, then releases the cache and database.
func (a *App) Shutdown(ctx context.Context) error {
	serverErr := a.grpcServer.Shutdown(ctx)
	if serverErr != nil {
		a.logger.Warn("gRPC server did not stop gracefully", zap.Error(serverErr))
	}

	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	if serverErr == nil {
		a.logger.Info("graceful shutdown completed successfully")
	}

	_ = a.logger.Sync()
	return serverErr
}

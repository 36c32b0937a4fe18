package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/LavaJover/cognit-service/internal/app/background"
	"github.com/LavaJover/cognit-service/internal/app/setup"
	"github.com/LavaJover/cognit-service/internal/config"
	"github.com/LavaJover/cognit-service/internal/delivery/grpcapi"
	"github.com/LavaJover/cognit-service/internal/delivery/http/router"
	"github.com/LavaJover/cognit-service/internal/infrastructure/logger"
	"github.com/LavaJover/cognit-service/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	zapLogger, err := logger.Init(cfg.LogConfig)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, err := setup.InitializeDependencies(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to init dependencies", zap.Error(err))
	}
	defer deps.Publisher.Close()

	sqlDB, err := deps.DB.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	engineMetrics := metrics.NewEngineMetrics(prometheus.DefaultRegisterer)
	useCases, err := setup.InitializeUseCases(deps, engineMetrics)
	if err != nil {
		zapLogger.Fatal("failed to init usecases", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// gRPC health
	healthServer := grpcapi.NewHealthServer()
	grpcServer := grpcapi.NewServer(zapLogger, healthServer)
	background.NewBackgroundTasks(sqlDB, healthServer, zapLogger).StartAll(ctx)

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.GRPCServer.Host, cfg.GRPCServer.Port))
	if err != nil {
		zapLogger.Fatal("failed to listen", zap.Error(err))
	}
	go func() {
		zapLogger.Info("gRPC server started", zap.String("addr", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil {
			zapLogger.Error("gRPC server stopped", zap.Error(err))
		}
	}()

	// HTTP API
	engine := router.Setup(zapLogger, setup.InitializeHandlers(zapLogger, sqlDB, useCases), router.Options{
		AllowedOrigins:  cfg.HTTPServer.AllowedOrigins,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		AdminAPIKey:     cfg.Admin.APIKey,
	})
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		zapLogger.Info("HTTP server started", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("failed to serve http", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("http shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()
}

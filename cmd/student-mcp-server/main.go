package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/noah-isme/student-context-mcp/api/swagger"
	"github.com/noah-isme/student-context-mcp/internal/handler"
	"github.com/noah-isme/student-context-mcp/internal/mcpserver"
	"github.com/noah-isme/student-context-mcp/internal/models"
	"github.com/noah-isme/student-context-mcp/internal/repository"
	"github.com/noah-isme/student-context-mcp/internal/service"
	"github.com/noah-isme/student-context-mcp/pkg/config"
	"github.com/noah-isme/student-context-mcp/pkg/logger"
)

// @title Student Context MCP
// @version 1.0.0
// @description Read-only student enrollment context over MCP and JSON
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg.Env, cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := models.NewValidator()
	store, err := repository.NewStore(repository.DefaultSeed(), validate)
	if err != nil {
		logr.Fatal("failed to load seed data", zap.Error(err))
	}
	students, enrollments, topics := store.Counts()
	logr.Info("store loaded",
		zap.Int("students", students),
		zap.Int("enrollments", enrollments),
		zap.Int("topics", topics),
	)

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	queries := service.NewQueryService(store, logr)
	registry := service.NewRegistry(queries, validate, metrics)
	mcpSrv := mcpserver.New(cfg.MCP, registry, logr)

	r := handler.NewRouter(handler.RouterDeps{
		Config:   cfg,
		Logger:   logr,
		Registry: registry,
		Metrics:  metrics,
		MCP:      mcpSrv.HTTPHandler(),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting",
			"addr", srv.Addr,
			"env", cfg.Env,
			"mcp_endpoint", cfg.MCP.EndpointPath,
			"stateless", cfg.MCP.Stateless,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}

package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	grpchealth "google.golang.org/grpc/health"

	"github.com/KirkDiggler/monster-codex/internal/config"
	"github.com/KirkDiggler/monster-codex/internal/errors"
	v1 "github.com/KirkDiggler/monster-codex/internal/handlers/http/v1"
	"github.com/KirkDiggler/monster-codex/internal/health"
	"github.com/KirkDiggler/monster-codex/internal/pkg/logging"
)

const (
	shutdownTimeout     = 30 * time.Second
	healthCheckInterval = 30 * time.Second
)

var (
	httpAddr     string
	grpcPort     int
	redisEnabled bool
	logLevel     string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the catalog API server",
	Long:  `Start the REST catalog API with Prometheus metrics and the gRPC health service.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&httpAddr, "http-addr", "", "REST listen address (overrides http.addr)")
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC health port (overrides grpc.port)")
	serverCmd.Flags().BoolVar(&redisEnabled, "redis", false, "use Redis for the page cache and preferences (overrides redis.enabled)")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (overrides log.level)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyServerFlags(cmd, cfg)

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close(logger)

	healthServer := grpchealth.NewServer()
	checker, err := health.NewChecker(&health.CheckerConfig{
		Probes: a.probes,
		Health: healthServer,
		Logger: logger.Named("health"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create health checker")
	}

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		Catalog:     a.catalog,
		Preferences: a.preferences,
		Checker:     checker,
		Metrics:     promhttp.Handler(),
		Logger:      logger.Named("http"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create http handler")
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPC.Port))
	if err != nil {
		return errors.Wrapf(err, "failed to listen on grpc port %d", cfg.GRPC.Port)
	}
	grpcServer := health.NewGRPCServer(logger.Named("grpc"), healthServer)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server starting", zap.String("addr", cfg.HTTP.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "http server failed")
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("grpc health server starting", zap.Int("port", cfg.GRPC.Port))
		if err := grpcServer.Serve(lis); err != nil {
			return errors.Wrap(err, "grpc server failed")
		}
		return nil
	})

	g.Go(func() error {
		return checker.Run(gctx, healthCheckInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		checker.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http shutdown did not complete", zap.Error(err))
		}

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-shutdownCtx.Done():
			logger.Warn("graceful shutdown timeout exceeded, forcing stop")
			grpcServer.Stop()
		case <-stopped:
			logger.Info("server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}

func applyServerFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("http-addr") {
		cfg.HTTP.Addr = httpAddr
	}
	if flags.Changed("port") {
		cfg.GRPC.Port = grpcPort
	}
	if flags.Changed("redis") {
		cfg.Redis.Enabled = redisEnabled
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/gateway"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/server"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/views"
	"github.com/shubham-shewale/uptip/pkg/config"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP server and live ticker",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if addr != "" {
				cfg.App.Port = addr
			}
			logger, err := config.NewLogger(cfg.Logger)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer logger.Sync()

			return serve(cmd.Context(), cfg, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides APP_PORT")
	return cmd
}

func serve(parent context.Context, cfg *config.Config, logger *zap.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		a.close()
		return fmt.Errorf("parse templates: %w", err)
	}

	srv := server.New(a.shell, renderer, server.Options{
		Addr:    cfg.App.Port,
		Hub:     a.hub,
		Limiter: gateway.NewIPRateLimiter(cfg.Gateway.WSRate, cfg.Gateway.WSBurst),
		Live:    a.live,
		Metrics: a.metrics,
		Rand:    views.NewRand(cfg.Ticker.Seed),
	}, logger)

	if err := a.shell.Start(ctx); err != nil {
		a.close()
		return fmt.Errorf("start ticker: %w", err)
	}
	logger.Info("Dashboard starting",
		zap.String("addr", cfg.App.Port),
		zap.String("feed", cfg.Gateway.Feed),
		zap.Bool("kafka", cfg.Kafka.Enabled),
		zap.Duration("tick", cfg.Ticker.Interval),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	if cerr := a.close(); cerr != nil {
		logger.Error("Shutdown incomplete", zap.Error(cerr))
	}
	logger.Info("Dashboard exited")
	return err
}

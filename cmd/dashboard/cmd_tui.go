package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/shell"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/ticker"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/tui"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/views"
	"github.com/shubham-shewale/uptip/pkg/config"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the dashboard in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()

			// stderr belongs to the terminal UI
			logger := zap.NewNop()

			sh := shell.New(logger)
			sh.Attach(ticker.NewTicker(
				logger,
				sh,
				ticker.NewRealRand(cfg.Ticker.Seed),
				ticker.RealClock{},
				cfg.Ticker.Interval,
				cfg.Ticker.Source,
			))
			if err := sh.Start(ctx); err != nil {
				return err
			}
			defer sh.Close()

			return tui.Run(ctx, sh, views.NewRand(cfg.Ticker.Seed))
		},
	}
}

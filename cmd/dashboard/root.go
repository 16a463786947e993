package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "uptip",
		Short: "UNOC PetroTrade Intelligence Platform dashboard",
		Long: `uptip serves the petroleum trading dashboard: ten views over a shared
set of simulated live metrics, with SSE and websocket live feeds.

Configuration comes from .env, the environment and built-in defaults
(APP_PORT, TICKER_INTERVAL, GATEWAY_FEED, KAFKA_ENABLED, ...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newRenderCmd(),
		newViewsCmd(),
		newTUICmd(),
	)
	return root
}

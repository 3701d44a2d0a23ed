package main

import (
	"github.com/spf13/cobra"

	"github.com/raymondkneipp/cash-money/internal/calculation"
	"github.com/raymondkneipp/cash-money/internal/logging"
	"github.com/raymondkneipp/cash-money/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve projections over HTTP (POST /v1/projection)",
	Long: `Starts a stateless HTTP API. Every request carries a full scenario
snapshot, so whichever store owns the records just POSTs again when they
change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New(verbose)
		engine := calculation.NewEngine()
		engine.SetLogger(logger)
		return server.New(engine, logger).ListenAndServe(serveAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/keyword-scout/internal/config"
	"github.com/jonathan/keyword-scout/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP server exposing the keyword research pipeline.

Endpoints:
  POST /analyze         Run a full analysis and return the report
  POST /analyze/stream  Run an analysis with progress streamed over SSE
  GET  /health          Health check

Required environment variables:
  GEMINI_API_KEY        Gemini API key for keyword generation and research
  DATAFORSEO_LOGIN      DataForSEO account login
  DATAFORSEO_PASSWORD   DataForSEO account password

Optional environment variables:
  FIRECRAWL_API_KEY     Use Firecrawl for scraping instead of the local scraper
  RATE_LIMIT_ENABLED    Enable request rate limiting (default: true)`,
	RunE: runServeCmd,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServeCmd(cmd *cobra.Command, args []string) error {
	srv, err := server.New(server.Config{
		Port:        servePort,
		Credentials: config.CredentialsFromEnv(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

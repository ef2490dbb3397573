// ABOUTME: Serve command starts the HTTP API
// ABOUTME: Wires config, storage, LLM gateway, and the gin router together
package commands

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studypilot/internal/server"
	"studypilot/internal/storage/sqlite"
)

var serveAddr string

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Serves the full study API: document upload, quiz generation, Q&A,
study schedules, summaries, flashcards, user accounts, and quiz
history. The address defaults to STUDYPILOT_ADDR or :5000.`,
		RunE: runServe,
		Example: `  # Start on the default address
  studypilot serve

  # Start on a custom port
  studypilot serve --addr :8080`,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides STUDYPILOT_ADDR)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	study, cfg, err := buildStudy()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	store, err := sqlite.NewStorage(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	srv := server.New(study, store, sugar)
	sugar.Infow("starting HTTP server", "addr", cfg.Addr, "db", cfg.DBPath)
	return srv.Router().Run(cfg.Addr)
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nfrund/goby-forms/internal/app"
	"github.com/nfrund/goby-forms/internal/config"
	"github.com/nfrund/goby-forms/internal/logging"
	"github.com/nfrund/goby-forms/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Loads configuration from .env and the environment, then serves the
index and password pages until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s, err := buildServer(ctx)
		if err != nil {
			return err
		}
		return s.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides APP_ADDR")
	rootCmd.AddCommand(serveCmd)
}

// buildServer loads configuration and wires a server with all modules booted.
func buildServer(ctx context.Context) (*server.Server, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	slog.Debug("Configuration loaded", "addr", cfg.Addr, "app_name", cfg.AppName, "rate_limit", cfg.PostRateLimit)

	s, err := server.New(app.NewInjector(cfg, logger), app.NewModules())
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}
	if err := s.InitModules(ctx); err != nil {
		return nil, err
	}
	s.RegisterRoutes()
	return s, nil
}

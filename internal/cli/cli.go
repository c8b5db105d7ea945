// Package cli holds the lifecycle command tree and the server bootstrap
// shared with cmd/server.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/osa911/lifecycle/internal/config"
	"github.com/osa911/lifecycle/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "lifecycle",
	Short: "LifeCycle website server and tools",
	Long: `LifeCycle serves the marketing website with its contact form and
provides tools to exercise the contact pipeline from the terminal.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the command tree
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.GetGlobalLogger().Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

// loadConfig reads configuration and installs the global logger from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logConfig := &logging.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
		Requests:   cfg.LogRequests,
	}
	if err := logConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}
	if err := logging.InitLogger(logConfig); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

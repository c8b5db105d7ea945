package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/osa911/lifecycle/internal/config"
	"github.com/osa911/lifecycle/internal/logging"
	"github.com/osa911/lifecycle/internal/server"
	"github.com/osa911/lifecycle/internal/tracing"
	"github.com/osa911/lifecycle/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the website server",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		return RunServer(port)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "Port to listen on (overrides PORT)")
}

// RunServer loads configuration and serves until interrupted.
func RunServer(port string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Port = port
	}

	ctx, stop := signalContext()
	defer stop()

	return serve(ctx, cfg)
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting LifeCycle %s in %s mode", version.Info(), cfg.Environment)

	shutdownTracing, err := tracing.Setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("Tracing shutdown failed: %v", err)
		}
	}()

	srv := server.NewServer(cfg)
	if err := srv.Init(); err != nil {
		return err
	}
	return srv.Start(ctx)
}

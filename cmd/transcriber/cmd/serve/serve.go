package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deepgram-transcriber/internal/app"
	"deepgram-transcriber/internal/app/logging"
	"deepgram-transcriber/internal/config"
)

var shutdownTimeout time.Duration

func init() {
	Cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second,
		"how long in-flight transcriptions may run after a stop signal")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the upload page and the JSON API",
	Long: `Start the upload page and the JSON API

- GET / serves the upload page, POST /api/v1/transcriptions the JSON API
- HOST, PORT and ENVIRONMENT are read from the environment or .env`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		configPath, _ := cmd.Flags().GetString("config")

		logger, err := logging.NewLogger(verbose)
		if err != nil {
			return err
		}
		defer logger.Sync()

		apiKeys, err := config.GetAPIKeys()
		if err != nil {
			return err
		}
		if err := config.RequireAPIKeys(apiKeys); err != nil {
			return err
		}

		srv, err := app.InitializeServer(app.ConfigPath(configPath), logging.NewSlogLogger(logger))
		if err != nil {
			return fmt.Errorf("failed to initialize server: %w", err)
		}

		if err := srv.Start(); err != nil {
			return err
		}
		logger.Info("Transcriber listening", zap.String("addr", srv.Addr()))

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		logger.Info("Shutting down", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

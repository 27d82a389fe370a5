package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wedding-planner/internal/wire"
	"wedding-planner/pkg/auth"
	"wedding-planner/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var skipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply the schema on start")
	rootCmd.AddCommand(serveCmd)
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.close()

	rt.logger.Info("Starting application",
		zap.String("app", rt.config.App.Name),
		zap.String("port", rt.config.App.Port),
		zap.Bool("debug", rt.config.App.Debug),
	)

	if !skipMigrate {
		if err := database.Migrate(ctx, rt.db); err != nil {
			rt.logger.Error("Failed to apply schema", zap.Error(err))
			return fmt.Errorf("migrate: %w", err)
		}
		rt.logger.Info("Database schema ready")
	}

	issuer := auth.NewTokenIssuer(rt.config.JWT.Secret, rt.config.JWT.TTL())
	app := wire.Wiring(rt.repo, issuer, rt.config, rt.logger)

	if err := APIServer(ctx, app.Router, rt.config.App.Port, rt.logger); err != nil {
		rt.logger.Error("Server stopped with error", zap.Error(err))
		return err
	}

	rt.logger.Info("Server stopped")
	return nil
}

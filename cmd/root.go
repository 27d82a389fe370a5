package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"wedding-planner/internal/data/repository"
	"wedding-planner/pkg/database"
	"wedding-planner/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "wedding-planner",
	Short: "Wedding planner REST API",
	Long: `Wedding planner REST API.

Couples manage their wedding events and vendor bookings; admins curate the
vendor directory, review vendor applications and answer contact messages.

Running without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment (missing file is ignored)")
}

// runtime is what every command needs once config, logger and store are up.
type runtime struct {
	config *utils.Config
	logger *zap.Logger
	db     database.PgxIface
	repo   *repository.Repository
}

func (rt *runtime) close() {
	if rt.db != nil {
		rt.db.Close()
	}
	rt.logger.Sync()
}

func bootstrap(ctx context.Context) (*runtime, error) {
	config, err := utils.LoadConfigFrom(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using production logger.", err)
		logger, _ = zap.NewProduction()
	}

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		logger.Sync()
		return nil, fmt.Errorf("connect database: %w", err)
	}
	logger.Info("Database connected successfully",
		zap.String("host", config.Database.Host),
		zap.String("database", config.Database.Name),
	)

	return &runtime{
		config: config,
		logger: logger,
		db:     db,
		repo:   repository.NewRepository(db, logger),
	}, nil
}

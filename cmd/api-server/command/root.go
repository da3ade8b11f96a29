package command

// root.go defines the api-server root command and the setup shared by subcommands.

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"newshub/database"
	"newshub/internal/config"
	"newshub/internal/logger"
)

var (
	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "api-server",
	Short: "api-server - newshub REST API",
	Long: `api-server serves the newshub REST API over PostgreSQL: topics, articles,
comments, users and votes under /api.

Configuration comes from the environment (and .env when present).
Run "api-server serve" to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("could not load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		log = logger.New(cfg)
		return nil
	},
}

// Execute runs the root command. Called once from main.main().
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func connect(ctx context.Context) (*database.DB, error) {
	return database.Connect(ctx, cfg, log)
}

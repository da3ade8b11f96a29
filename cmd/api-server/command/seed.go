package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"newshub/database"
)

var resetData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the fixed test dataset",
	Long: `seed drops every table, recreates the schema and loads the fixed test dataset
in a single transaction. Existing data is lost, so --reset must be given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetData {
			return fmt.Errorf("seed replaces all data; rerun with --reset to confirm")
		}
		if cfg.IsProduction() {
			return fmt.Errorf("refusing to seed when GO_ENV=production")
		}

		db, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		return database.Seed(cmd.Context(), db, database.TestData(), log)
	},
}

func init() {
	seedCmd.Flags().BoolVar(&resetData, "reset", false, "confirm dropping existing data")
	rootCmd.AddCommand(seedCmd)
}

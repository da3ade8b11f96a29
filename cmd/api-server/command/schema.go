package command

import (
	"github.com/spf13/cobra"

	"newshub/database"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the topics, users, articles and comments tables if missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.EnsureSchema(cmd.Context(), db.Pool); err != nil {
			return err
		}
		log.Info().Msg("schema ensured")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

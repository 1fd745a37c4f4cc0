package cli

import (
	"fmt"

	"jobhunter"
	"jobhunter/internal/api/models"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := jobhunter.DB.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render("Database migrated"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

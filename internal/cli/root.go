// Package cli is the operator command line of the job hunter backend.
package cli

import (
	"context"
	"fmt"
	"os"

	"jobhunter"

	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "jobhunter",
	Short: "Operator tools for the job hunter backend",
	Long: `jobhunter runs maintenance tasks against the same database and
services the API uses: schema migration, per-user statistics and
aggregator searches.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		jobhunter.InitConfig(envFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file to load")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

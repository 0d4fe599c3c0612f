// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobvista",
	Short: "JobVista is a job-listing content portal",
	Long: `JobVista serves a public job-listing site (jobs, posts, exam notices,
preparation material) and the JSON API behind its admin panel.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

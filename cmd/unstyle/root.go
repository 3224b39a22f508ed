package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "unstyle",
	Short: "Strip class attributes from markup and clear stylesheets",
	Long: `Bulk-remove styling artifacts from a project tree.
Removes class="..." attributes from .html/.htm files and empties
.css/.scss files, after an interactive selection and confirmation.`,
	// Default behavior: run the interactive session when no subcommand is
	// given. loadConfig must be called here because PreRunE of runCmd is
	// not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runRun(runCmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".unstyle.yaml", "Config file path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

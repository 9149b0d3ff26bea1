package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the journalcheck CLI with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "journalcheck",
		Short: "Check, render and submit journal entry drafts outside the dashboard",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newPayloadCommand())
	rootCmd.AddCommand(newSubmitCommand())
	rootCmd.AddCommand(newTokenCommand())

	return rootCmd
}

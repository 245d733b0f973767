// Package cli defines the cobra command tree for the comments API server.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Running it without a subcommand
// starts the server.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "comments-api",
		Short:         "Comments HTTP API",
		Long:          "Serves GET and POST /api/comments backed by PostgreSQL or an in-memory store.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
	)

	return root
}

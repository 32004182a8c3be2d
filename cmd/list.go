package cmd

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [paths...]",
		Short: "List planned renames per source file",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), listArgsFromConfig(args))
		},
	}
}

func init() {
	rootCmd.AddCommand(newListCmd())
}

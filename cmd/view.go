package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"camelize.dev/pkg/camelize/internal/domain"
	m "camelize.dev/pkg/camelize/internal/model"
)

var errNoReportPath = errors.New("no report path: pass one or set report.path")

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [report]",
		Short: "View a previously saved rename report",
		Long:  "View a rename report written by `camelize rewrite --report`. Defaults to report.path from the configuration.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportPath := viper.GetString(reportConfigKey)
			if len(args) == 1 {
				reportPath = args[0]
			}

			if reportPath == "" {
				return errNoReportPath
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Report: m.Path(reportPath)})
		},
	}
}

func init() {
	rootCmd.AddCommand(newViewCmd())
}

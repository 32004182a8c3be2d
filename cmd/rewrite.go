package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"camelize.dev/pkg/camelize/internal/domain"
	m "camelize.dev/pkg/camelize/internal/model"
)

const (
	writeFlagName = "write"
	diffFlagName  = "diff"
	checkFlagName = "check"
)

var writeFlag bool
var diffFlag bool
var checkFlag bool
var reportFlag string

func newRewriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewrite [paths...]",
		Short: "Rename snake_case variables to camelCase",
		Long:  rewriteLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Rewrite(cmd.Context(), domain.RewriteArgs{
				ListArgs: listArgsFromConfig(args),
				Write:    writeFlag,
				Diff:     diffFlag,
				Check:    checkFlag,
				Report:   m.Path(viper.GetString(reportConfigKey)),
			})
		},
	}

	configureRewriteFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newRewriteCmd())
}

func configureRewriteFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&writeFlag, writeFlagName, "w", false, "write result to the source files instead of stdout")
	cmd.Flags().BoolVarP(&diffFlag, diffFlagName, "d", false, "print unified diffs of the changes")
	cmd.Flags().BoolVar(&checkFlag, checkFlagName, false, "exit with an error if any file would change")
	cmd.MarkFlagsMutuallyExclusive(writeFlagName, checkFlagName)

	cmd.Flags().StringVar(&reportFlag, reportFlagName, defaultReportPath, "write a YAML rename report to this path")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportConfigKey)
}

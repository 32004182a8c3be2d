// Package cmd provides the root command and CLI setup for camelize.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"camelize.dev/pkg/camelize/internal/adapter"
	"camelize.dev/pkg/camelize/internal/controller"
	"camelize.dev/pkg/camelize/internal/domain"
	m "camelize.dev/pkg/camelize/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var syntaxAdapter adapter.PHPSyntaxAdapter
var diffAdapter adapter.DiffAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

var parallelFlag int
var strictFlag bool
var verboseFlag bool
var logFileFlag string

// logWriter is the rotating log file opened for the running command.
var logWriter io.Closer

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	syntaxAdapter = adapter.NewLocalPHPSyntaxAdapter()
	diffAdapter = adapter.NewLocalDiffAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		syntaxAdapter,
		diffAdapter,
		reportStore,
		ui,
	)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./src ./lib    scan multiple directories (not recursive)
  - index.php      a single file

Only .php, .phtml and .inc files are considered; vendor, node_modules and
.git directories are skipped.`

const rootLongDescription = `Camelize rewrites PHP sources so that every snake_case variable
($user_id) becomes camelCase ($userId). All occurrences of a variable are
renamed together, including string interpolation, while comments, strings
and inline HTML stay byte-for-byte identical.

` + pathPatternsHelp

const rewriteLongDescription = `Rename snake_case variables in the given paths (default: ./...).

With a single file and no other mode the rewritten source is printed to
stdout. Use --write to update files in place, --diff to review the changes
or --check to fail when any file would change.

` + pathPatternsHelp

const listLongDescription = `List the renames each source file would receive, without changing it.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "camelize",
		Short:         "Rename snake_case PHP variables to camelCase",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logWriter = configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeLogWriter()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a root command with all persistent flags attached.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

// configureRootFlags attaches the shared flags. Flag defaults are the static
// ones; values from the config file and environment arrive through viper.
func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().IntVarP(&parallelFlag, runParallelFlagName, "p", defaultRunParallel, "number of files processed in parallel")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.PersistentFlags().BoolVar(&strictFlag, strictFlagName, defaultStrict, "reject files that contain syntax errors")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(strictFlagName), strictConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func closeLogWriter() {
	if logWriter == nil {
		return
	}

	_ = logWriter.Close()
	logWriter = nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	closeLogWriter()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// listArgsFromConfig resolves the flags shared by list and rewrite.
func listArgsFromConfig(args []string) domain.ListArgs {
	return domain.ListArgs{
		Paths:    parsePaths(args),
		Exclude:  viper.GetStringSlice(excludeConfigKey),
		Parallel: viper.GetInt(runParallelConfigKey),
		Strict:   viper.GetBool(strictConfigKey),
	}
}

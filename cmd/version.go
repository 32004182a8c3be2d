package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const grammarModule = "github.com/smacker/go-tree-sitter"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version and the PHP grammar module used to build this tool.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("camelize version\t", info.Main.Version)
			cmd.Println("go version\t\t", info.GoVersion)

			if grammar := grammarVersion(info); grammar != "" {
				cmd.Println("php grammar\t\t", grammar)
			}
		},
	}
}

// grammarVersion returns the version of the tree-sitter bindings linked in.
func grammarVersion(info *debug.BuildInfo) string {
	for _, dep := range info.Deps {
		if dep.Path == grammarModule {
			return dep.Version
		}
	}

	return ""
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

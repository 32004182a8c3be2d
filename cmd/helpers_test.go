package cmd

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	domainmocks "camelize.dev/pkg/camelize/internal/domain/mocks"
)

// executeSubcommandWith runs the subcommand named by args[0] under a fresh
// root command with the workflow replaced by a mock configured by expect.
// Logs go to a temporary file.
func executeSubcommandWith(t *testing.T, expect func(*domainmocks.MockWorkflow), args ...string) (*domainmocks.MockWorkflow, string, error) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	expect(mockWorkflow)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	cmd := newRootCmd()
	cmd.AddCommand(newRewriteCmd(), newListCmd(), newViewCmd(), newInitCmd(), newVersionCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	logFile := filepath.Join(t.TempDir(), "camelize.log")
	cmd.SetArgs(append(args, "--"+logFileFlagName, logFile))
	originalLogger := slog.Default()
	t.Cleanup(func() {
		closeLogWriter()
		slog.SetDefault(originalLogger)
	})

	err := cmd.Execute()

	return mockWorkflow, out.String(), err
}

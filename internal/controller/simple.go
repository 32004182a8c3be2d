package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "camelize.dev/pkg/camelize/internal/model"
)

// SimpleUI implements UI using the cobra command's output streams.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mode = newStartConfig(options...).Mode()

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayConcurrencyInfo shows how many files are processed by how many workers.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, workers int, files int) {
	if ctx.Err() != nil {
		return
	}

	s.errorf("%s %d file(s) with %d worker(s)\n", progressVerb(s.mode), files, workers)
}

// DisplayRenames prints the renames as a table under a heading that
// depends on the start mode.
func (s *SimpleUI) DisplayRenames(ctx context.Context, results []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s:\n", renamesHeading(s.mode))

	if !hasRenames(results) {
		s.printf("%s\n", noRenamesMessage)
		return nil
	}

	s.printf("\n%s", renderRenamesTable(results))

	return nil
}

// DisplaySource writes the rewritten source unchanged.
func (s *SimpleUI) DisplaySource(ctx context.Context, result m.FileResult) {
	if ctx.Err() != nil {
		return
	}

	_, _ = s.cmd.OutOrStdout().Write(result.Rewritten)
}

// DisplayDiff prints the unified diff of a changed file.
func (s *SimpleUI) DisplayDiff(ctx context.Context, result m.FileResult) {
	if ctx.Err() != nil || result.Diff == "" {
		return
	}

	s.printf("%s", result.Diff)
}

// DisplayFileError reports a file that could not be processed.
func (s *SimpleUI) DisplayFileError(ctx context.Context, result m.FileResult) {
	if ctx.Err() != nil || result.Err == nil {
		return
	}

	s.errorf("error: %s: %v\n", result.Path(), result.Err)
}

// DisplaySummary prints one row per file with its status.
func (s *SimpleUI) DisplaySummary(ctx context.Context, results []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(results))

	return nil
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"camelize.dev/pkg/camelize/internal/adapter"
	"camelize.dev/pkg/camelize/internal/controller"
	m "camelize.dev/pkg/camelize/internal/model"
)

// ListArgs contains the arguments for listing planned renames.
type ListArgs struct {
	Paths    []m.Path
	Exclude  []string
	Parallel int
	Strict   bool
}

// RewriteArgs contains the arguments for rewriting sources.
type RewriteArgs struct {
	ListArgs

	// Write replaces changed files in place.
	Write bool
	// Diff prints a unified diff per changed file.
	Diff bool
	// Check fails with ErrChangesPending when any file would change.
	Check bool
	// Report, when set, is where the YAML rename report is saved.
	Report m.Path
}

// ViewArgs contains the arguments for viewing a saved report.
type ViewArgs struct {
	Report m.Path
}

// Workflow drives the rename engine over files on disk.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Rewrite(ctx context.Context, args RewriteArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.DiffAdapter
	adapter.ReportStore
	controller.UI

	syntax adapter.PHPSyntaxAdapter
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	syntax adapter.PHPSyntaxAdapter,
	diffAdapter adapter.DiffAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		DiffAdapter:     diffAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		syntax:          syntax,
	}
}

// List shows the renames each file would receive without touching it.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	results, err := w.process(ctx, args, false)
	if err != nil {
		return err
	}

	w.displayErrors(ctx, results)

	if err := w.DisplayRenames(ctx, results); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return joinFileErrors(results)
}

// Rewrite renames variables in every source and then prints, diffs or
// writes the results depending on args.
func (w *workflow) Rewrite(ctx context.Context, args RewriteArgs) error {
	if err := w.Start(ctx, controller.WithRewriteMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	results, err := w.process(ctx, args.ListArgs, args.Diff)
	if err != nil {
		return err
	}

	if args.Write {
		w.writeChanged(results)
	}

	w.displayErrors(ctx, results)

	if err := w.displayRewrite(ctx, args, results); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.Report != "" {
		if err := w.SaveReport(args.Report, buildReport(results)); err != nil {
			slog.Error("Failed to save report", "path", args.Report, "error", err)
			return fmt.Errorf("save report: %w", err)
		}
	}

	err = joinFileErrors(results)

	if args.Check && !args.Write && countChanged(results) > 0 {
		err = errors.Join(err, fmt.Errorf("%w: %d file(s)", ErrChangesPending, countChanged(results)))
	}

	return err
}

// View displays the renames recorded in a saved report.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(args.Report)
	if err != nil {
		slog.Error("Failed to load report", "path", args.Report, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	results := resultsFromReport(report)

	w.displayErrors(ctx, results)

	if err := w.DisplayRenames(ctx, results); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) displayRewrite(ctx context.Context, args RewriteArgs, results []m.FileResult) error {
	if args.Diff {
		for _, result := range results {
			if result.Changed() {
				w.DisplayDiff(ctx, result)
			}
		}
	}

	// A single file with no output mode behaves like a filter: the rewritten
	// source goes to stdout.
	if !args.Write && !args.Diff && !args.Check && len(results) == 1 {
		if results[0].Err == nil {
			w.DisplaySource(ctx, results[0])
		}

		return nil
	}

	return w.DisplaySummary(ctx, results)
}

// process discovers the sources and rewrites them concurrently. Per-file
// failures are recorded on the results; only discovery errors are returned.
func (w *workflow) process(ctx context.Context, args ListArgs, withDiff bool) ([]m.FileResult, error) {
	sources, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		slog.Error("Failed to discover sources", "error", err)
		return nil, fmt.Errorf("get sources: %w", err)
	}

	workers := normalizeWorkers(args.Parallel)
	w.DisplayConcurrencyInfo(ctx, workers, len(sources))

	rewriter := NewRewriter(w.syntax, WithStrictSyntax(args.Strict))

	var (
		results      []m.FileResult
		resultsMutex sync.Mutex
		group        errgroup.Group
	)

	group.SetLimit(workers)

	for _, source := range sources {
		group.Go(func() error {
			result := w.processSource(ctx, rewriter, source, withDiff)

			resultsMutex.Lock()
			results = append(results, result)
			resultsMutex.Unlock()

			return nil
		})
	}

	_ = group.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path() < results[j].Path()
	})

	return results, nil
}

func (w *workflow) processSource(ctx context.Context, rewriter Rewriter, source m.Source, withDiff bool) m.FileResult {
	result := m.FileResult{Source: source}
	path := source.Origin.FullPath

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	original, err := w.ReadFile(path)
	if err != nil {
		result.Err = fmt.Errorf("read: %w", err)
		return result
	}

	result.Original = original

	rewritten, err := rewriter.Rewrite(ctx, original)
	if err != nil {
		slog.Error("Failed to rewrite source", "path", path, "error", err)
		result.Err = err

		return result
	}

	result.Rewritten = rewritten.Source
	result.Renames = rewritten.Renames

	slog.Debug("Rewrote source", "path", path, "renames", len(rewritten.Renames), "passes", rewritten.Passes)

	if withDiff && result.Changed() {
		diff, err := w.Unified(string(result.Path()), result.Original, result.Rewritten)
		if err != nil {
			result.Err = fmt.Errorf("diff: %w", err)
			return result
		}

		result.Diff = diff
	}

	return result
}

// writeChanged writes every successfully rewritten file that changed.
func (w *workflow) writeChanged(results []m.FileResult) {
	for i := range results {
		if !results[i].Changed() {
			continue
		}

		path := results[i].Source.Origin.FullPath
		if err := w.WriteFile(path, results[i].Rewritten); err != nil {
			slog.Error("Failed to write source", "path", path, "error", err)
			results[i].Err = fmt.Errorf("write: %w", err)

			continue
		}

		slog.Info("Wrote source", "path", path, "renames", len(results[i].Renames))
	}
}

func (w *workflow) displayErrors(ctx context.Context, results []m.FileResult) {
	for _, result := range results {
		if result.Err != nil {
			w.DisplayFileError(ctx, result)
		}
	}
}

func normalizeWorkers(parallel int) int {
	if parallel <= 0 {
		return 1
	}

	return parallel
}

func countChanged(results []m.FileResult) int {
	changed := 0

	for _, result := range results {
		if result.Changed() {
			changed++
		}
	}

	return changed
}

func joinFileErrors(results []m.FileResult) error {
	var errs []error

	for _, result := range results {
		if result.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", result.Path(), result.Err))
		}
	}

	return errors.Join(errs...)
}

func buildReport(results []m.FileResult) m.Report {
	report := m.Report{
		Version: m.CurrentReportVersion,
		Files:   make([]m.ReportFile, 0, len(results)),
	}

	for _, result := range results {
		file := m.ReportFile{
			Path:    result.Path(),
			Renames: result.Renames,
		}

		if result.Source.Origin != nil {
			file.Hash = result.Source.Origin.Hash
		}

		if result.Err != nil {
			file.Error = result.Err.Error()
		}

		report.Files = append(report.Files, file)
	}

	return report
}

// resultsFromReport turns stored report entries back into display results.
func resultsFromReport(report m.Report) []m.FileResult {
	results := make([]m.FileResult, 0, len(report.Files))

	for _, file := range report.Files {
		result := m.FileResult{
			Source:  m.Source{Origin: &m.File{ShortPath: file.Path, Hash: file.Hash}},
			Renames: file.Renames,
		}

		if file.Error != "" {
			result.Err = errors.New(file.Error)
		}

		results = append(results, result)
	}

	return results
}

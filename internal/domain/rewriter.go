package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	sitter "github.com/smacker/go-tree-sitter"

	"camelize.dev/pkg/camelize/internal/adapter"
	"camelize.dev/pkg/camelize/internal/domain/casing"
	"camelize.dev/pkg/camelize/internal/domain/edits"
	m "camelize.dev/pkg/camelize/internal/model"
)

// Rewriter renames snake_case PHP variables to camelCase.
type Rewriter interface {
	// Rewrite returns src with every snake_case variable renamed. src is not
	// modified. On error no partial result is returned.
	Rewrite(ctx context.Context, src []byte) (m.RewriteResult, error)
}

// RewriterOption configures a Rewriter.
type RewriterOption func(*rewriter)

// WithStrictSyntax rejects sources that only parse with error recovery.
func WithStrictSyntax(strict bool) RewriterOption {
	return func(rw *rewriter) {
		rw.strict = strict
	}
}

// WithMaxPasses caps the number of rename passes. Zero derives the cap from
// the number of snake_case occurrences in the input.
func WithMaxPasses(passes int) RewriterOption {
	return func(rw *rewriter) {
		rw.maxPasses = passes
	}
}

type rewriter struct {
	syntax    adapter.PHPSyntaxAdapter
	locator   *Locator
	strict    bool
	maxPasses int
}

// NewRewriter creates a Rewriter backed by the given syntax adapter.
func NewRewriter(syntax adapter.PHPSyntaxAdapter, opts ...RewriterOption) Rewriter {
	rw := &rewriter{
		syntax:  syntax,
		locator: NewLocator(syntax),
	}

	for _, opt := range opts {
		opt(rw)
	}

	return rw
}

// rewriteState is the buffer/tree pair owned by one Rewrite call. Both are
// replaced together after every edit.
type rewriteState struct {
	buf  []byte
	tree *sitter.Tree
}

func (s *rewriteState) close() {
	if s.tree != nil {
		s.tree.Close()
		s.tree = nil
	}
}

func (rw *rewriter) Rewrite(ctx context.Context, src []byte) (m.RewriteResult, error) {
	buf := bytes.Clone(src)

	tree, err := rw.syntax.Parse(ctx, buf, nil)
	if err != nil {
		return m.RewriteResult{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	state := &rewriteState{buf: buf, tree: tree}
	defer state.close()

	if rw.strict && rw.syntax.HasSyntaxErrors(tree) {
		return m.RewriteResult{}, ErrSyntax
	}

	budget, err := rw.passBudget(ctx, state)
	if err != nil {
		return m.RewriteResult{}, err
	}

	var result m.RewriteResult

	for {
		if err := ctx.Err(); err != nil {
			return m.RewriteResult{}, err
		}

		rename, err := rw.rewriteOnePass(ctx, state)
		if err != nil {
			return m.RewriteResult{}, err
		}

		if rename == nil {
			break
		}

		result.Passes++
		result.Renames = append(result.Renames, *rename)

		slog.Debug("renamed variable", "old", rename.Old, "new", rename.New, "occurrences", rename.Occurrences)

		if result.Passes > budget {
			return m.RewriteResult{}, fmt.Errorf("%w: %d passes exceeded budget of %d", ErrNoProgress, result.Passes, budget)
		}
	}

	result.Source = state.buf

	return result, nil
}

// passBudget bounds the loop. Every pass removes at least one snake_case
// occurrence and never adds one, so the initial count is an upper bound.
func (rw *rewriter) passBudget(ctx context.Context, state *rewriteState) (int, error) {
	if rw.maxPasses > 0 {
		return rw.maxPasses, nil
	}

	candidates, err := rw.locator.Candidates(ctx, state.tree, state.buf)
	if err != nil {
		return 0, err
	}

	return len(candidates), nil
}

// rewriteOnePass renames every occurrence of the first snake_case variable.
// It returns nil when nothing is left to rename.
func (rw *rewriter) rewriteOnePass(ctx context.Context, state *rewriteState) (*m.Rename, error) {
	candidate, ok, err := rw.locator.NextCandidate(ctx, state.tree, state.buf)
	if err != nil || !ok {
		return nil, err
	}

	rename := m.NewRename(candidate.Text, casing.ToCamel(candidate.Text))

	occurrences, err := rw.locator.Occurrences(ctx, state.tree, state.buf, rename.Old)
	if err != nil {
		return nil, err
	}

	if len(occurrences) == 0 {
		return nil, fmt.Errorf("%w: no occurrences of candidate %q", ErrNoProgress, rename.Old)
	}

	// Occurrence offsets predate every splice of this pass. shift carries the
	// byte drift of the splices already applied; rowShift carries the column
	// drift, which only accumulates within a row.
	shift := 0
	rowShift := make(map[int]int)

	for _, occ := range occurrences {
		edit := edits.New(occ, rename.Delta).
			ShiftBytes(shift).
			ShiftColumns(rowShift[occ.Start.Row])

		if err := rw.applyEdit(ctx, state, edit, rename); err != nil {
			return nil, fmt.Errorf("rename %q to %q: %w", rename.Old, rename.New, err)
		}

		shift += rename.Delta
		rowShift[occ.Start.Row] += rename.Delta
	}

	rename.Occurrences = len(occurrences)

	return &rename, nil
}

// applyEdit splices the new name into the buffer, notifies the tree and
// re-derives it. The state is only updated once all three steps succeed.
func (rw *rewriter) applyEdit(ctx context.Context, state *rewriteState, edit edits.Edit, rename m.Rename) error {
	if err := edit.Validate(len(state.buf)); err != nil {
		return err
	}

	if current := string(state.buf[edit.StartByte:edit.OldEndByte]); current != rename.Old {
		return fmt.Errorf("%w: expected %q at %s, found %q", edits.ErrOffsetInvariant, rename.Old, edit, current)
	}

	buf, err := edit.Apply(state.buf, rename.New)
	if err != nil {
		return err
	}

	state.tree.Edit(edit.Input())

	tree, err := rw.syntax.Parse(ctx, buf, state.tree)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	state.tree.Close()
	state.tree = tree
	state.buf = buf

	return nil
}

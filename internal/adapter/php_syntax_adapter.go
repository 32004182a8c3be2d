package adapter

import (
	"context"
	"errors"
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/php"

	m "camelize.dev/pkg/camelize/internal/model"
)

// ErrNilTree is returned when a tree-sitter call yields no tree.
var ErrNilTree = errors.New("parser returned no tree")

// PHPSyntaxAdapter encapsulates tree-sitter parsing and querying of PHP
// sources so the domain layer can work with value snapshots instead of
// grammar details.
type PHPSyntaxAdapter interface {
	// Parse builds a syntax tree for src. When old is non-nil it must
	// already have been notified of every edit made since it was built;
	// unaffected regions are then reused instead of re-scanned.
	Parse(ctx context.Context, src []byte, old *sitter.Tree) (*sitter.Tree, error)

	// Query compiles pattern against the PHP grammar, runs it over tree and
	// returns a snapshot of every capture, ordered by start byte.
	Query(ctx context.Context, tree *sitter.Tree, src []byte, pattern []byte) ([]m.Occurrence, error)

	// HasSyntaxErrors reports whether the tree contains ERROR or MISSING nodes.
	HasSyntaxErrors(tree *sitter.Tree) bool
}

// LocalPHPSyntaxAdapter provides a PHPSyntaxAdapter backed by the bundled
// tree-sitter PHP grammar. It keeps no parser state between calls, so one
// instance can be shared by concurrent workers.
type LocalPHPSyntaxAdapter struct {
	language *sitter.Language
}

// NewLocalPHPSyntaxAdapter constructs a LocalPHPSyntaxAdapter.
func NewLocalPHPSyntaxAdapter() *LocalPHPSyntaxAdapter {
	return &LocalPHPSyntaxAdapter{language: php.GetLanguage()}
}

// Parse parses src, incrementally when old is provided.
func (a *LocalPHPSyntaxAdapter) Parse(ctx context.Context, src []byte, old *sitter.Tree) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(a.language)

	tree, err := parser.ParseCtx(ctx, old, src)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, fmt.Errorf("parse php source: %w", err)
	}

	if tree == nil {
		return nil, ErrNilTree
	}

	return tree, nil
}

// Query runs pattern over the whole tree, applying #eq?/#match? predicates.
func (a *LocalPHPSyntaxAdapter) Query(ctx context.Context, tree *sitter.Tree, src []byte, pattern []byte) ([]m.Occurrence, error) {
	if tree == nil {
		return nil, ErrNilTree
	}

	query, err := sitter.NewQuery(pattern, a.language)
	if err != nil {
		return nil, fmt.Errorf("compile query %q: %w", pattern, err)
	}
	defer query.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	cursor.Exec(query, tree.RootNode())

	var occurrences []m.Occurrence

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		match, ok := cursor.NextMatch()
		if !ok {
			break
		}

		match = cursor.FilterPredicates(match, src)
		for _, capture := range match.Captures {
			occurrences = append(occurrences, snapshot(capture.Node, src))
		}
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].StartByte < occurrences[j].StartByte
	})

	return occurrences, nil
}

// HasSyntaxErrors reports whether the parse recovered from invalid input.
func (a *LocalPHPSyntaxAdapter) HasSyntaxErrors(tree *sitter.Tree) bool {
	if tree == nil {
		return true
	}

	return tree.RootNode().HasError()
}

func snapshot(node *sitter.Node, src []byte) m.Occurrence {
	start := node.StartPoint()
	end := node.EndPoint()

	return m.Occurrence{
		StartByte: int(node.StartByte()),
		EndByte:   int(node.EndByte()),
		Start:     m.Point{Row: int(start.Row), Column: int(start.Column)},
		End:       m.Point{Row: int(end.Row), Column: int(end.Column)},
		Text:      node.Content(src),
	}
}

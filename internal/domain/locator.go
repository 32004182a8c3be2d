package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"camelize.dev/pkg/camelize/internal/adapter"
	"camelize.dev/pkg/camelize/internal/domain/casing"
	m "camelize.dev/pkg/camelize/internal/model"
)

const (
	captureName = "name"

	// variableNamePattern captures the name part of every $variable,
	// including the ones interpolated into double-quoted strings.
	variableNamePattern = `(variable_name (name) @` + captureName + `)`
)

// queryLiteralEscaper escapes text for use inside a double-quoted string of
// the tree-sitter query language.
var queryLiteralEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// Locator finds variable-name occurrences in a PHP syntax tree.
type Locator struct {
	syntax adapter.PHPSyntaxAdapter
}

// NewLocator creates a Locator that queries through syntax.
func NewLocator(syntax adapter.PHPSyntaxAdapter) *Locator {
	return &Locator{syntax: syntax}
}

// Candidates returns every variable occurrence whose name still contains the
// word separator, in document order.
func (l *Locator) Candidates(ctx context.Context, tree *sitter.Tree, src []byte) ([]m.Occurrence, error) {
	occurrences, err := l.query(ctx, tree, src, candidatePattern())
	if err != nil {
		return nil, err
	}

	candidates := occurrences[:0]

	for _, occ := range occurrences {
		if casing.IsSnakeCase(occ.Text) {
			candidates = append(candidates, occ)
		}
	}

	return candidates, nil
}

// NextCandidate returns the first occurrence that still needs renaming.
func (l *Locator) NextCandidate(ctx context.Context, tree *sitter.Tree, src []byte) (m.Occurrence, bool, error) {
	candidates, err := l.Candidates(ctx, tree, src)
	if err != nil {
		return m.Occurrence{}, false, err
	}

	if len(candidates) == 0 {
		return m.Occurrence{}, false, nil
	}

	return candidates[0], true, nil
}

// Occurrences returns every variable occurrence spelled exactly like
// spelling, in document order. Scope is ignored: equal spellings in
// unrelated functions are all returned.
func (l *Locator) Occurrences(ctx context.Context, tree *sitter.Tree, src []byte, spelling string) ([]m.Occurrence, error) {
	occurrences, err := l.query(ctx, tree, src, spellingPattern(spelling))
	if err != nil {
		return nil, err
	}

	exact := occurrences[:0]

	for _, occ := range occurrences {
		if occ.Text == spelling {
			exact = append(exact, occ)
		}
	}

	return exact, nil
}

func (l *Locator) query(ctx context.Context, tree *sitter.Tree, src []byte, pattern string) ([]m.Occurrence, error) {
	occurrences, err := l.syntax.Query(ctx, tree, src, []byte(pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}

	return occurrences, nil
}

func candidatePattern() string {
	return matchPattern(regexp.QuoteMeta(casing.Separator))
}

// spellingPattern matches one literal spelling. The spelling is quoted for
// the regex engine first and for the query string literal second, so names
// containing pattern meta-characters cannot break the query.
func spellingPattern(spelling string) string {
	return matchPattern("^" + regexp.QuoteMeta(spelling) + "$")
}

func matchPattern(regex string) string {
	return fmt.Sprintf(`(%s (#match? @%s "%s"))`, variableNamePattern, captureName, queryLiteralEscaper.Replace(regex))
}

// Package camelize exposes the PHP variable rename engine as a library.
//
// The engine renames every snake_case variable of a PHP source to camelCase
// and leaves every other byte untouched:
//
//	out, err := camelize.Rewrite("<?php $user_id = 1; echo \"{$user_id}\";")
//	// out == "<?php $userId = 1; echo \"{$userId}\";"
//
// Renaming is purely textual. Two unrelated variables that share a spelling
// are renamed together, and mentions inside comments, single-quoted strings
// and the ${name} interpolation form are left alone.
package camelize

import (
	"context"

	"camelize.dev/pkg/camelize/internal/adapter"
	"camelize.dev/pkg/camelize/internal/domain"
	m "camelize.dev/pkg/camelize/internal/model"
)

// Errors returned by Rewrite and RewriteContext, for use with errors.Is.
var (
	ErrParse      = domain.ErrParse
	ErrSyntax     = domain.ErrSyntax
	ErrQuery      = domain.ErrQuery
	ErrNoProgress = domain.ErrNoProgress
)

// Rename describes one renamed variable spelling.
type Rename = m.Rename

// Options tunes a rewrite.
type Options struct {
	// Strict rejects sources that contain syntax errors instead of renaming
	// whatever the error-recovering parser still recognises.
	Strict bool
}

// Result is the outcome of RewriteContext.
type Result struct {
	Source  string
	Renames []Rename
}

// Rewrite renames every snake_case variable in source to camelCase.
func Rewrite(source string) (string, error) {
	result, err := RewriteContext(context.Background(), source, Options{})
	if err != nil {
		return "", err
	}

	return result.Source, nil
}

// RewriteContext is Rewrite with cancellation, options and the list of
// applied renames.
func RewriteContext(ctx context.Context, source string, opts Options) (Result, error) {
	rewriter := domain.NewRewriter(
		adapter.NewLocalPHPSyntaxAdapter(),
		domain.WithStrictSyntax(opts.Strict),
	)

	result, err := rewriter.Rewrite(ctx, []byte(source))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Source:  string(result.Source),
		Renames: result.Renames,
	}, nil
}

package adapter

import (
	"bytes"

	"github.com/pmezard/go-difflib/difflib"
)

const defaultDiffContext = 3

// DiffAdapter renders the difference between two versions of a file.
type DiffAdapter interface {
	// Unified returns a unified diff, or "" when the inputs are equal.
	Unified(path string, original, rewritten []byte) (string, error)
}

// LocalDiffAdapter produces unified diffs with go-difflib.
type LocalDiffAdapter struct {
	context int
}

// NewLocalDiffAdapter constructs a LocalDiffAdapter with three context lines.
func NewLocalDiffAdapter() *LocalDiffAdapter {
	return &LocalDiffAdapter{context: defaultDiffContext}
}

// Unified renders the change using `a/` and `b/` path prefixes.
func (a *LocalDiffAdapter) Unified(path string, original, rewritten []byte) (string, error) {
	if bytes.Equal(original, rewritten) {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(rewritten)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  a.context,
	})
}

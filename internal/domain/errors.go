package domain

import "errors"

var (
	// ErrParse is returned when the PHP parser cannot produce a tree.
	ErrParse = errors.New("parse failed")
	// ErrSyntax is returned in strict mode when the source has syntax errors.
	ErrSyntax = errors.New("source has syntax errors")
	// ErrQuery is returned when an occurrence query cannot be built or run.
	ErrQuery = errors.New("occurrence query failed")
	// ErrNoProgress is returned when the rename loop stops converging.
	ErrNoProgress = errors.New("rename loop made no progress")
	// ErrChangesPending is returned by check runs when files would change.
	ErrChangesPending = errors.New("files need rewriting")
)

// Package adapter contains the infrastructure adapters used by the camelize
// CLI: PHP parsing, filesystem access, diffs and report persistence.
package adapter

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "camelize.dev/pkg/camelize/internal/model"
)

const recursiveSuffix = "..."

// defaultFileMode is used when writing a file that does not exist yet.
const defaultFileMode os.FileMode = 0o644

// PHPExtensions lists the file extensions treated as PHP sources.
var PHPExtensions = []string{".php", ".phtml", ".inc"}

// skippedDirs are never descended into while walking a pattern.
var skippedDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get resolves Go-style path patterns into PHP sources, sorted by path.
	// Paths whose full path matches any exclude regex are dropped.
	Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Source, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the file contents, keeping its permission bits.
	WriteFile(path m.Path, content []byte) error

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// IsPHPFile reports whether path has one of the PHP source extensions.
func IsPHPFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, candidate := range PHPExtensions {
		if ext == candidate {
			return true
		}
	}

	return false
}

// Get expands patterns such as `./...`, `./src/...`, directories and plain
// files. An empty pattern list means `./...`.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Source, error) {
	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		paths = []m.Path{"./" + recursiveSuffix}
	}

	seen := make(map[string]bool)

	var files []string

	for _, pattern := range paths {
		root, recursive := splitPattern(string(pattern))

		found, err := a.collect(ctx, root, recursive)
		if err != nil {
			return nil, err
		}

		for _, path := range found {
			if seen[path] || isExcluded(path, excludes) {
				continue
			}

			seen[path] = true
			files = append(files, path)
		}
	}

	sort.Strings(files)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	sources := make([]m.Source, 0, len(files))

	for _, path := range files {
		source, err := a.newSource(cwd, path)
		if err != nil {
			return nil, err
		}

		sources = append(sources, source)
	}

	slog.Debug("discovered sources", "patterns", len(paths), "count", len(sources))

	return sources, nil
}

func (a *LocalSourceFSAdapter) collect(ctx context.Context, root string, recursive bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, err
		}

		return []string{abs}, nil
	}

	var found []string

	err = a.Walk(m.Path(root), recursive, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if info.IsDir() {
			if path != root && skippedDirs[info.Name()] {
				return filepath.SkipDir
			}

			return nil
		}

		if !IsPHPFile(path) {
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		found = append(found, abs)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func (a *LocalSourceFSAdapter) newSource(cwd, path string) (m.Source, error) {
	hash, err := a.HashFile(m.Path(path))
	if err != nil {
		return m.Source{}, fmt.Errorf("hash error for %s: %w", path, err)
	}

	short := m.Path(path)
	if rel, err := a.RelPath(m.Path(cwd), m.Path(path)); err == nil && !strings.HasPrefix(string(rel), "..") {
		short = rel
	}

	return m.Source{
		Origin: &m.File{
			FullPath:  m.Path(path),
			ShortPath: short,
			Hash:      hash,
		},
	}, nil
}

// splitPattern turns `dir/...` into (dir, true) and anything else into
// (pattern, false).
func splitPattern(pattern string) (string, bool) {
	if pattern == recursiveSuffix {
		return ".", true
	}

	trimmed, ok := strings.CutSuffix(pattern, "/"+recursiveSuffix)
	if !ok {
		return pattern, false
	}

	if trimmed == "" {
		return "/", true
	}

	return trimmed, true
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func isExcluded(path string, excludes []*regexp.Regexp) bool {
	slashed := filepath.ToSlash(path)
	for _, re := range excludes {
		if re.MatchString(slashed) {
			return true
		}
	}

	return false
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content in place. Existing files keep their mode.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	perm := defaultFileMode

	info, err := os.Stat(string(path))

	switch {
	case err == nil:
		perm = info.Mode().Perm()
	case !errors.Is(err, os.ErrNotExist):
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

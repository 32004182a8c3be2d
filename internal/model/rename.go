// Package model defines the data structures shared by the rename engine,
// the file workflow and the reporting layers.
package model

import "fmt"

// Point is a zero-based row/column position. Columns count bytes, matching
// the positions reported by the syntax tree.
type Point struct {
	Row    int
	Column int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row+1, p.Column+1)
}

// Occurrence is a snapshot of a variable-name node taken from the syntax
// tree. It stays valid after the tree is edited because it holds values,
// not node references.
type Occurrence struct {
	StartByte int
	EndByte   int
	Start     Point
	End       Point
	Text      string
}

// Rename describes one completed rename pass.
type Rename struct {
	Old         string `yaml:"old"`
	New         string `yaml:"new"`
	Delta       int    `yaml:"-"`
	Occurrences int    `yaml:"occurrences"`
}

// NewRename builds a Rename with its byte-length delta.
func NewRename(oldName, newName string) Rename {
	return Rename{
		Old:   oldName,
		New:   newName,
		Delta: len(newName) - len(oldName),
	}
}

// RewriteResult is the outcome of rewriting one source buffer.
type RewriteResult struct {
	Source  []byte
	Renames []Rename
	Passes  int
}

// Changed reports whether any rename was applied.
func (r RewriteResult) Changed() bool {
	return len(r.Renames) > 0
}

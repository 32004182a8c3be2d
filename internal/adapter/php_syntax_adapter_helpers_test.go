package adapter

import sitter "github.com/smacker/go-tree-sitter"

// editFor builds a single-row edit notification on row 0.
func editFor(start, oldEnd, newEnd uint32) sitter.EditInput {
	return sitter.EditInput{
		StartIndex:  start,
		OldEndIndex: oldEnd,
		NewEndIndex: newEnd,
		StartPoint:  sitter.Point{Row: 0, Column: start},
		OldEndPoint: sitter.Point{Row: 0, Column: oldEnd},
		NewEndPoint: sitter.Point{Row: 0, Column: newEnd},
	}
}

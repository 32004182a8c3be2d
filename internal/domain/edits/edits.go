// Package edits describes byte-range replacements on a source buffer and the
// matching tree-sitter edit notifications.
package edits

import (
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	m "camelize.dev/pkg/camelize/internal/model"
)

// ErrOffsetInvariant signals edit arithmetic that produced an impossible
// range. It always indicates an internal bug, never bad input.
var ErrOffsetInvariant = errors.New("edit offset invariant violated")

// Edit replaces the bytes [StartByte, OldEndByte) of a buffer. NewEndByte is
// the end of the replacement once applied. Renames never span lines, so all
// three points share the same row.
type Edit struct {
	StartByte   int
	OldEndByte  int
	NewEndByte  int
	StartPoint  m.Point
	OldEndPoint m.Point
	NewEndPoint m.Point
}

// New builds the edit that replaces occ with a text delta bytes longer.
func New(occ m.Occurrence, delta int) Edit {
	return Edit{
		StartByte:   occ.StartByte,
		OldEndByte:  occ.EndByte,
		NewEndByte:  occ.EndByte + delta,
		StartPoint:  occ.Start,
		OldEndPoint: occ.End,
		NewEndPoint: m.Point{Row: occ.End.Row, Column: occ.End.Column + delta},
	}
}

// Shift moves the whole edit by amount bytes, on both the byte offsets and
// the columns. Rows are untouched.
func (e Edit) Shift(amount int) Edit {
	return e.ShiftBytes(amount).ShiftColumns(amount)
}

// ShiftBytes moves the byte offsets only.
func (e Edit) ShiftBytes(amount int) Edit {
	e.StartByte += amount
	e.OldEndByte += amount
	e.NewEndByte += amount

	return e
}

// ShiftColumns moves the columns of the three points only.
func (e Edit) ShiftColumns(amount int) Edit {
	e.StartPoint.Column += amount
	e.OldEndPoint.Column += amount
	e.NewEndPoint.Column += amount

	return e
}

// Delta returns the length change the edit causes.
func (e Edit) Delta() int {
	return e.NewEndByte - e.OldEndByte
}

// Validate checks the edit against a buffer of bufferLen bytes.
func (e Edit) Validate(bufferLen int) error {
	switch {
	case e.StartByte < 0, e.OldEndByte < 0, e.NewEndByte < 0:
		return fmt.Errorf("%w: negative offset in %s", ErrOffsetInvariant, e)
	case e.OldEndByte < e.StartByte, e.NewEndByte < e.StartByte:
		return fmt.Errorf("%w: inverted range in %s", ErrOffsetInvariant, e)
	case e.OldEndByte > bufferLen:
		return fmt.Errorf("%w: %s exceeds buffer of %d bytes", ErrOffsetInvariant, e, bufferLen)
	case e.StartPoint.Column < 0, e.OldEndPoint.Column < 0, e.NewEndPoint.Column < 0:
		return fmt.Errorf("%w: negative column in %s", ErrOffsetInvariant, e)
	case e.StartPoint.Row < 0, e.OldEndPoint.Row != e.StartPoint.Row:
		return fmt.Errorf("%w: edit spans rows in %s", ErrOffsetInvariant, e)
	}

	return nil
}

// Apply splices text into buf over the edit's old range and returns the new
// buffer. buf itself is not modified.
func (e Edit) Apply(buf []byte, text string) ([]byte, error) {
	if err := e.Validate(len(buf)); err != nil {
		return nil, err
	}

	if len(text) != e.NewEndByte-e.StartByte {
		return nil, fmt.Errorf("%w: replacement %q does not fit %s", ErrOffsetInvariant, text, e)
	}

	out := make([]byte, 0, len(buf)+e.Delta())
	out = append(out, buf[:e.StartByte]...)
	out = append(out, text...)
	out = append(out, buf[e.OldEndByte:]...)

	return out, nil
}

// Input converts the edit to the notification tree-sitter expects. Call
// Validate first; Input does not re-check the ranges.
func (e Edit) Input() sitter.EditInput {
	return sitter.EditInput{
		StartIndex:  uint32(e.StartByte),
		OldEndIndex: uint32(e.OldEndByte),
		NewEndIndex: uint32(e.NewEndByte),
		StartPoint:  toSitterPoint(e.StartPoint),
		OldEndPoint: toSitterPoint(e.OldEndPoint),
		NewEndPoint: toSitterPoint(e.NewEndPoint),
	}
}

func (e Edit) String() string {
	return fmt.Sprintf("edit[%d:%d->%d @%s]", e.StartByte, e.OldEndByte, e.NewEndByte, e.StartPoint)
}

func toSitterPoint(p m.Point) sitter.Point {
	return sitter.Point{Row: uint32(p.Row), Column: uint32(p.Column)}
}

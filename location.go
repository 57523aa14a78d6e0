package jcheck

import (
	"fmt"

	"go4.org/mem"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// lineColAt computes the line and column of the given byte offset of in.
func lineColAt(in mem.RO, offset int) LineCol {
	offset = min(offset, in.Len())
	lc := LineCol{Line: 1}
	lineStart := 0
	for i := 0; i < offset; i++ {
		if in.At(i) == '\n' {
			lc.Line++
			lineStart = i + 1
		}
	}
	lc.Column = offset - lineStart
	return lc
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package document

import "fmt"

// Range represents a range between two positions within a document.
// Positions are zero-indexed and the End position is exclusive.
type Range struct {
	Start, End Pos
}

// Pos represents a position within a document (zero-indexed).
//
// Column is a byte offset within the line, NOT a UTF-16 code unit
// offset as used on the wire by LSP. Conversion between the two
// happens in the internal/lsp package, nowhere else.
type Pos struct {
	Line, Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Before returns true if p occurs before other
// in (line, column) lexicographic order.
func (p Pos) Before(other Pos) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

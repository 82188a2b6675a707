// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package edits

import (
	"io"
	"log"
	"sort"
	"strings"

	"github.com/editbuf/editbuf/internal/document"
	ilsp "github.com/editbuf/editbuf/internal/lsp"
	"github.com/editbuf/editbuf/internal/protocol"
)

// BufferStore is the line-oriented surface of the document store
// the applier reads from and commits to.
type BufferStore interface {
	LineRange(dh document.Handle, startLine, endLine int) ([]string, error)
	ReplaceLineRange(dh document.Handle, startLine, endLine int, lines []string) error
	LineCount(dh document.Handle) (int, error)
	CurrentVersion(dh document.Handle) (int, error)
	RequiresFinalNewline(dh document.Handle) (bool, error)
}

// Applier applies batches of text edits against single documents.
// The store is only written once per batch, after every edit has
// been spliced, so a failing edit never leaves a partial write
// behind.
type Applier struct {
	store  BufferStore
	logger *log.Logger
}

func NewApplier(store BufferStore) *Applier {
	return &Applier{
		store:  store,
		logger: defaultLogger,
	}
}

func (a *Applier) SetLogger(logger *log.Logger) {
	a.logger = logger
}

var defaultLogger = log.New(io.Discard, "", 0)

// ApplyBatch splices the given edits into the document as one
// atomic transformation. Only the minimal line window spanning
// all edits is fetched from the store.
//
// Edits are sorted by their start position (submission order
// breaking ties) and spliced from the bottom of the window upwards,
// which keeps the line numbers of every remaining edit valid
// without any coordinate shifting. For two edits anchored at the
// same position this places the earlier-submitted text first in
// the final content; servers rely on that ordering.
func (a *Applier) ApplyBatch(dh document.Handle, edits []protocol.TextEdit) error {
	if len(edits) == 0 {
		return nil
	}

	minLine := int(edits[0].Range.Start.Line)
	maxLine := int(edits[0].Range.End.Line)
	for _, edit := range edits[1:] {
		if l := int(edit.Range.Start.Line); l < minLine {
			minLine = l
		}
		if l := int(edit.Range.End.Line); l > maxLine {
			maxLine = l
		}
	}

	lineCount, err := a.store.LineCount(dh)
	if err != nil {
		return err
	}

	window, err := a.store.LineRange(dh, minLine, maxLine+1)
	if err != nil {
		return err
	}

	// A document following the trailing terminator convention
	// reports one logical line fewer than the editor-perceived
	// line count. Edits against the perceived empty last line
	// need a synthetic line to splice into, stripped again below
	// unless an edit filled it with content.
	syntheticLine := false
	if maxLine+1 == lineCount && window[len(window)-1] != "" {
		normalized, err := a.store.RequiresFinalNewline(dh)
		if err != nil {
			return err
		}
		if normalized {
			window = append(window, "")
			syntheticLine = true
		}
	}

	sorted := make([]protocol.TextEdit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Range.Start.Line != sorted[j].Range.Start.Line {
			return sorted[i].Range.Start.Line < sorted[j].Range.Start.Line
		}
		return sorted[i].Range.Start.Character < sorted[j].Range.Start.Character
	})

	for i := len(sorted) - 1; i >= 0; i-- {
		edit := sorted[i]

		start, err := windowPos(window, edit.Range.Start, minLine)
		if err != nil {
			return err
		}
		end, err := windowPos(window, edit.Range.End, minLine)
		if err != nil {
			return err
		}

		window, err = document.SpliceLines(window, start, end, splitNewText(edit.NewText))
		if err != nil {
			return err
		}
	}

	if syntheticLine && window[len(window)-1] == "" {
		window = window[:len(window)-1]
	}

	a.logger.Printf("applied %d edit(s) to %s over lines %d-%d",
		len(edits), dh.FullURI(), minLine, maxLine)

	return a.store.ReplaceLineRange(dh, minLine, maxLine+1, window)
}

// windowPos translates an absolute wire position into a position
// relative to the fetched window, with a byte-based column.
func windowPos(window []string, pos protocol.Position, minLine int) (document.Pos, error) {
	line := int(pos.Line) - minLine
	if line < 0 || line >= len(window) {
		return document.Pos{}, &document.InvalidPosErr{
			Pos: document.Pos{Line: int(pos.Line), Column: int(pos.Character)},
		}
	}

	col, err := ilsp.ColumnForUTF16Offset([]byte(window[line]), int(pos.Character))
	if err != nil {
		return document.Pos{}, err
	}

	return document.Pos{Line: line, Column: col}, nil
}

// splitNewText breaks the replacement text of an edit into lines.
// Text without terminators yields a single segment; a trailing
// terminator yields a trailing empty segment, which is what the
// splice expects for a replacement ending at a line start.
func splitNewText(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package document

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/editbuf/editbuf/internal/source"
)

type Document struct {
	Dir      DirHandle
	Filename string

	ModTime    time.Time
	LanguageID string
	Version    int

	// FinalNewline records whether the document body ended with a line
	// terminator when it was opened. Documents following this convention
	// keep it across edits, i.e. an edit batch never drops or introduces
	// the final terminator by itself.
	FinalNewline bool

	// Text contains the document body stored as bytes.
	// It originally comes as string from the client via LSP
	// but bytes are accepted by io/fs APIs, hence preferred.
	Text []byte

	// Lines contains Text separated into lines to enable byte offset
	// computation for any position-based operations, such as splicing
	// in text edits. LSP positions contain just line+column but most
	// byte-level operations require an offset.
	Lines source.Lines
}

func (doc *Document) FullPath() string {
	return filepath.Join(doc.Dir.Path(), doc.Filename)
}

func (d *Document) Copy() *Document {
	return &Document{
		Dir:          DirHandle{URI: d.Dir.URI},
		Filename:     d.Filename,
		ModTime:      d.ModTime,
		LanguageID:   d.LanguageID,
		Version:      d.Version,
		FinalNewline: d.FinalNewline,
		Text:         d.Text,
		Lines:        d.Lines.Copy(),
	}
}

// LogicalLines returns the document body as user-perceived lines
// without terminators. A document which ends with a line terminator
// yields exactly as many lines as it has terminators, i.e. "a\n"
// is a single line, not a line followed by an empty one.
func (d *Document) LogicalLines() []string {
	text := string(d.Text)
	if d.FinalNewline {
		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")
	}

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package lsp

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/editbuf/editbuf/internal/document"
	"github.com/editbuf/editbuf/internal/protocol"
	"github.com/editbuf/editbuf/internal/source"
)

func TestContentChange_fullReplace(t *testing.T) {
	doc := testDocument("hello world\n")

	ch, err := ContentChange(protocol.TextDocumentContentChangeEvent{
		Text: "new text\n",
	}, doc)
	if err != nil {
		t.Fatal(err)
	}

	if ch.Range() != nil {
		t.Fatalf("expected nil range for full replacement, given: %#v", ch.Range())
	}
	if ch.Text() != "new text\n" {
		t.Fatalf("unexpected text: %q", ch.Text())
	}
}

func TestContentChange_incremental(t *testing.T) {
	doc := testDocument("héllo world\n")

	ch, err := ContentChange(protocol.TextDocumentContentChangeEvent{
		Range: &protocol.Range{
			Start: protocol.Position{Line: 0, Character: 6},
			End:   protocol.Position{Line: 0, Character: 11},
		},
		Text: "earth",
	}, doc)
	if err != nil {
		t.Fatal(err)
	}

	// é is 2 bytes, so byte columns are shifted by one
	expectedRng := &document.Range{
		Start: document.Pos{Line: 0, Column: 7},
		End:   document.Pos{Line: 0, Column: 12},
	}
	if diff := cmp.Diff(expectedRng, ch.Range()); diff != "" {
		t.Fatalf("unexpected range: %s", diff)
	}
}

func TestDocumentChanges_lineOutOfRange(t *testing.T) {
	doc := testDocument("hello world\n")

	_, err := DocumentChanges([]protocol.TextDocumentContentChangeEvent{
		{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 5, Character: 0},
				End:   protocol.Position{Line: 5, Character: 0},
			},
			Text: "x",
		},
	}, doc)

	expectedErr := &document.InvalidPosErr{Pos: document.Pos{Line: 5, Column: 0}}
	if err == nil || err.Error() != expectedErr.Error() {
		t.Fatalf("expected %q, given: %#v", expectedErr.Error(), err)
	}
}

func testDocument(text string) *document.Document {
	return &document.Document{
		Text:  []byte(text),
		Lines: source.MakeSourceLines("main.go", []byte(text)),
	}
}

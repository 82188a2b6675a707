// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package lsp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/editbuf/editbuf/internal/document"
	"github.com/editbuf/editbuf/internal/protocol"
	"github.com/editbuf/editbuf/internal/source"
)

func TestColumnForUTF16Offset(t *testing.T) {
	testCases := []struct {
		line     string
		utf16Col int
		expected int
	}{
		// ASCII columns match byte offsets
		{"hello", 0, 0},
		{"hello", 3, 3},
		{"hello", 5, 5},

		// 2-byte sequence counts as a single UTF-16 unit
		{"héllo", 2, 3},

		// code point outside the BMP counts as a surrogate pair,
		// i.e. two UTF-16 units but four bytes
		{"a😀b", 1, 1},
		{"a😀b", 3, 5},
		{"a😀b", 4, 6},

		// columns past the end of the line resolve to line length
		{"hello", 11, 5},
		{"héllo", 99, 6},
		{"", 3, 0},

		// negative columns resolve to line start
		{"hello", -1, 0},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("%d-%q-%d", i, tc.line, tc.utf16Col), func(t *testing.T) {
			col, err := ColumnForUTF16Offset([]byte(tc.line), tc.utf16Col)
			if err != nil {
				t.Fatal(err)
			}
			if col != tc.expected {
				t.Fatalf("expected byte offset %d, given %d", tc.expected, col)
			}
		})
	}
}

func TestUTF16OffsetForColumn(t *testing.T) {
	testCases := []struct {
		line     string
		byteCol  int
		expected int
	}{
		{"hello", 0, 0},
		{"hello", 5, 5},
		{"héllo", 3, 2},
		{"a😀b", 5, 3},
		{"a😀b", 6, 4},

		// offsets past the end resolve to the full line width
		{"a😀b", 25, 4},
		{"", 4, 0},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("%d-%q-%d", i, tc.line, tc.byteCol), func(t *testing.T) {
			col, err := UTF16OffsetForColumn([]byte(tc.line), tc.byteCol)
			if err != nil {
				t.Fatal(err)
			}
			if col != tc.expected {
				t.Fatalf("expected UTF-16 offset %d, given %d", tc.expected, col)
			}
		})
	}
}

func TestColumnForUTF16Offset_roundTrip(t *testing.T) {
	line := []byte("héllo 😀 world")

	for utf16Col := 0; utf16Col <= 14; utf16Col++ {
		byteCol, err := ColumnForUTF16Offset(line, utf16Col)
		if err != nil {
			t.Fatal(err)
		}
		given, err := UTF16OffsetForColumn(line, byteCol)
		if err != nil {
			t.Fatal(err)
		}

		// the second unit of a surrogate pair resolves to the
		// following sequence, so round-tripping may move forward
		// by one unit but never backwards
		if given != utf16Col && given != utf16Col+1 {
			t.Fatalf("column %d did not round-trip: byte %d, given %d",
				utf16Col, byteCol, given)
		}
	}
}

func TestColumnForUTF16Offset_invalidEncoding(t *testing.T) {
	line := []byte{'a', 0xff, 'b'}

	_, err := ColumnForUTF16Offset(line, 3)
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
	if !errors.Is(err, &InvalidEncodingErr{}) {
		t.Fatalf("unexpected error: %#v", err)
	}

	_, err = UTF16OffsetForColumn(line, 3)
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
	if !errors.Is(err, &InvalidEncodingErr{}) {
		t.Fatalf("unexpected error: %#v", err)
	}
}

func TestDocumentPosFromProtocol(t *testing.T) {
	lines := source.MakeSourceLines("/test.txt", []byte("héllo\nwörld\n"))

	testCases := []struct {
		pos      protocol.Position
		expected document.Pos
	}{
		{protocol.Position{Line: 0, Character: 0}, document.Pos{Line: 0, Column: 0}},
		{protocol.Position{Line: 0, Character: 2}, document.Pos{Line: 0, Column: 3}},
		{protocol.Position{Line: 1, Character: 5}, document.Pos{Line: 1, Column: 6}},
		// column past the line end resolves to the content length,
		// terminator excluded
		{protocol.Position{Line: 0, Character: 50}, document.Pos{Line: 0, Column: 6}},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			pos, err := DocumentPosFromProtocol(lines, tc.pos)
			if err != nil {
				t.Fatal(err)
			}
			if pos != tc.expected {
				t.Fatalf("expected %s, given %s", tc.expected, pos)
			}
		})
	}
}

func TestDocumentPosFromProtocol_lineOutOfBounds(t *testing.T) {
	lines := source.MakeSourceLines("/test.txt", []byte("one\n"))

	_, err := DocumentPosFromProtocol(lines, protocol.Position{Line: 7, Character: 0})
	if err == nil {
		t.Fatal("expected error for line out of bounds")
	}
	if !errors.Is(err, &document.InvalidPosErr{}) {
		t.Fatalf("unexpected error: %#v", err)
	}
}

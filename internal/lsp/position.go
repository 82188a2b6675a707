// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package lsp

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/apparentlymart/go-textseg/v13/textseg"

	"github.com/editbuf/editbuf/internal/document"
	"github.com/editbuf/editbuf/internal/protocol"
	"github.com/editbuf/editbuf/internal/source"
)

// ColumnForUTF16Offset takes a protocol.Position.Character value for
// the given line and finds the byte offset of the start of the UTF-8
// sequence that represents it. Columns pointing past the end of the
// line resolve to the line length, per the LSP specification, rather
// than raising an error.
//
// Note that this can't always produce an exact result; if the column
// refers to the second unit of a UTF-16 surrogate pair then it resolves
// to the following sequence because UTF-8 sequences are not divisible
// in the same way.
func ColumnForUTF16Offset(line []byte, utf16Col int) (int, error) {
	if utf16Col < 0 {
		return 0, nil
	}

	// We need to edge carefully along the line while counting UTF-16
	// code units in our UTF-8 buffer, since LSP columns are a count
	// of UTF-16 units.
	byteCt := 0
	utf16Ct := 0
	remain := line
	for {
		if utf16Ct >= utf16Col { // we've found it
			return byteCt, nil
		}
		if len(remain) == 0 { // ran out of characters, so given column points past the line
			return len(line), nil
		}

		// We're intentionally using individual UTF-8 sequences here
		// rather than grapheme clusters because an LSP position might
		// point into the middle of a grapheme cluster.
		adv, chBytes, _ := textseg.ScanUTF8Sequences(remain, true)
		remain = remain[adv:]
		byteCt += adv
		for len(chBytes) > 0 {
			r, l := utf8.DecodeRune(chBytes)
			if r == utf8.RuneError && l == 1 {
				return 0, &InvalidEncodingErr{ByteOffset: byteCt - len(chBytes)}
			}
			chBytes = chBytes[l:]
			c1, c2 := utf16.EncodeRune(r)
			if c1 == 0xfffd && c2 == 0xfffd {
				utf16Ct++ // codepoint fits in one 16-bit unit
			} else {
				utf16Ct += 2 // codepoint requires a surrogate pair
			}
		}
	}
}

// UTF16OffsetForColumn is the inverse of ColumnForUTF16Offset: it
// counts the UTF-16 code units which represent line[:byteCol].
// Offsets past the end of the line resolve to the full line width.
func UTF16OffsetForColumn(line []byte, byteCol int) (int, error) {
	if byteCol < 0 {
		return 0, nil
	}
	if byteCol > len(line) {
		byteCol = len(line)
	}

	byteCt := 0
	utf16Ct := 0
	remain := line
	for byteCt < byteCol && len(remain) > 0 {
		adv, chBytes, _ := textseg.ScanUTF8Sequences(remain, true)
		remain = remain[adv:]
		byteCt += adv
		for len(chBytes) > 0 {
			r, l := utf8.DecodeRune(chBytes)
			if r == utf8.RuneError && l == 1 {
				return 0, &InvalidEncodingErr{ByteOffset: byteCt - len(chBytes)}
			}
			chBytes = chBytes[l:]
			c1, c2 := utf16.EncodeRune(r)
			if c1 == 0xfffd && c2 == 0xfffd {
				utf16Ct++
			} else {
				utf16Ct += 2
			}
		}
	}

	return utf16Ct, nil
}

// DocumentPosFromProtocol translates a wire position into a document
// position with a byte-based column. The line must exist within the
// given lines; the column is resolved against the line content
// without its terminator.
func DocumentPosFromProtocol(lines source.Lines, pos protocol.Position) (document.Pos, error) {
	line := int(pos.Line)
	if line < 0 || line >= len(lines) {
		return document.Pos{}, &document.InvalidPosErr{
			Pos: document.Pos{Line: line, Column: int(pos.Character)},
		}
	}

	col, err := ColumnForUTF16Offset(lines[line].Content(), int(pos.Character))
	if err != nil {
		return document.Pos{}, err
	}

	return document.Pos{Line: line, Column: col}, nil
}

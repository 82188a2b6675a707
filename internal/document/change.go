// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package document

import (
	"bytes"

	"github.com/editbuf/editbuf/internal/source"
)

type Change interface {
	Text() string
	Range() *Range
}

type Changes []Change

func ApplyChanges(original []byte, changes Changes) ([]byte, error) {
	if len(changes) == 0 {
		return original, nil
	}

	var buf bytes.Buffer
	_, err := buf.Write(original)
	if err != nil {
		return nil, err
	}

	for _, ch := range changes {
		err := applyDocumentChange(&buf, ch)
		if err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

func applyDocumentChange(buf *bytes.Buffer, change Change) error {
	// if the range is nil, we assume it is full content change
	if change.Range() == nil {
		buf.Reset()
		_, err := buf.WriteString(change.Text())
		return err
	}

	lines := source.MakeSourceLines("", buf.Bytes())

	startByte, err := ByteOffsetForPos(lines, change.Range().Start)
	if err != nil {
		return err
	}
	endByte, err := ByteOffsetForPos(lines, change.Range().End)
	if err != nil {
		return err
	}

	diff := endByte - startByte
	if diff > 0 {
		buf.Grow(diff)
	}

	beforeChange := make([]byte, startByte)
	copy(beforeChange, buf.Bytes())
	afterBytes := buf.Bytes()[endByte:]
	afterChange := make([]byte, len(afterBytes))
	copy(afterChange, afterBytes)

	buf.Reset()

	_, err = buf.Write(beforeChange)
	if err != nil {
		return err
	}
	_, err = buf.WriteString(change.Text())
	if err != nil {
		return err
	}
	_, err = buf.Write(afterChange)
	if err != nil {
		return err
	}

	return nil
}

// ByteOffsetForPos translates a position into a byte offset within
// the document the lines were built from. pos.Column is expected
// to be a byte offset within the line already, i.e. any UTF-16
// based column must be translated before reaching this point.
func ByteOffsetForPos(lines source.Lines, pos Pos) (int, error) {
	if pos.Line < 0 || pos.Line >= len(lines) {
		return 0, &InvalidPosErr{Pos: pos}
	}
	line := lines[pos.Line]

	if pos.Column < 0 || pos.Column > len(line.Bytes) {
		return 0, &InvalidPosErr{Pos: pos}
	}

	return line.Range.Start.Byte + pos.Column, nil
}

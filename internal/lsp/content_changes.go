// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package lsp

import (
	"github.com/editbuf/editbuf/internal/document"
	"github.com/editbuf/editbuf/internal/protocol"
)

type contentChange struct {
	text string
	rng  *document.Range
}

func ContentChange(chEvent protocol.TextDocumentContentChangeEvent, doc *document.Document) (document.Change, error) {
	// if the range is nil, we assume it is full content change
	if chEvent.Range == nil {
		return &contentChange{
			text: chEvent.Text,
		}, nil
	}

	start, err := DocumentPosFromProtocol(doc.Lines, chEvent.Range.Start)
	if err != nil {
		return nil, err
	}
	end, err := DocumentPosFromProtocol(doc.Lines, chEvent.Range.End)
	if err != nil {
		return nil, err
	}

	return &contentChange{
		text: chEvent.Text,
		rng: &document.Range{
			Start: start,
			End:   end,
		},
	}, nil
}

func DocumentChanges(events []protocol.TextDocumentContentChangeEvent, doc *document.Document) (document.Changes, error) {
	changes := make(document.Changes, len(events))
	for i, event := range events {
		ch, err := ContentChange(event, doc)
		if err != nil {
			return nil, err
		}
		changes[i] = ch
	}
	return changes, nil
}

func (fc *contentChange) Text() string {
	return fc.text
}

func (fc *contentChange) Range() *document.Range {
	return fc.rng
}

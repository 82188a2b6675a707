// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package protocol

import (
	"encoding/json"
	"fmt"
)

// WorkspaceEdit arrives in one of two mutually exclusive forms.
// DocumentChanges is the richer one and takes precedence when
// both are present.
type WorkspaceEdit struct {
	Changes         map[DocumentURI][]TextEdit `json:"changes,omitempty"`
	DocumentChanges []DocumentChange           `json:"documentChanges,omitempty"`
}

// TextDocumentEdit carries edits for a single document along with
// the document version the edits were computed against.
type TextDocumentEdit struct {
	TextDocument OptionalVersionedTextDocumentIdentifier `json:"textDocument"`
	Edits        []TextEdit                              `json:"edits"`
}

type CreateFile struct {
	Kind string      `json:"kind"` // "create"
	URI  DocumentURI `json:"uri"`
}

type RenameFile struct {
	Kind   string      `json:"kind"` // "rename"
	OldURI DocumentURI `json:"oldUri"`
	NewURI DocumentURI `json:"newUri"`
}

type DeleteFile struct {
	Kind string      `json:"kind"` // "delete"
	URI  DocumentURI `json:"uri"`
}

// DocumentChange is a tagged union of TextDocumentEdit and the
// file lifecycle operations. Exactly one field is non-nil.
//
// On the wire lifecycle operations are distinguished by a "kind"
// member which TextDocumentEdit lacks.
type DocumentChange struct {
	TextDocumentEdit *TextDocumentEdit
	CreateFile       *CreateFile
	RenameFile       *RenameFile
	DeleteFile       *DeleteFile
}

func (dc *DocumentChange) UnmarshalJSON(data []byte) error {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch probe.Kind {
	case "":
		dc.TextDocumentEdit = &TextDocumentEdit{}
		return json.Unmarshal(data, dc.TextDocumentEdit)
	case "create":
		dc.CreateFile = &CreateFile{}
		return json.Unmarshal(data, dc.CreateFile)
	case "rename":
		dc.RenameFile = &RenameFile{}
		return json.Unmarshal(data, dc.RenameFile)
	case "delete":
		dc.DeleteFile = &DeleteFile{}
		return json.Unmarshal(data, dc.DeleteFile)
	}

	return fmt.Errorf("unexpected document change kind: %q", probe.Kind)
}

func (dc DocumentChange) MarshalJSON() ([]byte, error) {
	switch {
	case dc.TextDocumentEdit != nil:
		return json.Marshal(dc.TextDocumentEdit)
	case dc.CreateFile != nil:
		return json.Marshal(dc.CreateFile)
	case dc.RenameFile != nil:
		return json.Marshal(dc.RenameFile)
	case dc.DeleteFile != nil:
		return json.Marshal(dc.DeleteFile)
	}
	return nil, fmt.Errorf("empty document change")
}

type ApplyWorkspaceEditParams struct {
	Label string        `json:"label,omitempty"`
	Edit  WorkspaceEdit `json:"edit"`
}

type ApplyWorkspaceEditResult struct {
	Applied       bool   `json:"applied"`
	FailureReason string `json:"failureReason,omitempty"`
}

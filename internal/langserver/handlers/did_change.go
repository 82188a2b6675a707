// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"

	"github.com/editbuf/editbuf/internal/document"
	ilsp "github.com/editbuf/editbuf/internal/lsp"
	lsp "github.com/editbuf/editbuf/internal/protocol"
)

func (svc *service) TextDocumentDidChange(ctx context.Context, params lsp.DidChangeTextDocumentParams) error {
	dh := ilsp.HandleFromDocumentURI(params.TextDocument.URI)
	doc, err := svc.stateStore.DocumentStore.GetDocument(dh)
	if err != nil {
		return err
	}

	newVersion := int(params.TextDocument.Version)

	// Versions don't have to be consecutive, but they must be increasing
	if newVersion <= doc.Version {
		svc.logger.Printf("Old document version (%d) received, current version is %d. "+
			"Ignoring this update for %s. This is likely a client bug, please report it.",
			newVersion, doc.Version, params.TextDocument.URI)
		return nil
	}

	changes, err := ilsp.DocumentChanges(params.ContentChanges, doc)
	if err != nil {
		return err
	}
	newText, err := document.ApplyChanges(doc.Text, changes)
	if err != nil {
		return err
	}

	return svc.stateStore.DocumentStore.UpdateDocument(dh, newText, newVersion)
}

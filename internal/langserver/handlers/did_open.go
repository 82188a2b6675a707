// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"

	ilsp "github.com/editbuf/editbuf/internal/lsp"
	lsp "github.com/editbuf/editbuf/internal/protocol"
)

func (svc *service) TextDocumentDidOpen(ctx context.Context, params lsp.DidOpenTextDocumentParams) error {
	dh := ilsp.HandleFromDocumentURI(params.TextDocument.URI)
	err := svc.stateStore.DocumentStore.OpenDocument(dh,
		params.TextDocument.LanguageID,
		int(params.TextDocument.Version),
		[]byte(params.TextDocument.Text))
	if err != nil {
		return err
	}

	svc.logger.Printf("opened document %s (%s, version %d)",
		dh.FullURI(), params.TextDocument.LanguageID, params.TextDocument.Version)

	return nil
}

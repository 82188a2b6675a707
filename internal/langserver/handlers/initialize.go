// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"

	lsctx "github.com/editbuf/editbuf/internal/context"
	lsp "github.com/editbuf/editbuf/internal/protocol"
)

func (svc *service) Initialize(ctx context.Context, params lsp.InitializeParams) (lsp.InitializeResult, error) {
	serverCaps := initializeResult(ctx)

	if params.ClientInfo != nil {
		svc.logger.Printf("Connected client: %s %s",
			params.ClientInfo.Name, params.ClientInfo.Version)
	}

	err := lsctx.SetClientCapabilities(ctx, &params.Capabilities)
	if err != nil {
		return serverCaps, err
	}

	err = svc.configureSessionDependencies()
	if err != nil {
		return serverCaps, err
	}

	return serverCaps, nil
}

func initializeResult(ctx context.Context) lsp.InitializeResult {
	serverCaps := lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    lsp.Incremental,
			},
		},
	}

	serverCaps.ServerInfo.Name = "editbuf-ls"
	version, ok := lsctx.LanguageServerVersion(ctx)
	if ok {
		serverCaps.ServerInfo.Version = version
	}

	return serverCaps
}

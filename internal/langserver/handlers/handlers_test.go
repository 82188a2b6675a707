// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"
	"testing"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/stretchr/testify/require"

	ilsp "github.com/editbuf/editbuf/internal/lsp"
	lsp "github.com/editbuf/editbuf/internal/protocol"
)

func testService(t *testing.T) *service {
	t.Helper()

	sessCtx, stopSession := context.WithCancel(context.Background())
	t.Cleanup(stopSession)

	svc := &service{
		logger:      discardLogs,
		srvCtx:      context.Background(),
		sessCtx:     sessCtx,
		stopSession: stopSession,
	}
	err := svc.configureSessionDependencies()
	require.NoError(t, err)

	return svc
}

func (svc *service) documentText(t *testing.T, uri lsp.DocumentURI) string {
	t.Helper()

	dh := ilsp.HandleFromDocumentURI(uri)
	doc, err := svc.stateStore.DocumentStore.GetDocument(dh)
	require.NoError(t, err)
	return string(doc.Text)
}

func openTestDocument(t *testing.T, svc *service, uri lsp.DocumentURI, version int32, text string) {
	t.Helper()

	err := svc.TextDocumentDidOpen(context.Background(), lsp.DidOpenTextDocumentParams{
		TextDocument: lsp.TextDocumentItem{
			URI:        uri,
			LanguageID: "go",
			Version:    version,
			Text:       text,
		},
	})
	require.NoError(t, err)
}

// TestSession_rpcLifecycle drives the full jrpc2 dispatch path
// (method map, session state machine, handle wrapper) over an
// in-memory channel, rather than calling handler methods directly.
func TestSession_rpcLifecycle(t *testing.T) {
	svc := testService(t)

	assigner, err := svc.Assigner()
	require.NoError(t, err)

	clientCh, serverCh := channel.Direct()
	srv := jrpc2.NewServer(assigner, nil).Start(serverCh)
	t.Cleanup(func() { srv.Stop() })

	client := jrpc2.NewClient(clientCh, nil)
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()

	_, err = client.Call(ctx, "initialize", lsp.InitializeParams{})
	require.NoError(t, err)

	_, err = client.Call(ctx, "initialized", struct{}{})
	require.NoError(t, err)

	_, err = client.Call(ctx, "textDocument/didOpen", lsp.DidOpenTextDocumentParams{
		TextDocument: lsp.TextDocumentItem{
			URI:        "file:///dir/main.go",
			LanguageID: "go",
			Version:    1,
			Text:       "hello world\n",
		},
	})
	require.NoError(t, err)

	_, err = client.Call(ctx, "textDocument/didChange", lsp.DidChangeTextDocumentParams{
		TextDocument: lsp.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: lsp.TextDocumentIdentifier{URI: "file:///dir/main.go"},
			Version:                2,
		},
		ContentChanges: []lsp.TextDocumentContentChangeEvent{
			{
				Range: &lsp.Range{
					Start: lsp.Position{Line: 0, Character: 6},
					End:   lsp.Position{Line: 0, Character: 11},
				},
				Text: "earth",
			},
		},
	})
	require.NoError(t, err)

	require.Equal(t, "hello earth\n", svc.documentText(t, "file:///dir/main.go"))
}

func TestSession_rejectsRequestsBeforeInitialization(t *testing.T) {
	svc := testService(t)

	assigner, err := svc.Assigner()
	require.NoError(t, err)

	clientCh, serverCh := channel.Direct()
	srv := jrpc2.NewServer(assigner, nil).Start(serverCh)
	t.Cleanup(func() { srv.Stop() })

	client := jrpc2.NewClient(clientCh, nil)
	t.Cleanup(func() { client.Close() })

	_, err = client.Call(context.Background(), "textDocument/didOpen", lsp.DidOpenTextDocumentParams{
		TextDocument: lsp.TextDocumentItem{
			URI:  "file:///dir/main.go",
			Text: "content\n",
		},
	})
	require.Error(t, err)
}

func TestTextDocumentDidChange_incremental(t *testing.T) {
	svc := testService(t)
	openTestDocument(t, svc, "file:///dir/main.go", 1, "hello world\n")

	err := svc.TextDocumentDidChange(context.Background(), lsp.DidChangeTextDocumentParams{
		TextDocument: lsp.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: lsp.TextDocumentIdentifier{URI: "file:///dir/main.go"},
			Version:                2,
		},
		ContentChanges: []lsp.TextDocumentContentChangeEvent{
			{
				Range: &lsp.Range{
					Start: lsp.Position{Line: 0, Character: 6},
					End:   lsp.Position{Line: 0, Character: 11},
				},
				Text: "earth",
			},
		},
	})
	require.NoError(t, err)

	require.Equal(t, "hello earth\n", svc.documentText(t, "file:///dir/main.go"))
}

func TestTextDocumentDidChange_fullReplace(t *testing.T) {
	svc := testService(t)
	openTestDocument(t, svc, "file:///dir/main.go", 1, "old content\n")

	err := svc.TextDocumentDidChange(context.Background(), lsp.DidChangeTextDocumentParams{
		TextDocument: lsp.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: lsp.TextDocumentIdentifier{URI: "file:///dir/main.go"},
			Version:                2,
		},
		ContentChanges: []lsp.TextDocumentContentChangeEvent{
			{Text: "new content\n"},
		},
	})
	require.NoError(t, err)

	require.Equal(t, "new content\n", svc.documentText(t, "file:///dir/main.go"))
}

func TestTextDocumentDidChange_oldVersionIgnored(t *testing.T) {
	svc := testService(t)
	openTestDocument(t, svc, "file:///dir/main.go", 5, "current\n")

	err := svc.TextDocumentDidChange(context.Background(), lsp.DidChangeTextDocumentParams{
		TextDocument: lsp.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: lsp.TextDocumentIdentifier{URI: "file:///dir/main.go"},
			Version:                3,
		},
		ContentChanges: []lsp.TextDocumentContentChangeEvent{
			{Text: "outdated\n"},
		},
	})
	require.NoError(t, err)

	require.Equal(t, "current\n", svc.documentText(t, "file:///dir/main.go"))
}

func TestTextDocumentDidClose(t *testing.T) {
	svc := testService(t)
	openTestDocument(t, svc, "file:///dir/main.go", 1, "content\n")

	err := svc.TextDocumentDidClose(context.Background(), lsp.DidCloseTextDocumentParams{
		TextDocument: lsp.TextDocumentIdentifier{URI: "file:///dir/main.go"},
	})
	require.NoError(t, err)

	dh := ilsp.HandleFromDocumentURI("file:///dir/main.go")
	_, err = svc.stateStore.DocumentStore.GetDocument(dh)
	require.Error(t, err)
}

func TestWorkspaceApplyEdit(t *testing.T) {
	svc := testService(t)
	openTestDocument(t, svc, "file:///dir/main.go", 1, "hello world\n")

	result, err := svc.WorkspaceApplyEdit(context.Background(), lsp.ApplyWorkspaceEditParams{
		Label: "rename symbol",
		Edit: lsp.WorkspaceEdit{
			Changes: map[lsp.DocumentURI][]lsp.TextEdit{
				"file:///dir/main.go": {
					{
						Range: lsp.Range{
							Start: lsp.Position{Line: 0, Character: 6},
							End:   lsp.Position{Line: 0, Character: 11},
						},
						NewText: "earth",
					},
				},
			},
		},
	})
	require.NoError(t, err)
	require.True(t, result.Applied)

	require.Equal(t, "hello earth\n", svc.documentText(t, "file:///dir/main.go"))
}

func TestWorkspaceApplyEdit_unsupportedOperation(t *testing.T) {
	svc := testService(t)
	openTestDocument(t, svc, "file:///dir/main.go", 1, "content\n")

	result, err := svc.WorkspaceApplyEdit(context.Background(), lsp.ApplyWorkspaceEditParams{
		Edit: lsp.WorkspaceEdit{
			DocumentChanges: []lsp.DocumentChange{
				{
					DeleteFile: &lsp.DeleteFile{
						Kind: "delete",
						URI:  "file:///dir/main.go",
					},
				},
			},
		},
	})

	// failures are reported in the response, not as an RPC error
	require.NoError(t, err)
	require.False(t, result.Applied)
	require.Contains(t, result.FailureReason, "delete")

	require.Equal(t, "content\n", svc.documentText(t, "file:///dir/main.go"))
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"

	lsp "github.com/editbuf/editbuf/internal/protocol"
)

// WorkspaceApplyEdit applies a server-issued workspace edit to the
// open documents. Failures are reported in the response rather than
// as an RPC error, per the protocol, so that the issuing server
// learns whether its edit took effect.
func (svc *service) WorkspaceApplyEdit(ctx context.Context, params lsp.ApplyWorkspaceEditParams) (lsp.ApplyWorkspaceEditResult, error) {
	err := svc.resolver.ApplyWorkspaceEdit(ctx, params.Edit)
	if err != nil {
		svc.logger.Printf("failed to apply workspace edit (label: %q): %s",
			params.Label, err)
		return lsp.ApplyWorkspaceEditResult{
			Applied:       false,
			FailureReason: err.Error(),
		}, nil
	}

	return lsp.ApplyWorkspaceEditResult{Applied: true}, nil
}

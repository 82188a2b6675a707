// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"

	lsctx "github.com/editbuf/editbuf/internal/context"
)

func (svc *service) Initialized(ctx context.Context, params initializedParams) error {
	caps, err := lsctx.ClientCapabilities(ctx)
	if err != nil {
		return err
	}

	if !caps.Workspace.ApplyEdit {
		svc.logger.Printf("Client does not advertise workspace/applyEdit support, " +
			"server-issued edits may be rejected")
	}

	return nil
}

// initializedParams is deliberately empty; the notification
// carries no arguments
type initializedParams struct{}

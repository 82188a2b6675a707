// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"

	"github.com/creachadair/jrpc2"
)

// clientSink pushes notifications to the connected client via the
// jrpc2 server bound to the request context. Outside of a live
// request (e.g. in tests invoking handlers directly) notifications
// are dropped.
type clientSink struct{}

func (clientSink) Notify(ctx context.Context, method string, params interface{}) error {
	srv := jrpc2.ServerFromContext(ctx)
	if srv == nil {
		return nil
	}
	return srv.Notify(ctx, method, params)
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package handlers

import (
	"context"
)

func Shutdown(ctx context.Context) error {
	return nil
}

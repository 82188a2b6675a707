// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package lsp

import (
	"fmt"
)

// InvalidEncodingErr is raised when position translation runs into
// a byte sequence which is not valid UTF-8. Positions within such
// a line cannot be resolved reliably in either direction.
type InvalidEncodingErr struct {
	ByteOffset int
}

func (e *InvalidEncodingErr) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at byte offset %d", e.ByteOffset)
}

func (e *InvalidEncodingErr) Is(err error) bool {
	_, ok := err.(*InvalidEncodingErr)
	return ok
}

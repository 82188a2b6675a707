// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package edits

import (
	"fmt"
)

// UnsupportedOperationErr is raised when a workspace edit carries
// a file lifecycle operation (create, rename, delete). Filesystem
// mutation belongs to the editor, not to this process.
type UnsupportedOperationErr struct {
	Op string
}

func (e *UnsupportedOperationErr) Error() string {
	return fmt.Sprintf("unsupported workspace edit operation: %q", e.Op)
}

func (e *UnsupportedOperationErr) Is(err error) bool {
	_, ok := err.(*UnsupportedOperationErr)
	return ok
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package document

import (
	"fmt"
)

type InvalidPosErr struct {
	Pos Pos
}

func (e *InvalidPosErr) Error() string {
	return fmt.Sprintf("invalid position: %s", e.Pos)
}

func (e *InvalidPosErr) Is(err error) bool {
	_, ok := err.(*InvalidPosErr)
	return ok
}

// InvalidRangeErr is raised when an edit names a range which falls
// outside the document (or line window) it targets, or where start
// occurs after end. Bounds are never silently clamped.
type InvalidRangeErr struct {
	Range  Range
	Reason string
}

func (e *InvalidRangeErr) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid range %s: %s", e.Range, e.Reason)
	}
	return fmt.Sprintf("invalid range %s", e.Range)
}

func (e *InvalidRangeErr) Is(err error) bool {
	_, ok := err.(*InvalidRangeErr)
	return ok
}

type DocumentNotFound struct {
	URI string
}

func (e *DocumentNotFound) Error() string {
	msg := "document not found"
	if e.URI != "" {
		return fmt.Sprintf("%s: %s", e.URI, msg)
	}

	return msg
}

func (e *DocumentNotFound) Is(err error) bool {
	_, ok := err.(*DocumentNotFound)
	return ok
}

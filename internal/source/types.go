// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package source

import (
	"bytes"

	"github.com/hashicorp/hcl/v2"
)

type Line struct {
	// Bytes contains the line bytes inc. any trailing end-of-line markers
	Bytes []byte

	// Range contains the range of the line bytes inc. any trailing
	// end-of-line markers. The range will span across two lines in most
	// cases (other than last line without trailing new line)
	Range hcl.Range
}

func (l Line) Copy() Line {
	return Line{
		Bytes: l.Bytes,
		Range: l.Range,
	}
}

// Content returns the line bytes without any trailing end-of-line markers
func (l Line) Content() []byte {
	content := bytes.TrimSuffix(l.Bytes, []byte("\n"))
	return bytes.TrimSuffix(content, []byte("\r"))
}

type Lines []Line

func (l Lines) Copy() Lines {
	newLines := make(Lines, len(l))
	for i, line := range l {
		newLines[i] = line.Copy()
	}
	return newLines
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package source

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/hcl/v2"
)

func TestMakeSourceLines_empty(t *testing.T) {
	lines := MakeSourceLines("/test.txt", []byte{})
	if len(lines) != 1 {
		t.Fatalf("Expected 1 (virtual) line from empty content, %d parsed:\n%#v",
			len(lines), lines)
	}
}

func TestMakeSourceLines_basic(t *testing.T) {
	lines := MakeSourceLines("/test.txt", []byte("hello\nworld"))

	expectedLines := Lines{
		{
			Bytes: []byte("hello\n"),
			Range: hcl.Range{
				Filename: "/test.txt",
				Start:    hcl.Pos{Line: 1, Column: 1, Byte: 0},
				End:      hcl.Pos{Line: 2, Column: 1, Byte: 6},
			},
		},
		{
			Bytes: []byte("world"),
			Range: hcl.Range{
				Filename: "/test.txt",
				Start:    hcl.Pos{Line: 2, Column: 1, Byte: 6},
				End:      hcl.Pos{Line: 2, Column: 6, Byte: 11},
			},
		},
		{
			Bytes: []byte{},
			Range: hcl.Range{
				Filename: "/test.txt",
				Start:    hcl.Pos{Line: 2, Column: 6, Byte: 11},
				End:      hcl.Pos{Line: 2, Column: 6, Byte: 11},
			},
		},
	}

	if diff := cmp.Diff(expectedLines, lines); diff != "" {
		t.Fatalf("Lines don't match: %s", diff)
	}
}

func TestLineContent(t *testing.T) {
	testCases := []struct {
		raw      string
		expected string
	}{
		{"hello\n", "hello"},
		{"hello\r\n", "hello"},
		{"hello", "hello"},
		{"", ""},
	}
	for i, tc := range testCases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			l := Line{Bytes: []byte(tc.raw)}
			if string(l.Content()) != tc.expected {
				t.Fatalf("Unexpected content for %q: %q",
					tc.raw, string(l.Content()))
			}
		})
	}
}

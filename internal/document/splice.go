// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package document

// SpliceLines replaces the half-open range between start and end
// within the given logical lines with the replacement segments
// and returns the resulting lines. Columns are byte offsets,
// lines carry no terminators and replacement segments must not
// contain any either.
//
// The first replacement segment joins the text preceding start on
// its line, the last segment joins the text following end on its
// line. A single segment therefore edits within a line, two or
// more segments split it. An empty replacement deletes the range
// and joins the surrounding text into one line.
//
// The input slice is never mutated. Out-of-bounds positions and
// inverted ranges are reported as errors, never clamped.
func SpliceLines(lines []string, start, end Pos, replacement []string) ([]string, error) {
	err := validateLinePos(lines, start)
	if err != nil {
		return nil, err
	}
	err = validateLinePos(lines, end)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, &InvalidRangeErr{
			Range:  Range{Start: start, End: end},
			Reason: "start position occurs after end position",
		}
	}

	if len(replacement) == 0 {
		replacement = []string{""}
	}

	prefix := lines[start.Line][:start.Column]
	suffix := lines[end.Line][end.Column:]

	spliced := make([]string, len(replacement))
	copy(spliced, replacement)
	spliced[0] = prefix + spliced[0]
	spliced[len(spliced)-1] = spliced[len(spliced)-1] + suffix

	newLines := make([]string, 0, start.Line+len(spliced)+(len(lines)-end.Line-1))
	newLines = append(newLines, lines[:start.Line]...)
	newLines = append(newLines, spliced...)
	newLines = append(newLines, lines[end.Line+1:]...)

	return newLines, nil
}

func validateLinePos(lines []string, pos Pos) error {
	if pos.Line < 0 || pos.Line >= len(lines) {
		return &InvalidPosErr{Pos: pos}
	}
	if pos.Column < 0 || pos.Column > len(lines[pos.Line]) {
		return &InvalidPosErr{Pos: pos}
	}
	return nil
}

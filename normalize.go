package streamdiff

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// sourceText is one side of the comparison after normalization. The content
// always ends in a newline; hadTrailingNewline records whether the input did.
type sourceText struct {
	content            string
	lines              []string
	hadTrailingNewline bool
}

// normalizeText appends a trailing newline when missing and splits the text
// into lines. The empty string normalizes to a single empty line.
func normalizeText(content string) sourceText {
	had := strings.HasSuffix(content, "\n")
	if !had {
		content += "\n"
	}
	return sourceText{
		content:            content,
		lines:              strings.Split(strings.TrimSuffix(content, "\n"), "\n"),
		hadTrailingNewline: had,
	}
}

// geometry computes the display metadata for the output aggregate: the
// widest line across both texts plus one padding column, and the digit width
// needed for line-number gutters. before may be nil when not diffing.
func geometry(before *sourceText, after *sourceText) (maxColumns, digitWidth int) {
	widest := 0
	for _, l := range after.lines {
		widest = max(widest, runewidth.StringWidth(l))
	}
	maxLines := len(after.lines)
	if before != nil {
		for _, l := range before.lines {
			widest = max(widest, runewidth.StringWidth(l))
		}
		maxLines = max(maxLines, len(before.lines))
	}
	return widest + 1, len(strconv.Itoa(maxLines + 1))
}

// Package ansi renders a streamdiff item sequence for terminals.
package ansi

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mjfried/streamdiff"
)

// Options configures rendering.
type Options struct {
	// LineNumbers draws old/new gutters at the aggregate's digit width.
	LineNumbers bool
	// ExpandGroups renders the lines inside collapsed groups instead of
	// their separators.
	ExpandGroups bool
	// Width right-pads content to this many columns; zero uses the
	// aggregate's MaxColumns.
	Width int
}

// Render draws the whole item sequence, one terminal line per render item
// (or per contained line when expanding groups).
func Render(tc *streamdiff.TokenizedCode, opts Options) string {
	var b strings.Builder
	for _, item := range tc.Items {
		for _, line := range RenderItem(tc, item, opts) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RenderItem draws a single render item and returns its terminal lines: one
// for a line item, one separator or the expanded lines for a collapsed
// group.
func RenderItem(tc *streamdiff.TokenizedCode, item streamdiff.Item, opts Options) []string {
	if item.Collapsed != nil {
		if opts.ExpandGroups {
			lines := make([]string, 0, len(item.Collapsed.Lines))
			for i := range item.Collapsed.Lines {
				lines = append(lines, renderLine(tc, &item.Collapsed.Lines[i], opts))
			}
			return lines
		}
		return []string{renderSeparator(tc, item.Collapsed, opts)}
	}
	return []string{renderLine(tc, item.Line, opts)}
}

func renderSeparator(tc *streamdiff.TokenizedCode, g *streamdiff.Collapsed, opts Options) string {
	sepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(tc.Colors.LineNumber)).
		Background(lipgloss.Color(tc.Colors.Background))
	gutter := ""
	if opts.LineNumbers {
		gutter = strings.Repeat(" ", gutterWidth(tc))
	}
	return sepStyle.Render(gutter + g.Separator)
}

func renderLine(tc *streamdiff.TokenizedCode, line *streamdiff.Line, opts Options) string {
	lineBg, marker := lineBackground(tc, line)

	var b strings.Builder
	if opts.LineNumbers {
		b.WriteString(renderGutter(tc, line, lineBg))
	}

	markerStyle := lipgloss.NewStyle().Background(lipgloss.Color(lineBg))
	b.WriteString(markerStyle.Render(marker + " "))

	width := 0
	if line.SpecialText != "" {
		special := lipgloss.NewStyle().
			Foreground(lipgloss.Color(tc.Colors.LineNumber)).
			Background(lipgloss.Color(lineBg)).
			Italic(true)
		b.WriteString(special.Render(line.SpecialText))
		width = runewidth.StringWidth(line.SpecialText)
	} else {
		for _, span := range line.Spans {
			b.WriteString(renderSpan(tc, line, span, lineBg))
			width += runewidth.StringWidth(span.Content)
		}
	}

	// Right-pad with the line background so row colors form a block.
	target := opts.Width
	if target <= 0 {
		target = tc.MaxColumns
	}
	if width < target {
		b.WriteString(markerStyle.Render(strings.Repeat(" ", target-width)))
	}
	return b.String()
}

func renderSpan(tc *streamdiff.TokenizedCode, line *streamdiff.Line, span streamdiff.Span, lineBg string) string {
	bg := lineBg
	if span.Marked {
		switch line.Kind {
		case streamdiff.KindAdded:
			bg = tc.Colors.AddedTextBg
		case streamdiff.KindRemoved:
			bg = tc.Colors.RemovedTextBg
		}
	}
	fg := span.Color
	if fg == "" {
		fg = tc.Colors.Foreground
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Bold(span.Bold).
		Italic(span.Italic).
		Underline(span.Underline)
	if line.Kind == streamdiff.KindUpcoming {
		style = style.Faint(true)
	}
	return style.Render(span.Content)
}

func renderGutter(tc *streamdiff.TokenizedCode, line *streamdiff.Line, lineBg string) string {
	numStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(tc.Colors.LineNumber)).
		Background(lipgloss.Color(lineBg))
	if !tc.Diffed {
		return numStyle.Render(formatLineNo(line.NewLine, tc.DigitWidth) + " ")
	}
	return numStyle.Render(
		formatLineNo(line.OldLine, tc.DigitWidth) + " " +
			formatLineNo(line.NewLine, tc.DigitWidth) + " ")
}

func gutterWidth(tc *streamdiff.TokenizedCode) int {
	if !tc.Diffed {
		return tc.DigitWidth + 1
	}
	return 2*tc.DigitWidth + 2
}

// formatLineNo right-aligns a line number in a width-char field. Numbers
// that are not meaningful for the line kind render as spaces.
func formatLineNo(n, width int) string {
	if n <= 0 {
		return strings.Repeat(" ", width)
	}
	return fmt.Sprintf("%*d", width, n)
}

func lineBackground(tc *streamdiff.TokenizedCode, line *streamdiff.Line) (bg, marker string) {
	switch line.Kind {
	case streamdiff.KindAdded:
		return tc.Colors.AddedLineBg, "+"
	case streamdiff.KindRemoved:
		return tc.Colors.RemovedLineBg, "-"
	case streamdiff.KindCurrent:
		return tc.Colors.CurrentLineBg, ">"
	case streamdiff.KindUpcoming:
		return tc.Colors.Background, "·"
	default:
		return tc.Colors.Background, " "
	}
}

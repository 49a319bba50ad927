package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mjfried/streamdiff"
	"github.com/mjfried/streamdiff/ansi"
	"github.com/mjfried/streamdiff/syntax"
)

func testCode() *streamdiff.TokenizedCode {
	return &streamdiff.TokenizedCode{
		Items: []streamdiff.Item{
			{Line: &streamdiff.Line{Kind: streamdiff.KindDefault, NewLine: 1, Spans: []streamdiff.Span{{Content: "one"}}}},
			{Collapsed: &streamdiff.Collapsed{
				Count:     2,
				Separator: "--- 2 unchanged ---",
				Lines: []streamdiff.Line{
					{Kind: streamdiff.KindDefault, NewLine: 2, Spans: []streamdiff.Span{{Content: "two"}}},
					{Kind: streamdiff.KindDefault, NewLine: 3, Spans: []streamdiff.Span{{Content: "three"}}},
				},
			}},
			{Line: &streamdiff.Line{Kind: streamdiff.KindDefault, NewLine: 4, Spans: []streamdiff.Span{{Content: "four"}}}},
		},
		Colors:       syntax.ResolvePalette(syntax.Palette{}, "#ffffff", "#000000"),
		DigitWidth:   1,
		MaxColumns:   6,
		CurrentIndex: -1,
	}
}

func sized(t *testing.T, v Viewer) Viewer {
	t.Helper()
	m, _ := v.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m.(Viewer)
}

func key(t *testing.T, v Viewer, k string) Viewer {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	m, _ := v.Update(msg)
	return m.(Viewer)
}

func TestViewerNavigation(t *testing.T) {
	v := sized(t, NewViewer(testCode(), ansi.Options{}))
	if v.cursor != 0 {
		t.Fatalf("initial cursor = %d, want 0", v.cursor)
	}
	v = key(t, v, "j")
	if v.cursor != 1 {
		t.Errorf("cursor after j = %d, want 1", v.cursor)
	}
	v = key(t, v, "k")
	if v.cursor != 0 {
		t.Errorf("cursor after k = %d, want 0", v.cursor)
	}
	v = key(t, v, "k")
	if v.cursor != 0 {
		t.Errorf("cursor should clamp at 0, got %d", v.cursor)
	}
	v = key(t, v, "G")
	if v.cursor != 2 {
		t.Errorf("cursor after G = %d, want 2", v.cursor)
	}
	v = key(t, v, "j")
	if v.cursor != 2 {
		t.Errorf("cursor should clamp at last item, got %d", v.cursor)
	}
	v = key(t, v, "g")
	if v.cursor != 0 {
		t.Errorf("cursor after g = %d, want 0", v.cursor)
	}
}

func TestViewerExpandToggle(t *testing.T) {
	v := sized(t, NewViewer(testCode(), ansi.Options{}))
	v = key(t, v, "j") // onto the collapsed group

	if !strings.Contains(v.View(), "--- 2 unchanged ---") {
		t.Fatal("view should show the separator before expansion")
	}
	v = key(t, v, "enter")
	if !v.expanded[1] {
		t.Error("enter should expand the collapsed group")
	}
	out := v.View()
	if !strings.Contains(out, "two") || !strings.Contains(out, "three") {
		t.Errorf("expanded view missing group lines:\n%s", out)
	}
	v = key(t, v, "enter")
	if v.expanded[1] {
		t.Error("enter again should re-collapse the group")
	}
}

func TestViewerEnterOnPlainLine(t *testing.T) {
	v := sized(t, NewViewer(testCode(), ansi.Options{}))
	v = key(t, v, "enter")
	if len(v.expanded) != 0 && v.expanded[0] {
		t.Error("enter on a plain line should not mark anything expanded")
	}
}

func TestViewerQuit(t *testing.T) {
	v := sized(t, NewViewer(testCode(), ansi.Options{}))
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should produce a command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("q produced %v, want quit", msg)
	}
}

func TestViewerStreamingStartsAtCurrent(t *testing.T) {
	tc := testCode()
	tc.Streaming = true
	tc.CurrentIndex = 2
	v := sized(t, NewViewer(tc, ansi.Options{}))
	if v.cursor != 2 {
		t.Errorf("cursor = %d, want the current index 2", v.cursor)
	}
}

func TestViewerNotReadyBeforeResize(t *testing.T) {
	v := NewViewer(testCode(), ansi.Options{})
	if got := v.View(); got != "loading..." {
		t.Errorf("View before sizing = %q, want loading placeholder", got)
	}
}

// Package ui implements the interactive terminal viewer for tokenized diffs.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mjfried/streamdiff"
	"github.com/mjfried/streamdiff/ansi"
)

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle = lipgloss.NewStyle().Bold(true)
)

// Viewer is a Bubble Tea model that displays a tokenized item sequence with
// vim-style navigation and in-place expansion of collapsed groups.
type Viewer struct {
	tc       *streamdiff.TokenizedCode
	opts     ansi.Options
	viewport viewport.Model
	cursor   int          // index into tc.Items
	expanded map[int]bool // collapsed groups toggled open, by item index
	ready    bool
}

// NewViewer creates a viewer for the given aggregate.
func NewViewer(tc *streamdiff.TokenizedCode, opts ansi.Options) Viewer {
	return Viewer{
		tc:       tc,
		opts:     opts,
		expanded: make(map[int]bool),
	}
}

// Init returns no initial command.
func (v Viewer) Init() tea.Cmd {
	return nil
}

// Update handles key and resize messages.
func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !v.ready {
			v.viewport = viewport.New(msg.Width, msg.Height-1)
			v.ready = true
			if v.tc.Streaming && v.tc.CurrentIndex >= 0 {
				v.cursor = v.tc.CurrentIndex
			}
		} else {
			v.viewport.Width = msg.Width
			v.viewport.Height = msg.Height - 1
		}
		v.refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		case "j", "down":
			if v.cursor < len(v.tc.Items)-1 {
				v.cursor++
			}
		case "k", "up":
			if v.cursor > 0 {
				v.cursor--
			}
		case "g":
			v.cursor = 0
		case "G":
			v.cursor = len(v.tc.Items) - 1
		case "ctrl+d":
			v.cursor = min(v.cursor+v.viewport.Height/2, len(v.tc.Items)-1)
		case "ctrl+u":
			v.cursor = max(v.cursor-v.viewport.Height/2, 0)
		case "enter":
			if v.cursor >= 0 && v.cursor < len(v.tc.Items) && v.tc.Items[v.cursor].Collapsed != nil {
				v.expanded[v.cursor] = !v.expanded[v.cursor]
			}
		}
		v.refresh()
	}
	return v, nil
}

// refresh re-renders the viewport content and keeps the cursor visible.
func (v *Viewer) refresh() {
	if !v.ready {
		return
	}
	var b strings.Builder
	cursorTop := 0
	line := 0
	for i, item := range v.tc.Items {
		opts := v.opts
		opts.ExpandGroups = v.expanded[i]
		rendered := ansi.RenderItem(v.tc, item, opts)
		if i == v.cursor {
			cursorTop = line
		}
		for _, rl := range rendered {
			prefix := "  "
			if i == v.cursor {
				prefix = cursorStyle.Render("› ")
			}
			b.WriteString(prefix + rl + "\n")
			line++
		}
	}
	v.viewport.SetContent(b.String())
	if cursorTop < v.viewport.YOffset {
		v.viewport.SetYOffset(cursorTop)
	}
	if cursorTop >= v.viewport.YOffset+v.viewport.Height {
		v.viewport.SetYOffset(cursorTop - v.viewport.Height + 1)
	}
}

// View renders the viewport plus a one-line key hint.
func (v Viewer) View() string {
	if !v.ready {
		return "loading..."
	}
	return v.viewport.View() + "\n" + footerStyle.Render("j/k scroll · enter expand · q quit")
}

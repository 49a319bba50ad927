package syntax

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Fallback colors for styles that define neither foreground nor background.
const (
	fallbackForeground = "#d0d0d0"
	fallbackBackground = "#1c1c1c"
	fallbackAdded      = "#3fb950"
	fallbackRemoved    = "#f85149"
)

// Palette is the resolved set of theme colors a renderer needs.
type Palette struct {
	Foreground    string
	Background    string
	AddedLineBg   string // background of inserted lines
	RemovedLineBg string // background of removed lines
	AddedTextBg   string // background of marked runs inside inserted lines
	RemovedTextBg string // background of marked runs inside removed lines
	LineNumber    string
	CurrentLineBg string
}

// Palette derives the renderer palette from the highlighter's chroma style.
// Missing style entries fall back to blends of foreground and background.
func (h *Highlighter) Palette() Palette {
	fg := h.foreground()
	if fg == "" {
		fg = fallbackForeground
	}
	bg := h.background()
	if bg == "" {
		bg = fallbackBackground
	}
	added := h.entryOr(chroma.GenericInserted, fallbackAdded)
	removed := h.entryOr(chroma.GenericDeleted, fallbackRemoved)
	return Palette{
		Foreground:    fg,
		Background:    bg,
		AddedLineBg:   Blend(added, bg, 0.82),
		RemovedLineBg: Blend(removed, bg, 0.82),
		AddedTextBg:   Blend(added, bg, 0.58),
		RemovedTextBg: Blend(removed, bg, 0.58),
		LineNumber:    Blend(fg, bg, 0.55),
		CurrentLineBg: Blend(fg, bg, 0.92),
	}
}

func (h *Highlighter) entryOr(tt chroma.TokenType, fallback string) string {
	entry := h.style.Get(tt)
	if entry.Background.IsSet() {
		return entry.Background.String()
	}
	if entry.Colour.IsSet() {
		return entry.Colour.String()
	}
	return fallback
}

// ResolvePalette fills the empty fields of a palette from the given default
// foreground and background, deriving the remaining colors by blending. It
// serves tokenizers that report only defaults.
func ResolvePalette(p Palette, fg, bg string) Palette {
	if p.Foreground == "" {
		p.Foreground = fg
	}
	if p.Foreground == "" {
		p.Foreground = fallbackForeground
	}
	if p.Background == "" {
		p.Background = bg
	}
	if p.Background == "" {
		p.Background = fallbackBackground
	}
	if p.AddedLineBg == "" {
		p.AddedLineBg = Blend(fallbackAdded, p.Background, 0.82)
	}
	if p.RemovedLineBg == "" {
		p.RemovedLineBg = Blend(fallbackRemoved, p.Background, 0.82)
	}
	if p.AddedTextBg == "" {
		p.AddedTextBg = Blend(fallbackAdded, p.Background, 0.58)
	}
	if p.RemovedTextBg == "" {
		p.RemovedTextBg = Blend(fallbackRemoved, p.Background, 0.58)
	}
	if p.LineNumber == "" {
		p.LineNumber = Blend(p.Foreground, p.Background, 0.55)
	}
	if p.CurrentLineBg == "" {
		p.CurrentLineBg = Blend(p.Foreground, p.Background, 0.92)
	}
	return p
}

// Blend mixes color a toward color b in RGB space. t is the share of b, in
// [0, 1]. Unparseable colors return a unchanged.
func Blend(a, b string, t float64) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		return a
	}
	return ca.BlendRgb(cb, t).Hex()
}

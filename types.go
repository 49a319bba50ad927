package streamdiff

import "github.com/mjfried/streamdiff/syntax"

// Kind classifies a line in the unified output sequence.
type Kind int

const (
	// KindDefault is an unchanged line, present in both texts.
	KindDefault Kind = iota
	// KindAdded is a line only present in the after text.
	KindAdded
	// KindRemoved is a line only present in the before text.
	KindRemoved
	// KindCurrent is the last produced line while streaming.
	KindCurrent
	// KindUpcoming is a preview line sourced from the before text that the
	// streamed after text has not reached yet.
	KindUpcoming
)

func (k Kind) String() string {
	switch k {
	case KindAdded:
		return "added"
	case KindRemoved:
		return "removed"
	case KindCurrent:
		return "current"
	case KindUpcoming:
		return "upcoming"
	default:
		return "default"
	}
}

// Span is a run of characters sharing one color, style, and mark state.
type Span struct {
	Content   string
	Color     string // hex foreground, empty for the theme default
	Bold      bool
	Italic    bool
	Underline bool
	Marked    bool // the run differs from its counterpart line
}

// Line is a single line of the output sequence.
type Line struct {
	Kind    Kind
	OldLine int // 1-based line number in the before text, 0 when not meaningful
	NewLine int // 1-based line number in the after text, 0 when not meaningful
	Spans   []Span
	// SpecialText is a literal annotation rendered instead of Spans. It is
	// set only on the synthetic end-of-file newline record.
	SpecialText string
}

// Text returns the plain content of the line.
func (l *Line) Text() string {
	if l.SpecialText != "" {
		return l.SpecialText
	}
	var b []byte
	for _, s := range l.Spans {
		b = append(b, s.Content...)
	}
	return string(b)
}

// Collapsed stands in for a trimmed run of unchanged lines.
type Collapsed struct {
	Count     int    // number of lines the group replaces
	Separator string // text shown in place of the lines
	Lines     []Line // the replaced lines, kept for on-demand expansion
}

// Item is one entry of the render sequence: exactly one of Line or Collapsed
// is non-nil.
type Item struct {
	Line      *Line
	Collapsed *Collapsed
}

// TokenizedCode is the output aggregate consumed by renderers.
type TokenizedCode struct {
	Items      []Item
	Colors     syntax.Palette
	DigitWidth int // width of the line-number column in digits
	MaxColumns int // widest line across both texts plus one padding column
	Diffed     bool
	Streaming  bool
	// CurrentIndex is the index into Items of the current line, -1 when no
	// current line exists.
	CurrentIndex int
}

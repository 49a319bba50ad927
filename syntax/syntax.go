// Package syntax tokenizes source text with chroma and resolves theme colors
// for renderers.
package syntax

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultTheme is the chroma style used when no theme is requested.
const DefaultTheme = "monokai"

// Token is a run of characters sharing one color and style.
type Token struct {
	Content   string
	Color     string // hex foreground, empty for the theme default
	Bold      bool
	Italic    bool
	Underline bool
}

// Result holds the tokenization of a full text, split per line.
type Result struct {
	Lines      [][]Token
	Foreground string // tokenizer default foreground, may be empty
	Background string // tokenizer default background, may be empty
}

// Highlighter tokenizes text against a fixed chroma style.
//
// A Highlighter holds no mutable state after construction; one instance may
// be shared across concurrent Tokenize calls.
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter creates a highlighter for the named chroma style. An empty
// or unknown name falls back to DefaultTheme.
func NewHighlighter(theme string) *Highlighter {
	if theme == "" {
		theme = DefaultTheme
	}
	style := styles.Get(theme)
	if style == nil {
		style = styles.Get(DefaultTheme)
	}
	return &Highlighter{style: style}
}

// NewHighlighterStyle creates a highlighter for a full chroma style object.
func NewHighlighterStyle(style *chroma.Style) *Highlighter {
	if style == nil {
		return NewHighlighter("")
	}
	return &Highlighter{style: style}
}

// Tokenize splits text into per-line token arrays for the given language id.
// Unknown languages tokenize as plain text.
func (h *Highlighter) Tokenize(text, language string) (*Result, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		return nil, fmt.Errorf("tokenising text: %w", err)
	}

	res := &Result{
		Lines:      [][]Token{nil},
		Foreground: h.foreground(),
		Background: h.background(),
	}
	for tok := it(); tok != chroma.EOF; tok = it() {
		entry := h.style.Get(tok.Type)
		pieces := strings.Split(tok.Value, "\n")
		for i, piece := range pieces {
			if i > 0 {
				res.Lines = append(res.Lines, nil)
			}
			if piece == "" {
				continue
			}
			last := len(res.Lines) - 1
			res.Lines[last] = append(res.Lines[last], Token{
				Content:   piece,
				Color:     entryColor(entry),
				Bold:      entry.Bold == chroma.Yes,
				Italic:    entry.Italic == chroma.Yes,
				Underline: entry.Underline == chroma.Yes,
			})
		}
	}
	return res, nil
}

func (h *Highlighter) foreground() string {
	if c := h.style.Get(chroma.Text).Colour; c.IsSet() {
		return c.String()
	}
	return ""
}

func (h *Highlighter) background() string {
	if c := h.style.Get(chroma.Background).Background; c.IsSet() {
		return c.String()
	}
	return ""
}

func entryColor(entry chroma.StyleEntry) string {
	if entry.Colour.IsSet() {
		return entry.Colour.String()
	}
	return ""
}

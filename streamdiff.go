// Package streamdiff turns two versions of a text plus chroma syntax
// tokenization into a renderer-agnostic sequence of render items: lines and
// collapsed groups annotated with diff status, intra-line change marks, and
// display metadata. Terminal and other renderers draw from that sequence
// without re-deriving any diff or collapse logic.
//
// Every call recomputes the full alignment from the two texts supplied at
// that call; no state survives between calls. Calls are independent and may
// run concurrently as long as each uses its own Tokenizer, or a shared one
// whose Tokenize operation is safe for concurrent reads — the pipeline does
// not serialize calls into it.
package streamdiff

import (
	"fmt"

	"github.com/mjfried/streamdiff/syntax"
)

// Padding sentinels for Options.Padding.
const (
	// DefaultPadding is the number of unchanged context lines kept visible
	// at each collapsed-run boundary when Options.Padding is zero.
	DefaultPadding = 3
	// NoPadding collapses runs with no context lines kept.
	NoPadding = -1
)

// Tokenizer supplies per-line syntax tokens and the theme palette. The
// default implementation is syntax.Highlighter.
type Tokenizer interface {
	Tokenize(text, language string) (*syntax.Result, error)
	Palette() syntax.Palette
}

// Options configures one Tokenize call.
type Options struct {
	// Language is an explicit language id. When empty, the language is
	// detected from Path; unresolvable inputs tokenize as plain text.
	Language string
	// Path is a file path hint for language detection.
	Path string
	// Theme names the chroma style used by the default tokenizer.
	Theme string
	// DiffWith is the previous version of the code. nil disables diffing.
	DiffWith *string
	// Streaming treats the code as a partial, still-growing text: the last
	// produced line becomes the current line and leftover DiffWith content
	// is previewed as upcoming lines.
	Streaming bool
	// Collapse replaces long unchanged runs with collapsed groups. Ignored
	// while streaming, which always shows the live tail.
	Collapse bool
	// Padding is the number of unchanged context lines kept visible at each
	// collapsed-run boundary. Zero means DefaultPadding; use NoPadding to
	// keep none.
	Padding int
	// Separator produces the text shown in place of a collapsed run. A nil
	// Separator yields "--- N unchanged ---". Panics propagate to the
	// caller.
	Separator func(count int) string
	// Tokenizer overrides the default chroma-backed highlighter.
	Tokenizer Tokenizer
}

// Tokenize runs the full pipeline: normalize, align, build line records,
// overlay streaming state, collapse unchanged runs, assign syntax tokens,
// and project the result into render items.
func Tokenize(code string, opts Options) (*TokenizedCode, error) {
	after := normalizeText(code)
	var before *sourceText
	if opts.DiffWith != nil {
		b := normalizeText(*opts.DiffWith)
		before = &b
	}
	diffed := before != nil

	tokenizer := opts.Tokenizer
	if tokenizer == nil {
		tokenizer = syntax.NewHighlighter(opts.Theme)
	}
	language := syntax.ResolveLanguage(opts.Language, opts.Path)

	b := newBuilder()
	preview := ""
	if diffed {
		al := alignHunks(before.content, after.content, opts.Streaming)
		b.build(al.hunks)
		preview = al.preview
	} else {
		b.buildPlain(len(after.lines))
	}
	if diffed && !opts.Streaming && before.hadTrailingNewline != after.hadTrailingNewline {
		b.appendNewlineRecord(before, &after)
	}
	if opts.Streaming {
		b.applyStreaming(preview, diffed)
	}

	records := b.records
	if opts.Collapse && diffed && !opts.Streaming {
		records = applyCollapse(records, resolvePadding(opts.Padding))
	}

	afterRes, err := tokenizer.Tokenize(after.content, language)
	if err != nil {
		return nil, fmt.Errorf("tokenizing code: %w", err)
	}
	var beforeRes *syntax.Result
	if diffed {
		beforeRes, err = tokenizer.Tokenize(before.content, language)
		if err != nil {
			return nil, fmt.Errorf("tokenizing previous code: %w", err)
		}
	}
	assignTokens(records, beforeRes, afterRes)

	separator := opts.Separator
	if separator == nil {
		separator = defaultSeparator
	}
	items, current := projectRecords(records, separator)

	maxColumns, digitWidth := geometry(before, &after)
	return &TokenizedCode{
		Items:        items,
		Colors:       syntax.ResolvePalette(tokenizer.Palette(), afterRes.Foreground, afterRes.Background),
		DigitWidth:   digitWidth,
		MaxColumns:   maxColumns,
		Diffed:       diffed,
		Streaming:    opts.Streaming,
		CurrentIndex: current,
	}, nil
}

func defaultSeparator(count int) string {
	return fmt.Sprintf("--- %d unchanged ---", count)
}

func resolvePadding(padding int) int {
	if padding == 0 {
		return DefaultPadding
	}
	if padding < 0 {
		return 0
	}
	return padding
}

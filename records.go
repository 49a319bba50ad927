package streamdiff

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/mjfried/streamdiff/syntax"
)

// record is the mutable line entity used during construction. Records are
// created fresh per invocation and projected into the public model at the
// end; nothing survives across calls.
type record struct {
	kind    Kind
	oldLine int // 1-based index into the before lines, 0 when not meaningful
	newLine int // 1-based index into the after lines, 0 when not meaningful
	marks   map[int]bool // rune column -> differs from the counterpart line
	tokens  []syntax.Token
	special string
	group   []*record // replaced records when this is a collapsed group
}

// builder expands aligned hunks into the unified record sequence. The
// unified numbering is implicit in record order; oldLine and newLine track
// the next unconsumed 1-based line of each source text.
type builder struct {
	records []*record
	oldLine int
	newLine int
}

func newBuilder() *builder {
	return &builder{oldLine: 1, newLine: 1}
}

// buildPlain emits one default record per after-line. Used when no diff was
// requested; only new line numbers are meaningful.
func (b *builder) buildPlain(lineCount int) {
	for i := 0; i < lineCount; i++ {
		b.records = append(b.records, &record{kind: KindDefault, newLine: b.newLine})
		b.newLine++
	}
}

// build walks the aligned hunk list left to right. A removed hunk
// immediately followed by an added hunk forms a modified block; everything
// else expands line by line.
func (b *builder) build(hunks []hunk) {
	for i := 0; i < len(hunks); i++ {
		h := hunks[i]
		switch h.op {
		case opEqual:
			for j := 0; j < h.lines; j++ {
				b.records = append(b.records, &record{kind: KindDefault, oldLine: b.oldLine, newLine: b.newLine})
				b.oldLine++
				b.newLine++
			}
		case opRemove:
			if i+1 < len(hunks) && hunks[i+1].op == opAdd {
				b.buildModified(h, hunks[i+1])
				i++
				continue
			}
			for j := 0; j < h.lines; j++ {
				b.records = append(b.records, &record{kind: KindRemoved, oldLine: b.oldLine})
				b.oldLine++
			}
		case opAdd:
			for j := 0; j < h.lines; j++ {
				b.records = append(b.records, &record{kind: KindAdded, newLine: b.newLine})
				b.newLine++
			}
		}
	}
}

// buildModified emits the removed records then the added records of a
// modified block and paints per-character marks from a word-level diff of
// the two hunk texts.
func (b *builder) buildModified(removed, added hunk) {
	removedRecs := make([]*record, 0, removed.lines)
	for j := 0; j < removed.lines; j++ {
		r := &record{kind: KindRemoved, oldLine: b.oldLine, marks: make(map[int]bool)}
		b.oldLine++
		b.records = append(b.records, r)
		removedRecs = append(removedRecs, r)
	}
	addedRecs := make([]*record, 0, added.lines)
	for j := 0; j < added.lines; j++ {
		r := &record{kind: KindAdded, newLine: b.newLine, marks: make(map[int]bool)}
		b.newLine++
		b.records = append(b.records, r)
		addedRecs = append(addedRecs, r)
	}
	markModified(removedRecs, addedRecs,
		strings.TrimSuffix(removed.text, "\n"),
		strings.TrimSuffix(added.text, "\n"))
}

// appendNewlineRecord adds the synthetic record annotating a trailing
// newline change at end of file. Its line number points one past the real
// lines, so token assignment yields an empty array and the special text is
// rendered instead.
func (b *builder) appendNewlineRecord(before, after *sourceText) {
	if after.hadTrailingNewline {
		b.records = append(b.records, &record{
			kind:    KindAdded,
			newLine: len(after.lines) + 1,
			special: "(added newline at end of file)",
		})
		return
	}
	b.records = append(b.records, &record{
		kind:    KindRemoved,
		oldLine: len(before.lines) + 1,
		special: "(removed newline at end of file)",
	})
}

// wordDiff returns the ordered equal/add/remove tokens between two strings.
func wordDiff(from, to string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	return dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, false))
}

// markModified walks the word-diff token stream with independent (line,
// column) cursors for the from side and the to side. Tokens spanning an
// embedded newline are split at it: marks are painted up to the newline,
// then the relevant line cursor advances and its column resets. Equal
// tokens advance both cursors without marking.
func markModified(removed, added []*record, from, to string) {
	var fromLine, fromCol, toLine, toCol int
	for _, d := range wordDiff(from, to) {
		pieces := strings.Split(d.Text, "\n")
		for i, piece := range pieces {
			if i > 0 {
				switch d.Type {
				case diffmatchpatch.DiffEqual:
					fromLine, fromCol = fromLine+1, 0
					toLine, toCol = toLine+1, 0
				case diffmatchpatch.DiffDelete:
					fromLine, fromCol = fromLine+1, 0
				case diffmatchpatch.DiffInsert:
					toLine, toCol = toLine+1, 0
				}
			}
			n := utf8.RuneCountInString(piece)
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				fromCol += n
				toCol += n
			case diffmatchpatch.DiffDelete:
				if fromLine < len(removed) {
					markRange(removed[fromLine], fromCol, n)
				}
				fromCol += n
			case diffmatchpatch.DiffInsert:
				if toLine < len(added) {
					markRange(added[toLine], toCol, n)
				}
				toCol += n
			}
		}
	}
}

func markRange(r *record, col, n int) {
	for c := col; c < col+n; c++ {
		r.marks[c] = true
	}
}

package streamdiff

import "github.com/mjfried/streamdiff/syntax"

// projectRecords converts internal records into the public item sequence,
// run-length-encoding marks into spans. It returns the items and the index
// of the current item, -1 when none exists.
func projectRecords(records []*record, separator func(count int) string) ([]Item, int) {
	items := make([]Item, 0, len(records))
	current := -1
	for _, r := range records {
		if r.group != nil {
			g := &Collapsed{
				Count:     len(r.group),
				Separator: separator(len(r.group)),
				Lines:     make([]Line, 0, len(r.group)),
			}
			for _, member := range r.group {
				g.Lines = append(g.Lines, *projectLine(member))
			}
			items = append(items, Item{Collapsed: g})
			continue
		}
		if r.kind == KindCurrent {
			current = len(items)
		}
		items = append(items, Item{Line: projectLine(r)})
	}
	return items, current
}

// projectLine slices a record's tokens at mark-state transitions, producing
// one span per contiguous run of equal mark state within each token. Columns
// count runes, matching how marks were painted. Zero-length spans are
// dropped.
func projectLine(r *record) *Line {
	l := &Line{
		Kind:        r.kind,
		OldLine:     r.oldLine,
		NewLine:     r.newLine,
		SpecialText: r.special,
	}
	col := 0
	for _, tok := range r.tokens {
		runes := []rune(tok.Content)
		start := 0
		marked := false
		for i := range runes {
			m := r.marks[col+i]
			if i == 0 {
				marked = m
				continue
			}
			if m != marked {
				l.Spans = append(l.Spans, makeSpan(tok, string(runes[start:i]), marked))
				start, marked = i, m
			}
		}
		if len(runes) > 0 {
			l.Spans = append(l.Spans, makeSpan(tok, string(runes[start:]), marked))
		}
		col += len(runes)
	}
	return l
}

func makeSpan(tok syntax.Token, content string, marked bool) Span {
	return Span{
		Content:   content,
		Color:     tok.Color,
		Bold:      tok.Bold,
		Italic:    tok.Italic,
		Underline: tok.Underline,
		Marked:    marked,
	}
}

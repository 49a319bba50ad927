package streamdiff

import "strings"

// applyStreaming overlays streaming state onto the built sequence: the last
// produced record becomes the current line, and each line of the preview
// text becomes an upcoming record consuming one old-line increment. When the
// builder produced nothing (the whole diff was reclassified into the preview
// at the start of generation) a current record is synthesized for the first
// after line, so a current line always exists. Upcoming records never carry
// marks; their content is rendered from the before text by line number, so
// the preview is only counted, not stored. Old line numbers are tracked only
// while diffing.
func (b *builder) applyStreaming(preview string, diffed bool) {
	if len(b.records) == 0 {
		b.records = append(b.records, &record{kind: KindCurrent, newLine: b.newLine})
		b.newLine++
	}
	last := b.records[len(b.records)-1]
	last.kind = KindCurrent
	last.marks = nil
	if diffed && last.oldLine == 0 {
		last.oldLine = b.oldLine
		b.oldLine++
	}
	if preview == "" {
		return
	}
	for range strings.Split(strings.TrimSuffix(preview, "\n"), "\n") {
		b.records = append(b.records, &record{kind: KindUpcoming, oldLine: b.oldLine})
		b.oldLine++
	}
}

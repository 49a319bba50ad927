package streamdiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// streamLookahead is how many before-lines past the end of the streamed
// after text are included in the line diff. Comparing only a small window
// keeps the diff bounded and avoids spuriously matching unrelated later
// content in a much longer before text.
const streamLookahead = 3

type hunkOp int

const (
	opEqual hunkOp = iota
	opAdd
	opRemove
)

// hunk is a maximal run of equal, added, or removed lines as reported by the
// line diff. text holds whole newline-terminated lines.
type hunk struct {
	op    hunkOp
	text  string
	lines int
}

// alignment is the hunk aligner's output: the ordered hunk list plus, in
// streaming mode, the untouched remainder of the before text.
type alignment struct {
	hunks   []hunk
	preview string
}

// alignHunks diffs before against after at line granularity. In streaming
// mode only the first afterLineCount+streamLookahead lines of before take
// part; the rest is set aside as preview text, and trailing hunks that look
// like not-yet-generated content are reclassified into the preview.
func alignHunks(before, after string, streaming bool) alignment {
	src := before
	preview := ""
	if streaming {
		n := strings.Count(after, "\n") + streamLookahead
		src, preview = splitAfterLines(before, n)
	}
	hunks := lineDiff(src, after)
	if streaming {
		hunks, preview = reclassifyTail(hunks, preview)
	}
	return alignment{hunks: hunks, preview: preview}
}

// lineDiff runs diffmatchpatch in line mode over two newline-terminated
// texts and folds the result into hunks.
func lineDiff(before, after string) []hunk {
	dmp := diffmatchpatch.New()
	beforeRunes, afterRunes, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(beforeRunes, afterRunes, false), lineArray)

	hunks := make([]hunk, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		hunks = append(hunks, hunk{
			op:    opFor(d.Type),
			text:  d.Text,
			lines: strings.Count(d.Text, "\n"),
		})
	}
	return hunks
}

func opFor(t diffmatchpatch.Operation) hunkOp {
	switch t {
	case diffmatchpatch.DiffInsert:
		return opAdd
	case diffmatchpatch.DiffDelete:
		return opRemove
	default:
		return opEqual
	}
}

// reclassifyTail applies the streaming tie-break: a trailing removed hunk
// (alone, or paired with an added hunk that it starts with) almost always
// means the generator has not reached that part of the before text yet, not
// that it was deleted. Such hunks move into the preview.
func reclassifyTail(hunks []hunk, preview string) ([]hunk, string) {
	n := len(hunks)
	if n >= 2 && hunks[n-1].op == opAdd && hunks[n-2].op == opRemove {
		added := strings.TrimSuffix(hunks[n-1].text, "\n")
		removed := hunks[n-2].text
		if strings.HasPrefix(removed, added) {
			// The matching prefix duplicates what was already rendered.
			return hunks[:n-2], removed[len(added):] + preview
		}
		return hunks, preview
	}
	if n >= 1 && hunks[n-1].op == opRemove {
		return hunks[:n-1], hunks[n-1].text + preview
	}
	return hunks, preview
}

// splitAfterLines splits s after the first n newline-terminated lines.
func splitAfterLines(s string, n int) (head, tail string) {
	idx := 0
	for i := 0; i < n; i++ {
		j := strings.IndexByte(s[idx:], '\n')
		if j < 0 {
			return s, ""
		}
		idx += j + 1
	}
	return s[:idx], s[idx:]
}

package streamdiff

import "github.com/mjfried/streamdiff/syntax"

// assignTokens attaches the per-line token array to every record, including
// the members of collapsed groups. Removed and upcoming records read from
// the before tokenization, everything else from the after tokenization.
// Out-of-range indices (the synthetic end-of-file record) yield no tokens.
func assignTokens(records []*record, beforeRes, afterRes *syntax.Result) {
	for _, r := range records {
		if r.group != nil {
			assignTokens(r.group, beforeRes, afterRes)
			continue
		}
		r.tokens = tokensFor(r, beforeRes, afterRes)
	}
}

func tokensFor(r *record, beforeRes, afterRes *syntax.Result) []syntax.Token {
	res := afterRes
	idx := r.newLine - 1
	switch r.kind {
	case KindRemoved, KindUpcoming:
		res = beforeRes
		idx = r.oldLine - 1
	}
	if res == nil || idx < 0 || idx >= len(res.Lines) {
		return nil
	}
	return res.Lines[idx]
}

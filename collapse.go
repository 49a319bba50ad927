package streamdiff

// applyCollapse replaces maximal runs of unchanged records with a single
// collapsed group record, keeping padding context lines visible at any run
// boundary that borders a change. Runs touching the very start of the file
// or the very end of the sequence collapse flush to that edge. Runs too
// short to survive the trim stay fully visible.
func applyCollapse(records []*record, padding int) []*record {
	out := make([]*record, 0, len(records))
	i := 0
	for i < len(records) {
		if records[i].kind != KindDefault {
			out = append(out, records[i])
			i++
			continue
		}
		j := i
		for j < len(records) && records[j].kind == KindDefault {
			j++
		}
		start, end := i, j
		if i != 0 {
			start += padding
		}
		if j != len(records) {
			end -= padding
		}
		if end <= start {
			out = append(out, records[i:j]...)
		} else {
			out = append(out, records[i:start]...)
			out = append(out, &record{group: records[start:end]})
			out = append(out, records[end:j]...)
		}
		i = j
	}
	return out
}

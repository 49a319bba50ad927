package streamdiff

import "testing"

// changedAround returns records for a sequence where the first and last
// lines changed and count default lines sit between them.
func changedAround(count int) []*record {
	records := []*record{
		{kind: KindRemoved, oldLine: 1},
		{kind: KindAdded, newLine: 1},
	}
	for i := 0; i < count; i++ {
		records = append(records, &record{kind: KindDefault, oldLine: i + 2, newLine: i + 2})
	}
	records = append(records,
		&record{kind: KindRemoved, oldLine: count + 2},
		&record{kind: KindAdded, newLine: count + 2},
	)
	return records
}

func TestCollapseInteriorRunNoPadding(t *testing.T) {
	out := applyCollapse(changedAround(5), 0)
	if len(out) != 5 {
		t.Fatalf("got %d records, want 5", len(out))
	}
	g := out[2]
	if g.group == nil {
		t.Fatal("middle record should be a collapsed group")
	}
	if len(g.group) != 5 {
		t.Errorf("group holds %d records, want 5", len(g.group))
	}
	for _, r := range g.group {
		if r.kind != KindDefault {
			t.Errorf("collapsed record kind = %v, want default", r.kind)
		}
	}
}

func TestCollapseKeepsPaddingContext(t *testing.T) {
	out := applyCollapse(changedAround(8), 3)
	// 3 context lines survive on each side of the group.
	if len(out) != 11 {
		t.Fatalf("got %d records, want 11", len(out))
	}
	g := out[5]
	if g.group == nil || len(g.group) != 2 {
		t.Fatalf("middle record should be a group of 2, got %+v", g)
	}
	if out[4].kind != KindDefault || out[6].kind != KindDefault {
		t.Error("context lines around the group should stay visible")
	}
}

func TestCollapseSkipsShortRun(t *testing.T) {
	out := applyCollapse(changedAround(5), 3)
	// Trimming 3 from both sides leaves nothing: the run stays visible.
	if len(out) != 9 {
		t.Fatalf("got %d records, want 9 (no collapsing)", len(out))
	}
	for _, r := range out {
		if r.group != nil {
			t.Error("short run should not have been collapsed")
		}
	}
}

func TestCollapseRunTouchingFileStart(t *testing.T) {
	records := []*record{
		{kind: KindDefault, oldLine: 1, newLine: 1},
		{kind: KindDefault, oldLine: 2, newLine: 2},
		{kind: KindDefault, oldLine: 3, newLine: 3},
		{kind: KindRemoved, oldLine: 4},
		{kind: KindAdded, newLine: 4},
	}
	out := applyCollapse(records, 2)
	// The leading edge is not trimmed; only the boundary toward the change
	// keeps padding. 3 - 2 = 1 line collapses.
	if len(out) != 5 {
		t.Fatalf("got %d records, want 5", len(out))
	}
	if out[0].group == nil || len(out[0].group) != 1 {
		t.Fatalf("first record should be a group of 1, got %+v", out[0])
	}
	if out[1].kind != KindDefault || out[2].kind != KindDefault {
		t.Error("padding context after the group should stay visible")
	}
}

func TestCollapseRunTouchingSequenceEnd(t *testing.T) {
	records := []*record{
		{kind: KindRemoved, oldLine: 1},
		{kind: KindAdded, newLine: 1},
		{kind: KindDefault, oldLine: 2, newLine: 2},
		{kind: KindDefault, oldLine: 3, newLine: 3},
		{kind: KindDefault, oldLine: 4, newLine: 4},
	}
	out := applyCollapse(records, 2)
	if len(out) != 5 {
		t.Fatalf("got %d records, want 5", len(out))
	}
	last := out[4]
	if last.group == nil || len(last.group) != 1 {
		t.Fatalf("last record should be a group of 1, got %+v", last)
	}
}

func TestCollapseAllDefaultSequence(t *testing.T) {
	// No changes at all: the single run touches both edges and collapses
	// whole, regardless of padding.
	records := []*record{
		{kind: KindDefault, oldLine: 1, newLine: 1},
		{kind: KindDefault, oldLine: 2, newLine: 2},
		{kind: KindDefault, oldLine: 3, newLine: 3},
	}
	out := applyCollapse(records, 3)
	if len(out) != 1 || out[0].group == nil || len(out[0].group) != 3 {
		t.Fatalf("got %+v, want one group of 3", out)
	}
}

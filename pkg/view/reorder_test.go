package view

import (
	"fmt"
	"reflect"
	"sort"
	"testing"

	"tableflip.dev/album/pkg/media"
)

func TestReorderDragLastOntoFirst(t *testing.T) {
	visible := []media.Item{
		{ID: "p0", SectionName: "Trip", Position: 0},
		{ID: "p1", SectionName: "Trip", Position: 1},
		{ID: "p2", SectionName: "Trip", Position: 2},
	}
	got := Reorder(visible, "p2", "p0")
	want := map[string]int{"p2": 0, "p0": 1, "p1": 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Reorder = %v, want %v", got, want)
	}
	order := ids(Project(Apply(visible, got), media.AllSection, ""))
	if !reflect.DeepEqual(order, []string{"p2", "p0", "p1"}) {
		t.Fatalf("unexpected order after apply: %v", order)
	}
}

func TestReorderDragForward(t *testing.T) {
	visible := []media.Item{{ID: "a"}, {ID: "b", Position: 1}, {ID: "c", Position: 2}, {ID: "d", Position: 3}}
	got := Reorder(visible, "a", "c")
	want := map[string]int{"b": 0, "c": 1, "a": 2, "d": 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Reorder = %v, want %v", got, want)
	}
}

func TestReorderNoOps(t *testing.T) {
	visible := []media.Item{{ID: "a"}, {ID: "b", Position: 1}}
	tests := map[string]struct{ drag, target string }{
		"empty drag":     {drag: "", target: "a"},
		"unknown drag":   {drag: "zz", target: "a"},
		"same item":      {drag: "a", target: "a"},
		"hidden target":  {drag: "a", target: "zz"},
		"empty target":   {drag: "a", target: ""},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Reorder(visible, tc.drag, tc.target); got != nil {
				t.Fatalf("expected no-op, got %v", got)
			}
		})
	}
}

func TestReorderDoesNotMutateVisible(t *testing.T) {
	visible := []media.Item{{ID: "a"}, {ID: "b", Position: 1}, {ID: "c", Position: 2}}
	before := append([]media.Item(nil), visible...)
	_ = Reorder(visible, "c", "a")
	if !reflect.DeepEqual(visible, before) {
		t.Fatalf("Reorder mutated visible list")
	}
}

func TestReorderUnfilteredIsPermutation(t *testing.T) {
	const n = 6
	items := make([]media.Item, n)
	for i := range items {
		items[i] = media.Item{ID: fmt.Sprintf("i%d", i), SectionName: "S", Position: i * 10}
	}
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			if from == to {
				continue
			}
			visible := Project(items, media.AllSection, "")
			next := Apply(items, Reorder(visible, visible[from].ID, visible[to].ID))

			positions := make([]int, 0, n)
			seen := map[string]bool{}
			for _, it := range next {
				positions = append(positions, it.Position)
				seen[it.ID] = true
			}
			sort.Ints(positions)
			for i, p := range positions {
				if p != i {
					t.Fatalf("drag %d->%d: positions not contiguous: %v", from, to, positions)
				}
			}
			if len(seen) != n {
				t.Fatalf("drag %d->%d: lost items", from, to)
			}
			if got := IndexOf(Project(next, media.AllSection, ""), visible[from].ID); got != to {
				t.Fatalf("drag %d->%d: dragged item landed at %d", from, to, got)
			}
		}
	}
}

// Renumbering only the visible subset can produce positions that collide
// with items outside the view. This pins that behavior.
func TestReorderFilteredViewCanCollideWithHiddenItems(t *testing.T) {
	items := []media.Item{
		{ID: "fam0", SectionName: "Family", Position: 0},
		{ID: "fam1", SectionName: "Family", Position: 1},
		{ID: "trip2", SectionName: "Trip", Position: 2},
		{ID: "trip3", SectionName: "Trip", Position: 3},
	}
	visible := Project(items, "Trip", "")
	next := Apply(items, Reorder(visible, "trip3", "trip2"))

	byID := map[string]int{}
	for _, it := range next {
		byID[it.ID] = it.Position
	}
	if byID["trip3"] != 0 || byID["trip2"] != 1 {
		t.Fatalf("visible items not renumbered: %v", byID)
	}
	if byID["fam0"] != 0 || byID["fam1"] != 1 {
		t.Fatalf("hidden items should keep their positions: %v", byID)
	}
	if byID["trip3"] != byID["fam0"] {
		t.Fatalf("expected a position collision between trip3 and fam0: %v", byID)
	}
}

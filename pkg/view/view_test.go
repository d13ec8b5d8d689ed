package view

import (
	"reflect"
	"testing"

	"tableflip.dev/album/pkg/media"
)

func sampleItems() []media.Item {
	return []media.Item{
		{ID: "beach", Title: "Sunset at the beach", SectionName: "Travel", Position: 2},
		{ID: "bday", Title: "Mom's birthday", SectionName: "Family", Position: 0},
		{ID: "clip", Title: "Memory on video", SectionName: "Videos", Position: 1},
		{ID: "hike", Title: "Mountain hike", SectionName: "Travel", Position: 3},
	}
}

func ids(items []media.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestProject(t *testing.T) {
	tests := map[string]struct {
		section string
		query   string
		want    []string
	}{
		"all sorted by position": {section: media.AllSection, want: []string{"bday", "clip", "beach", "hike"}},
		"section filter":         {section: "Travel", want: []string{"beach", "hike"}},
		"query on title":         {section: media.AllSection, query: "BIRTH", want: []string{"bday"}},
		"query on section name":  {section: media.AllSection, query: "vid", want: []string{"clip"}},
		"section and query":      {section: "Travel", query: "hike", want: []string{"hike"}},
		"whitespace query":       {section: "Family", query: "   ", want: []string{"bday"}},
		"no match":               {section: "Family", query: "beach", want: []string{}},
		"unknown section":        {section: "Pets", want: []string{}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := ids(Project(sampleItems(), tc.section, tc.query))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Project(%q, %q) = %v, want %v", tc.section, tc.query, got, tc.want)
			}
		})
	}
}

func TestProjectIsPure(t *testing.T) {
	items := sampleItems()
	before := sampleItems()

	first := Project(items, media.AllSection, "")
	second := Project(items, media.AllSection, "")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Project is not idempotent: %v vs %v", ids(first), ids(second))
	}
	if !reflect.DeepEqual(items, before) {
		t.Fatalf("Project mutated its input: %v", ids(items))
	}

	first[0].Title = "changed"
	if items[1].Title == "changed" {
		t.Fatalf("result shares storage with input")
	}
}

func TestProjectStableForEqualPositions(t *testing.T) {
	items := []media.Item{
		{ID: "a", SectionName: "X", Position: 1},
		{ID: "b", SectionName: "X", Position: 0},
		{ID: "c", SectionName: "X", Position: 1},
		{ID: "d", SectionName: "X", Position: 1},
	}
	got := ids(Project(items, media.AllSection, ""))
	want := []string{"b", "a", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected input order kept for ties, got %v", got)
	}
}

func TestIndexOf(t *testing.T) {
	items := sampleItems()
	if got := IndexOf(items, "clip"); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := IndexOf(items, "nope"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}

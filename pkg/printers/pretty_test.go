package printers

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/media"
)

func init() {
	color.NoColor = true
}

func TestItemsTable(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{ShowID: true, Out: &buf}
	pp.Items(
		media.Item{ID: "a1", Kind: media.KindPhoto, Title: "Sunset", SectionName: "Travel"},
		media.Item{ID: "v1", Kind: media.KindVideo, SectionName: "Videos"},
	)
	out := buf.String()
	for _, want := range []string{"a1", "Sunset", "Travel", "▶", "Video"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestItemsTruncatesLongTitles(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Items(media.Item{ID: "a", Kind: media.KindPhoto, Title: strings.Repeat("x", 200)})
	if strings.Contains(buf.String(), strings.Repeat("x", TitleWidth+1)) {
		t.Fatalf("title was not truncated:\n%s", buf.String())
	}
}

func TestItemsEmpty(t *testing.T) {
	var buf bytes.Buffer
	(&PrettyPrint{Out: &buf}).Items()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestSectionsWithCounts(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Sections(
		[]media.Section{{Name: "All"}, {Name: "Family"}},
		map[string]int{"All": 3, "Family": 1},
	)
	out := buf.String()
	if !strings.Contains(out, "Family") || !strings.Contains(out, "3") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestItemShowsEmbed(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Item(media.Item{ID: "v", Kind: media.KindVideo, VideoID: "abc", SourceURL: "https://youtu.be/abc"})
	if !strings.Contains(buf.String(), "youtube-nocookie.com/embed/abc") {
		t.Fatalf("embed url missing:\n%s", buf.String())
	}
}

func TestTitleWithCount(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.TitleWithCount("Travel", 1)
	pp.TitleWithCount("All", 2)
	out := buf.String()
	if !strings.Contains(out, "Travel - 1 item\n") || !strings.Contains(out, "All - 2 items\n") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPersistedDowngradesSaveFailures(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	err := pp.Persisted(&app.PersistenceError{Op: "save", Err: errors.New("disk full")})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if !strings.Contains(buf.String(), "warning: album save failed: disk full") {
		t.Fatalf("unexpected warning %q", buf.String())
	}

	other := errors.New("boom")
	if got := pp.Persisted(other); got != other {
		t.Fatalf("non persistence errors must pass through, got %v", got)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, map[string]int{"a": 1}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "{\n  \"a\": 1\n}\n" {
		t.Fatalf("got %q", buf.String())
	}
}

package move

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/store"
)

func TestMoveLastToFirst(t *testing.T) {
	ctx := context.Background()
	svc := app.New(store.NewMemory())
	if err := svc.Load(ctx); err != nil {
		t.Fatal(err)
	}
	items := svc.Visible(media.AllSection, "")
	first, last := items[0], items[2]

	var out bytes.Buffer
	m := &Move{DragID: last.ID, TargetID: first.ID, Service: svc, Out: &out}
	if err := m.Do(ctx); err != nil {
		t.Fatal(err)
	}

	got := svc.Visible(media.AllSection, "")
	if got[0].ID != last.ID || got[1].ID != first.ID {
		t.Fatalf("unexpected order %v", got)
	}
	if strings.Index(out.String(), last.Title) > strings.Index(out.String(), first.Title) {
		t.Fatalf("printed list is not in the new order:\n%s", out.String())
	}
}

func TestMoveNotVisible(t *testing.T) {
	ctx := context.Background()
	svc := app.New(store.NewMemory())
	if err := svc.Load(ctx); err != nil {
		t.Fatal(err)
	}
	items := svc.Visible(media.AllSection, "")

	var out bytes.Buffer
	m := &Move{DragID: items[0].ID, TargetID: items[1].ID, Section: "Travel", Service: svc, Out: &out}
	if err := m.Do(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "nothing moved") {
		t.Fatalf("expected a nothing moved note, got\n%s", out.String())
	}
}

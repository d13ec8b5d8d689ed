package show

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/store"
)

func TestShowVideoEmbed(t *testing.T) {
	ctx := context.Background()
	svc := app.New(store.NewMemory())
	if err := svc.Load(ctx); err != nil {
		t.Fatal(err)
	}
	vids := svc.Visible("Videos", "")

	var out bytes.Buffer
	if err := (&Show{ID: vids[0].ID, Service: svc, Out: &out}).Do(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "youtube-nocookie.com/embed/jfKfPfyJRdk") {
		t.Fatalf("expected the embed URL in\n%s", out.String())
	}
}

func TestShowUnknown(t *testing.T) {
	svc := app.New(store.NewMemory())
	_ = svc.Load(context.Background())
	err := (&Show{ID: "nope", Service: svc, Out: &bytes.Buffer{}}).Do(context.Background())
	if !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

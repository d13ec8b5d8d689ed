package add

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/store"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	svc := app.New(store.NewMemory())
	if err := svc.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestAddVideoJSON(t *testing.T) {
	svc := newService(t)
	var out bytes.Buffer
	a := &Add{
		Kind:    media.KindVideo,
		URL:     "https://www.youtube.com/shorts/abcDEF12345",
		Section: "Events",
		JSON:    true,
		Service: svc,
		Out:     &out,
	}
	if err := a.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	var it media.Item
	if err := json.Unmarshal(out.Bytes(), &it); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	if it.VideoID != "abcDEF12345" || it.SectionName != "Events" || it.Title != "YouTube video" {
		t.Fatalf("unexpected item %+v", it)
	}
}

func TestAddPrintsSection(t *testing.T) {
	svc := newService(t)
	var out bytes.Buffer
	a := &Add{Kind: media.KindPhoto, URL: "https://example.com/kid.jpg", Title: "First steps", Section: "Family", Service: svc, Out: &out}
	if err := a.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Mom's birthday") || !strings.Contains(out.String(), "First steps") {
		t.Fatalf("expected the Family list, got\n%s", out.String())
	}
}

func TestAddValidation(t *testing.T) {
	svc := newService(t)
	err := (&Add{Kind: media.KindPhoto, URL: "  ", Service: svc, Out: &bytes.Buffer{}}).Do(context.Background())
	if !app.IsValidation(err) {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

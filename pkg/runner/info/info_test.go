package info

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/store"
	"tableflip.dev/album/pkg/upload"
)

func TestInfoReportsStoreAndSections(t *testing.T) {
	t.Setenv("ALBUM_CONFIG_PATH", "")
	dir := t.TempDir()
	p, err := store.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	svc := app.New(p)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	i := &Info{
		Config:      store.StaticConfig{Path: dir, Interval: 90 * time.Second},
		Persistence: p,
		Service:     svc,
		Out:         &out,
	}
	if err := i.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"ALBUM_CONFIG_PATH env var not set",
		"Config file: none",
		"Slideshow interval: 1m30s",
		"Cloudinary: not configured",
		"Travel",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in\n%s", want, out.String())
		}
	}
}

func TestInfoShowsStoredCloudinary(t *testing.T) {
	dir := t.TempDir()
	p, err := store.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := upload.SaveCredentials(p, upload.Credentials{CloudName: "demo", Preset: "album"}); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	i := &Info{Config: store.StaticConfig{Path: dir}, Persistence: p, Out: &out}
	if err := i.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `Cloudinary: cloud "demo", preset "album"`) {
		t.Fatalf("unexpected output\n%s", out.String())
	}
}

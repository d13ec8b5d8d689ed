package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	if _, err := m.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	value := []byte("hello")
	if err := m.Set("k", value); err != nil {
		t.Fatalf("set: %v", err)
	}
	value[0] = 'j'
	got, err := m.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("stored value aliased caller slice: %q", got)
	}
	m.FailSet = errors.New("quota exceeded")
	if err := m.Set("k", []byte("x")); err == nil {
		t.Fatalf("expected FailSet error")
	}
}

func TestDiskvRoundTrip(t *testing.T) {
	base := t.TempDir()
	p, err := Load(StaticConfig{Path: base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := p.Get(DocumentKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := p.Set(DocumentKey, []byte(`{"sections":[],"items":[]}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, DocumentKey)); err != nil {
		t.Fatalf("expected flat file for key: %v", err)
	}
	if got := p.PathFor(DocumentKey); got != filepath.Join(base, DocumentKey) {
		t.Fatalf("unexpected PathFor: %s", got)
	}

	// A second handle sees writes made by the first.
	q, err := Open(base)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := p.Set(DocumentKey, []byte("v2")); err != nil {
		t.Fatalf("set v2: %v", err)
	}
	got, err := q.Get(DocumentKey)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "v2" {
		t.Fatalf("expected v2, got %q", got)
	}

	keys := p.Keys()
	if len(keys) != 1 || keys[0] != DocumentKey {
		t.Fatalf("unexpected keys %v", keys)
	}
	if err := p.Erase(DocumentKey); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if err := p.Erase(DocumentKey); err != nil {
		t.Fatalf("erase missing: %v", err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatalf("expected error for blank path")
	}
}

func TestKeyForPath(t *testing.T) {
	p := &Diskv{basePath: "/data/album"}
	tests := map[string]string{
		"/data/album/album-data-v2":  "album-data-v2",
		"/data/album/.tmp":           "",
		"/data/album/.tmp/x123":      "",
		"/elsewhere/album-data-v2":   "",
		"/data/album":                "",
	}
	for in, want := range tests {
		if got := p.keyForPath(in); got != want {
			t.Fatalf("keyForPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWatchEmitsDocumentChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Open(base)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(base, DocumentKey), []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Key == DocumentKey {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for document change event")
		}
	}
}

func TestStaticConfigDefaults(t *testing.T) {
	cfg := StaticConfig{Path: "/tmp/x"}
	if cfg.SlideshowInterval() != 4*time.Second {
		t.Fatalf("expected default interval, got %v", cfg.SlideshowInterval())
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ALBUM_CONFIG_PATH", dir)
	t.Setenv("ALBUM_PATH", filepath.Join(dir, "db"))
	t.Setenv("ALBUM_SLIDESHOW_INTERVAL", "2s")
	t.Setenv("ALBUM_CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("ALBUM_CLOUDINARY_PRESET", "unsigned")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "db") {
		t.Fatalf("unexpected path %q", cfg.BasePath())
	}
	if cfg.SlideshowInterval() != 2*time.Second {
		t.Fatalf("unexpected interval %v", cfg.SlideshowInterval())
	}
	if c := cfg.Cloudinary(); c.CloudName != "demo" || c.Preset != "unsigned" {
		t.Fatalf("unexpected cloudinary settings %+v", c)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ALBUM_CONFIG_PATH", dir)
	yaml := "path: " + filepath.Join(dir, "from-file") + "\nslideshow:\n  interval: 9s\n"
	if err := os.WriteFile(filepath.Join(dir, ".album.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "from-file") {
		t.Fatalf("unexpected path %q", cfg.BasePath())
	}
	if cfg.SlideshowInterval() != 9*time.Second {
		t.Fatalf("unexpected interval %v", cfg.SlideshowInterval())
	}
	if ConfigFile(cfg) == "" {
		t.Fatalf("expected config file to be reported")
	}
}

package ui

import (
	"context"
	"time"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/slideshow"
	"tableflip.dev/album/pkg/store"
	"tableflip.dev/album/pkg/tui"
)

// UI opens the interactive album browser.
type UI struct {
	Service *app.Service
	// Watcher, when set, reloads the album when another process changes it.
	Watcher  store.Watcher
	Interval time.Duration
}

func (d *UI) Do(ctx context.Context) error {
	return tui.Run(ctx, d.Service, slideshow.New(d.Interval), d.Watcher)
}

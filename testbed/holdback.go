package main

import (
	"context"
	"time"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/store"
)

// holdback removes the last items from the album and writes them back one at
// a time from a second writer, the way another process would.
type holdback struct {
	writer *app.Service
	held   []media.Item
	events chan store.Event
}

func newHoldback(ctx context.Context, svc *app.Service, mem *store.Memory, n int) (*holdback, error) {
	doc := svc.Document()
	items := svc.Visible(media.AllSection, "")
	if n > len(items) {
		n = len(items)
	}
	held := append([]media.Item(nil), items[len(items)-n:]...)
	if err := svc.ReplaceAll(ctx, doc.Sections, items[:len(items)-n]); err != nil {
		return nil, err
	}

	writer := app.New(mem)
	if err := writer.Load(ctx); err != nil {
		return nil, err
	}
	return &holdback{writer: writer, held: held, events: make(chan store.Event, 1)}, nil
}

func (h *holdback) Watch(_ context.Context) (<-chan store.Event, error) {
	return h.events, nil
}

func (h *holdback) replay(ctx context.Context, every time.Duration) {
	defer close(h.events)
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for _, it := range h.held {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if err := h.writer.Reload(ctx); err != nil && !app.IsPersistence(err) {
			return
		}
		section := it.SectionName
		if section == media.AllSection {
			section = ""
		}
		if _, err := h.writer.AddItem(ctx, it.Kind, it.Title, it.SourceURL, section); err != nil {
			return
		}
		select {
		case h.events <- store.Event{Key: store.DocumentKey}:
		case <-ctx.Done():
			return
		}
	}
}

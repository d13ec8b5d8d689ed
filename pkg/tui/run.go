package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/slideshow"
	"tableflip.dev/album/pkg/store"
)

// Run starts the browser and blocks until the user quits. When watcher is not
// nil, changes written by other processes are picked up while it runs.
func Run(ctx context.Context, svc *app.Service, show *slideshow.Controller, watcher store.Watcher) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(ctx, svc, show)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	m.show.OnAdvance = func(int) {
		p.Send(advanceMsg{})
	}

	if watcher != nil {
		events, err := watcher.Watch(ctx)
		if err != nil {
			return err
		}
		go func() {
			for ev := range events {
				if ev.Key == store.DocumentKey {
					p.Send(reloadMsg{})
				}
			}
		}()
	}

	_, err := p.Run()
	return err
}

// Package remove deletes a single item from the album.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/printers"
	"tableflip.dev/album/pkg/snake"
)

type Remove struct {
	ID       string
	Yes      bool
	Service  *app.Service
	Prompter *snake.Prompter
	Out      io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no album")
	}
	pp := printers.PrettyPrint{Out: n.Out}

	it, err := n.Service.Item(n.ID)
	if errors.Is(err, app.ErrNotFound) {
		pp.Line("no item with id %s", n.ID)
		return nil
	}

	if !n.Yes {
		p := n.Prompter
		if p == nil {
			p = &snake.Prompter{}
		}
		ok, err := p.Confirm(fmt.Sprintf("Delete %q", it.DisplayTitle()))
		if errors.Is(err, snake.ErrNotInteractive) {
			return errors.New("refusing to delete without confirmation, pass --yes")
		}
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	removed, err := n.Service.DeleteItem(ctx, n.ID)
	if err = pp.Persisted(err); err != nil {
		return err
	}
	if removed {
		pp.Line("deleted %s", it)
	}
	return nil
}

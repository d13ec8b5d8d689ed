package show

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/printers"
)

// Show prints one item in full, including the embed URL for videos.
type Show struct {
	ID      string
	JSON    bool
	Service *app.Service
	Out     io.Writer
}

func (n *Show) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no album")
	}
	it, err := n.Service.Item(n.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", n.ID, err)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return printers.JSON(pp.Writer(), it)
	}
	pp.Item(it)
	return nil
}

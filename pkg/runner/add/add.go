package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/printers"
)

// Add appends a photo or video to the album.
type Add struct {
	Kind    media.Kind
	URL     string
	Title   string
	Section string
	JSON    bool

	Service *app.Service
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no album")
	}

	pp := printers.PrettyPrint{Out: n.Out}
	it, err := n.Service.AddItem(ctx, n.Kind, n.Title, n.URL, n.Section)
	if err = pp.Persisted(err); err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(pp.Writer(), it)
	}

	pp.Title(it.SectionName)
	pp.Items(n.Service.Visible(it.SectionName, "")...)
	return nil
}

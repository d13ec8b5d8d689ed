package move

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/printers"
)

// Move drops one item onto another within the list shown for Section and
// Query, then prints that list.
type Move struct {
	DragID   string
	TargetID string
	Section  string
	Query    string
	ShowID   bool

	Service *app.Service
	Out     io.Writer
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no album")
	}
	section := n.Section
	if section == "" {
		section = media.AllSection
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	moved, err := n.Service.Move(ctx, section, n.Query, n.DragID, n.TargetID)
	if err = pp.Persisted(err); err != nil {
		return err
	}
	if !moved {
		pp.Line("nothing moved: both items must be visible in %s and differ", section)
	}

	pp.Title(section)
	pp.Items(n.Service.Visible(section, n.Query)...)
	return nil
}

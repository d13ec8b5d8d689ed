package get

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/printers"
)

// Get lists the items visible for a section and search query, in display
// order.
type Get struct {
	ShowID  bool
	JSON    bool
	Section string
	Query   string
	// Since, when positive, keeps only items added within that span.
	Since time.Duration
	Now   func() time.Time

	Service *app.Service
	Out     io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no album")
	}
	section := n.Section
	if section == "" {
		section = media.AllSection
	}
	if _, ok := n.Service.Document().Section(section); !ok {
		return &app.ValidationError{Field: "section", Reason: "no section named " + section}
	}

	items := n.Service.Visible(section, n.Query)
	if n.Since > 0 {
		items = n.recent(items)
	}
	if n.JSON {
		pp := printers.PrettyPrint{Out: n.Out}
		return printers.JSON(pp.Writer(), items)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	pp.TitleWithCount(section, len(items))
	pp.Items(items...)
	return nil
}

func (n *Get) recent(items []media.Item) []media.Item {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	cutoff := now().Add(-n.Since)
	out := items[:0]
	for _, it := range items {
		if !it.CreatedAt.IsZero() && !it.CreatedAt.Before(cutoff) {
			out = append(out, it)
		}
	}
	return out
}

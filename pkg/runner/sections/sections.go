// Package sections provides the CLI runners that list, add and delete album
// sections.
package sections

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/printers"
	"tableflip.dev/album/pkg/snake"
)

var errNoAlbum = errors.New("no album")

// List prints every section with its item count.
type List struct {
	JSON    bool
	Service *app.Service
	Out     io.Writer
}

type sectionCount struct {
	media.Section
	Count int `json:"count"`
}

func (n *List) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoAlbum
	}
	sections := n.Service.Sections()
	counts := n.Service.Counts()
	pp := printers.PrettyPrint{Out: n.Out}

	if n.JSON {
		out := make([]sectionCount, 0, len(sections))
		for _, s := range sections {
			out = append(out, sectionCount{Section: s, Count: counts[s.Name]})
		}
		return printers.JSON(pp.Writer(), out)
	}
	pp.Sections(sections, counts)
	return nil
}

// Add creates a section.
type Add struct {
	Name    string
	JSON    bool
	Service *app.Service
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoAlbum
	}
	pp := printers.PrettyPrint{Out: n.Out}
	sec, err := n.Service.AddSection(ctx, n.Name)
	if err = pp.Persisted(err); err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(pp.Writer(), sec)
	}
	pp.Line("added section %q", sec.Name)
	return nil
}

// Delete removes a section, moving its items to All. Unless Yes is set the
// user confirms first.
type Delete struct {
	Name     string
	Yes      bool
	Service  *app.Service
	Prompter *snake.Prompter
	Out      io.Writer
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoAlbum
	}
	pp := printers.PrettyPrint{Out: n.Out}

	if n.Name == media.AllSection {
		pp.Line("the All section can not be deleted")
		return nil
	}
	if _, ok := n.Service.Document().Section(n.Name); !ok {
		pp.Line("no section named %q", n.Name)
		return nil
	}

	if !n.Yes {
		count := n.Service.Counts()[n.Name]
		ok, err := n.prompter().Confirm(fmt.Sprintf("Delete section %q (%d items move to All)", n.Name, count))
		if errors.Is(err, snake.ErrNotInteractive) {
			return errors.New("refusing to delete without confirmation, pass --yes")
		}
		if err != nil {
			return err
		}
		if !ok {
			pp.Line("kept section %q", n.Name)
			return nil
		}
	}

	removed, err := n.Service.DeleteSection(ctx, n.Name)
	if err = pp.Persisted(err); err != nil {
		return err
	}
	if removed {
		pp.Line("deleted section %q", n.Name)
	}
	return nil
}

func (n *Delete) prompter() *snake.Prompter {
	if n.Prompter == nil {
		return &snake.Prompter{}
	}
	return n.Prompter
}

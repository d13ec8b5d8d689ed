// Package key prints the legend for item symbols and the URLs each kind takes.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/printers"
)

var accepts = map[media.Kind]string{
	media.KindPhoto: "any image URL",
	media.KindVideo: "youtube.com/watch?v=, youtu.be/, /shorts/, /embed/",
}

// Key prints the kind legend.
type Key struct {
	Out io.Writer
}

// Do renders the legend.
func (k *Key) Do(_ context.Context) error {
	pp := printers.PrettyPrint{Out: k.Out}
	w := pp.Writer()
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Symbol"), bold.Sprint("Kind"), bold.Sprint("Default title"), bold.Sprint("Accepts"))
	for _, kind := range media.AllKinds() {
		tbl.AddRow(printers.Symbol(kind), string(kind), kind.DefaultTitle(), accepts[kind])
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w, "")
	return nil
}

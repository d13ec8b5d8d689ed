// Package transfer moves the whole album in and out as a JSON document.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/printers"
)

var errNoAlbum = errors.New("no album")

// Export writes the album document to Path, or to Out when Path is empty or
// "-".
type Export struct {
	Path    string
	Service *app.Service
	Out     io.Writer
}

func (n *Export) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoAlbum
	}
	data, err := n.Service.Export()
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if n.Path == "" || n.Path == "-" {
		pp := printers.PrettyPrint{Out: n.Out}
		_, err := pp.Writer().Write(data)
		return err
	}
	if err := os.WriteFile(n.Path, data, 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// Import replaces the album with the document at Path, or read from In when
// Path is "-".
type Import struct {
	Path    string
	Service *app.Service
	In      io.Reader
	Out     io.Writer
}

func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoAlbum
	}

	var (
		data []byte
		err  error
	)
	if n.Path == "-" {
		in := n.In
		if in == nil {
			in = os.Stdin
		}
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(n.Path)
	}
	if err != nil {
		return &app.ImportError{Err: err}
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if err := pp.Persisted(n.Service.Import(ctx, data)); err != nil {
		return err
	}
	pp.Line("imported %d sections and %d items", len(n.Service.Sections()), len(n.Service.Items()))
	return nil
}

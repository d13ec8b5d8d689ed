package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/printers"
	"tableflip.dev/album/pkg/store"
	"tableflip.dev/album/pkg/timeutil"
	"tableflip.dev/album/pkg/upload"
)

// Info reports where the album lives and what it holds.
type Info struct {
	Config      store.Config
	Persistence *store.Diskv
	Service     *app.Service
	Out         io.Writer
}

func (n *Info) Do(_ context.Context) error {
	pp := printers.PrettyPrint{Out: n.Out}
	w := pp.Writer()

	if override := os.Getenv("ALBUM_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(w, "ALBUM_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(w, "ALBUM_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(w, "Config file:", orNone(store.ConfigFile(n.Config)))
	_, _ = fmt.Fprintln(w, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(w, "Slideshow interval:", timeutil.FormatSpan(n.Config.SlideshowInterval()))

	if n.Persistence == nil {
		return fmt.Errorf("failed to open the album store")
	}
	_, _ = fmt.Fprintln(w, "Album document:", n.Persistence.PathFor(store.DocumentKey))

	creds, err := upload.LoadCredentials(n.Persistence)
	if err != nil {
		return err
	}
	creds = creds.Override(upload.FromSettings(n.Config.Cloudinary()))
	if creds.Complete() {
		_, _ = fmt.Fprintf(w, "Cloudinary: cloud %q, preset %q\n", creds.CloudName, creds.Preset)
	} else {
		_, _ = fmt.Fprintln(w, "Cloudinary: not configured")
	}

	if n.Service != nil {
		pp.NewLine()
		pp.Sections(n.Service.Sections(), n.Service.Counts())
	}
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

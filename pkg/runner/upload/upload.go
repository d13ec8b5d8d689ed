// Package upload provides the runners behind `album upload`.
package upload

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/printers"
	"tableflip.dev/album/pkg/snake"
	"tableflip.dev/album/pkg/store"
	"tableflip.dev/album/pkg/upload"
)

// Uploader sends one file and returns its hosted URL.
type Uploader interface {
	UploadFile(ctx context.Context, path string) (string, error)
}

// Upload sends a local file to Cloudinary and, unless NoAdd is set, adds the
// hosted URL to the album as a photo.
type Upload struct {
	Path    string
	Title   string
	Section string
	NoAdd   bool
	JSON    bool

	Service  *app.Service
	Backend  store.Backend
	Settings store.CloudinarySettings
	Prompter *snake.Prompter
	Out      io.Writer

	// NewUploader builds the client once credentials are known. Nil uses
	// upload.NewClient.
	NewUploader func(creds upload.Credentials, baseURL string) Uploader
}

type result struct {
	URL  string      `json:"url"`
	Item *media.Item `json:"item,omitempty"`
}

func (n *Upload) Do(ctx context.Context) error {
	if n.Backend == nil {
		return errors.New("can not upload, no store")
	}
	add := !n.NoAdd && n.Service != nil
	if add {
		if err := n.Service.CheckSection(ctx, n.Section); err != nil {
			return err
		}
	}
	creds, err := Resolve(n.Backend, n.Settings, n.Prompter)
	if err != nil {
		return err
	}

	newUploader := n.NewUploader
	if newUploader == nil {
		newUploader = func(c upload.Credentials, base string) Uploader {
			return upload.NewClient(c, base)
		}
	}
	url, err := newUploader(creds, n.Settings.BaseURL).UploadFile(ctx, n.Path)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	res := result{URL: url}
	if add {
		title := n.Title
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(n.Path), filepath.Ext(n.Path))
		}
		it, err := n.Service.AddItem(ctx, media.KindPhoto, title, url, n.Section)
		if err = pp.Persisted(err); err != nil {
			return err
		}
		res.Item = &it
	}

	if n.JSON {
		return printers.JSON(pp.Writer(), res)
	}
	pp.Line("uploaded %s", url)
	if res.Item != nil {
		pp.Items(*res.Item)
	}
	return nil
}

// Resolve returns the credentials to upload with: stored values overridden
// by config. When either value is still missing the user is prompted and
// the answers are stored.
func Resolve(b store.Backend, settings store.CloudinarySettings, p *snake.Prompter) (upload.Credentials, error) {
	stored, err := upload.LoadCredentials(b)
	if err != nil {
		return upload.Credentials{}, err
	}
	creds := stored.Override(upload.FromSettings(settings))
	if creds.Complete() {
		return creds, nil
	}

	if p == nil {
		p = &snake.Prompter{}
	}
	if !p.IsInteractive() {
		return upload.Credentials{}, upload.ErrMissingCredentials
	}
	if strings.TrimSpace(creds.CloudName) == "" {
		if creds.CloudName, err = p.String("Cloudinary cloud name", ""); err != nil {
			return upload.Credentials{}, err
		}
	}
	if strings.TrimSpace(creds.Preset) == "" {
		if creds.Preset, err = p.String("Unsigned upload preset", ""); err != nil {
			return upload.Credentials{}, err
		}
	}
	if err := upload.SaveCredentials(b, creds); err != nil {
		return upload.Credentials{}, err
	}
	return creds, nil
}

// Config stores Cloudinary credentials. Missing flags are prompted for,
// offering the stored value.
type Config struct {
	CloudName string
	Preset    string

	Backend  store.Backend
	Prompter *snake.Prompter
	Out      io.Writer
}

func (n *Config) Do(_ context.Context) error {
	if n.Backend == nil {
		return errors.New("can not configure upload, no store")
	}
	stored, err := upload.LoadCredentials(n.Backend)
	if err != nil {
		return err
	}
	creds := stored.Override(upload.Credentials{CloudName: n.CloudName, Preset: n.Preset})

	p := n.Prompter
	if p == nil {
		p = &snake.Prompter{}
	}
	if n.CloudName == "" && p.IsInteractive() {
		if creds.CloudName, err = p.String("Cloudinary cloud name", creds.CloudName); err != nil {
			return err
		}
	}
	if n.Preset == "" && p.IsInteractive() {
		if creds.Preset, err = p.String("Unsigned upload preset", creds.Preset); err != nil {
			return err
		}
	}
	if !creds.Complete() {
		return upload.ErrMissingCredentials
	}
	if err := upload.SaveCredentials(n.Backend, creds); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Line("saved Cloudinary settings for cloud %q", creds.CloudName)
	return nil
}

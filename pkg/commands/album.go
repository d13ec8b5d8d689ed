package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/printers"
	"tableflip.dev/album/pkg/store"
)

// album is what every command that touches the album opens.
type album struct {
	Config  store.Config
	Store   *store.Diskv
	Service *app.Service
	Logger  *slog.Logger
}

func openAlbum(cmd *cobra.Command) (*album, error) {
	logger, err := logOpts.Logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("opened album store", "path", p.BasePath())

	svc := app.New(p, app.WithLogger(logger))
	pp := printers.PrettyPrint{Out: cmd.ErrOrStderr()}
	if err := pp.Persisted(svc.Load(ctx(cmd))); err != nil {
		return nil, err
	}
	return &album{Config: cfg, Store: p, Service: svc, Logger: logger}, nil
}

func ctx(cmd *cobra.Command) context.Context {
	if c := cmd.Context(); c != nil {
		return c
	}
	return context.Background()
}

// Command testbed runs the album browser over a throwaway in-memory album.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/slideshow"
	"tableflip.dev/album/pkg/store"
	"tableflip.dev/album/pkg/timeutil"
	"tableflip.dev/album/pkg/tui"
)

type options struct {
	real     bool
	hold     int
	every    string
	interval string
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Run the album browser against sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.real, "real", false, "start from a copy of the real album instead of the sample")
	rootCmd.PersistentFlags().IntVar(&opts.hold, "hold", 0, "number of items to hold back and add while the browser runs")
	rootCmd.PersistentFlags().StringVar(&opts.every, "every", "3s", "how often a held item is added")
	rootCmd.PersistentFlags().StringVar(&opts.interval, "interval", "4s", "slideshow interval")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	every, err := timeutil.ParseSpan(opts.every)
	if err != nil {
		return fmt.Errorf("--every: %w", err)
	}
	interval, err := timeutil.ParseSpan(opts.interval)
	if err != nil {
		return fmt.Errorf("--interval: %w", err)
	}

	mem := store.NewMemory()
	if opts.real {
		if err := copyReal(mem); err != nil {
			return err
		}
	}

	svc := app.New(mem)
	if err := svc.Load(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var watcher store.Watcher
	if opts.hold > 0 {
		hb, err := newHoldback(ctx, svc, mem, opts.hold)
		if err != nil {
			return err
		}
		go hb.replay(ctx, every)
		watcher = hb
	}

	return tui.Run(ctx, svc, slideshow.New(interval), watcher)
}

func copyReal(mem *store.Memory) error {
	p, err := store.Load(nil)
	if err != nil {
		return err
	}
	data, err := p.Get(store.DocumentKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	return mem.Set(store.DocumentKey, data)
}


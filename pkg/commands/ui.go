package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/album/pkg/runner/ui"
	"tableflip.dev/album/pkg/timeutil"
)

func addUI(topLevel *cobra.Command) {
	var (
		noWatch  bool
		interval string
	)

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive album browser",
		Example: `
album ui
album ui --interval 10s
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openAlbum(cmd)
			if err != nil {
				return err
			}
			i := ui.UI{
				Service:  a.Service,
				Interval: a.Config.SlideshowInterval(),
			}
			if interval != "" {
				if i.Interval, err = timeutil.ParseSpan(interval); err != nil {
					return fmt.Errorf("--interval: %w", err)
				}
			}
			if !noWatch {
				i.Watcher = a.Store
			}
			return i.Do(ctx(cmd))
		},
	}

	cmd.Flags().StringVar(&interval, "interval", "", "How long each slide shows, e.g. 6s. Overrides slideshow.interval.")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload when another process changes the album.")
	topLevel.AddCommand(cmd)
}

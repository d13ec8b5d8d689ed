package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/album/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the album and where it is stored.",
		Example: `
album info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openAlbum(cmd)
			if err != nil {
				return err
			}
			s := info.Info{
				Config:      a.Config,
				Persistence: a.Store,
				Service:     a.Service,
				Out:         cmd.OutOrStdout(),
			}
			return s.Do(ctx(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/album/pkg/commands/options"
	"tableflip.dev/album/pkg/runner/get"
	"tableflip.dev/album/pkg/timeutil"
)

func addGet(topLevel *cobra.Command) {
	so := &options.SectionOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}
	var since string

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "List the items shown for a section and search",
		Example: `
album get
album get --section Travel
album get --query birthday --show-id
album get --since 2w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openAlbum(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s := get.Get{
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Section: so.Section,
				Query:   so.Query,
				Service: a.Service,
				Out:     cmd.OutOrStdout(),
			}
			if since != "" {
				if s.Since, err = timeutil.ParseSpan(since); err != nil {
					return oo.HandleError(fmt.Errorf("--since: %w", err))
				}
			}
			return oo.HandleError(s.Do(ctx(cmd)))
		},
	}

	options.AddSectionArgs(cmd, so)
	registerSectionCompletion(cmd)
	options.AddQueryArgs(cmd, so)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().StringVar(&since, "since", "", `Only items added within this span, e.g. "3d" or "2w".`)

	topLevel.AddCommand(cmd)
}

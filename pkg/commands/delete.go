package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/album/pkg/commands/options"
	"tableflip.dev/album/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "delete <item id>",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete an item",
		Example: `
album delete 5f0c... --yes
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return itemCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openAlbum(cmd)
			if err != nil {
				return err
			}
			s := remove.Remove{
				ID:      args[0],
				Yes:     co.Yes,
				Service: a.Service,
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(ctx(cmd))
		},
	}

	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

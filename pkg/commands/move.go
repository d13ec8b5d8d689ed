package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/album/pkg/commands/options"
	"tableflip.dev/album/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	so := &options.SectionOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "move <drag id> <target id>",
		Short: "Drop one item onto another, as in drag and drop",
		Long: `Move the first item into the slot of the second within the list shown
for --section and --query. The shown list is then renumbered, so the order
of items it does not show may change.`,
		Example: `
album move <id of last photo> <id of first photo>
album move <id> <id> --section Travel
`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return itemCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openAlbum(cmd)
			if err != nil {
				return err
			}
			s := move.Move{
				DragID:   args[0],
				TargetID: args[1],
				Section:  so.Section,
				Query:    so.Query,
				ShowID:   io.ShowID,
				Service:  a.Service,
				Out:      cmd.OutOrStdout(),
			}
			return s.Do(ctx(cmd))
		},
	}

	options.AddSectionArgs(cmd, so)
	registerSectionCompletion(cmd)
	options.AddQueryArgs(cmd, so)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

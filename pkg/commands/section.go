package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/album/pkg/commands/options"
	"tableflip.dev/album/pkg/runner/sections"
)

func addSection(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "section",
		Aliases: []string{"sections"},
		Short:   "List, add and delete sections",
		Example: `
album section list
album section add Pets
album section delete Pets --yes
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newSectionListCmd(), newSectionAddCmd(), newSectionDeleteCmd())
	topLevel.AddCommand(cmd)
}

func newSectionListCmd() *cobra.Command {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List sections with item counts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openAlbum(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s := sections.List{
				JSON:    oo.JSON,
				Service: a.Service,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(ctx(cmd)))
		},
	}
	options.AddOutputArg(cmd, oo)
	return cmd
}

func newSectionAddCmd() *cobra.Command {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a section",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openAlbum(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s := sections.Add{
				Name:    joinArgs(args),
				JSON:    oo.JSON,
				Service: a.Service,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(ctx(cmd)))
		},
	}
	options.AddOutputArg(cmd, oo)
	return cmd
}

func newSectionDeleteCmd() *cobra.Command {
	co := &options.ConfirmOptions{}
	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a section, moving its items to All",
		Args:    cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return sectionCompletions(cmd, toComplete, false), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openAlbum(cmd)
			if err != nil {
				return err
			}
			s := sections.Delete{
				Name:    joinArgs(args),
				Yes:     co.Yes,
				Service: a.Service,
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(ctx(cmd))
		},
	}
	options.AddConfirmArgs(cmd, co)
	return cmd
}

// joinArgs joins the positional arguments into a single space-separated name.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/album/pkg/commands/options"
	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a photo or a YouTube video",
		Example: `
album add photo https://example.com/beach.jpg --title "Beach day" --section Travel
album add video https://youtu.be/jfKfPfyJRdk
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	for _, k := range media.AllKinds() {
		addAddKind(cmd, k)
	}

	topLevel.AddCommand(cmd)
}

func addAddKind(topLevel *cobra.Command, kind media.Kind) {
	so := &options.SectionOptions{}
	io := &options.ItemOptions{}
	oo := &options.OutputOptions{}

	short := "Add a photo by image URL"
	aliases := []string{"image"}
	if kind == media.KindVideo {
		short = "Add a YouTube video by watch, share, shorts or embed URL"
		aliases = []string{"youtube"}
	}

	cmd := &cobra.Command{
		Use:     fmt.Sprintf("%s <url>", kind),
		Aliases: aliases,
		Short:   short,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openAlbum(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s := add.Add{
				Kind:    kind,
				URL:     args[0],
				Title:   io.Title,
				Section: so.Section,
				JSON:    oo.JSON,
				Service: a.Service,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(ctx(cmd)))
		},
	}

	options.AddTitleArgs(cmd, io)
	options.AddTargetSectionArgs(cmd, so)
	registerSectionCompletion(cmd)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/album/pkg/commands/options"
)

var (
	logOpts = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "album",
		Short: base.Wrap80("A photo and YouTube video album on the command line."),
		Long: base.Wrap80("Keep photos and YouTube videos in named sections, " +
			"reorder them, browse them as a slideshow, and share the album " +
			"as a JSON document."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddLogArgs(cmd, logOpts)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addSection(topLevel)
	addAdd(topLevel)
	addDelete(topLevel)
	addGet(topLevel)
	addMove(topLevel)
	addShow(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addUpload(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

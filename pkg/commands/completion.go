package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/album/pkg/app"
	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(album completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(album completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func registerSectionCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("section", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return sectionCompletions(cmd, toComplete, true), cobra.ShellCompDirectiveNoFileComp
	})
}

// completionAlbum opens an existing album quietly. Nothing is seeded.
func completionAlbum() *app.Service {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	if _, err := p.Get(store.DocumentKey); err != nil {
		return nil
	}
	svc := app.New(p)
	if err := svc.Load(context.Background()); err != nil {
		return nil
	}
	return svc
}

func sectionCompletions(_ *cobra.Command, toComplete string, withAll bool) []string {
	svc := completionAlbum()
	if svc == nil {
		return nil
	}
	var names []string
	for _, s := range svc.Sections() {
		if s.IsAll() && !withAll {
			continue
		}
		if strings.HasPrefix(strings.ToLower(s.Name), strings.ToLower(toComplete)) {
			names = append(names, s.Name)
		}
	}
	return names
}

func itemCompletions(_ *cobra.Command, toComplete string) []string {
	svc := completionAlbum()
	if svc == nil {
		return nil
	}
	var ids []string
	for _, it := range svc.Visible(media.AllSection, "") {
		if strings.HasPrefix(it.ID, toComplete) {
			ids = append(ids, it.ID+"\t"+it.DisplayTitle())
		}
	}
	return ids
}

// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/album/pkg/media"
)

// SectionOptions selects the list of items a command works on.
type SectionOptions struct {
	Section string
	Query   string
}

// AddSectionArgs wires the section flag, defaulting to All.
func AddSectionArgs(cmd *cobra.Command, o *SectionOptions) {
	cmd.Flags().StringVarP(&o.Section, "section", "s", media.AllSection,
		"Specify the section.")
}

// AddQueryArgs wires the search query flag.
func AddQueryArgs(cmd *cobra.Command, o *SectionOptions) {
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Only items whose title or section contains this text.")
}

// AddTargetSectionArgs wires a section flag for new items, where empty means All.
func AddTargetSectionArgs(cmd *cobra.Command, o *SectionOptions) {
	cmd.Flags().StringVarP(&o.Section, "section", "s", "",
		"Section to file the item under. Defaults to All.")
}

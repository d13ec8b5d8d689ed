package options

import (
	"github.com/spf13/cobra"
)

// ItemOptions
type ItemOptions struct {
	Title string
}

func AddTitleArgs(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		`Title for the item. Defaults to a name for its kind.`)
}

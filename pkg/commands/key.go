package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/album/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the legend for item symbols",
		Example: `
album key
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k := key.Key{Out: cmd.OutOrStdout()}
			return k.Do(ctx(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/album/pkg/runner/transfer"
)

func addExport(topLevel *cobra.Command) {
	var path string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the album as a JSON document",
		Example: `
album export > album.json
album export -o album.json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openAlbum(cmd)
			if err != nil {
				return err
			}
			s := transfer.Export{
				Path:    path,
				Service: a.Service,
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(ctx(cmd))
		},
	}

	cmd.Flags().StringVarP(&path, "output", "o", "", "File to write. Defaults to stdout.")
	_ = cmd.MarkFlagFilename("output", "json")

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the album with a JSON document",
		Long: `Replace every section and item with the contents of an exported document.
Use - to read from stdin. A document that can not be read leaves the album
unchanged.`,
		Example: `
album import album.json
cat album.json | album import -
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"json"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openAlbum(cmd)
			if err != nil {
				return err
			}
			s := transfer.Import{
				Path:    args[0],
				Service: a.Service,
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(ctx(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}

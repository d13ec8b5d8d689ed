package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/album/pkg/commands/options"
	uploadrunner "tableflip.dev/album/pkg/runner/upload"
)

func addUpload(topLevel *cobra.Command) {
	so := &options.SectionOptions{}
	io := &options.ItemOptions{}
	oo := &options.OutputOptions{}
	var noAdd bool

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an image to Cloudinary and add it as a photo",
		Long: `Upload a local image with an unsigned Cloudinary preset. The returned URL is
added to the album as a photo unless --no-add is set.

The cloud name and preset come from the store (see "album upload config"),
overridden by cloudinary.cloud_name and cloudinary.preset in .album.yaml or
ALBUM_CLOUDINARY_CLOUD_NAME and ALBUM_CLOUDINARY_PRESET. Missing values are
prompted for.`,
		Example: `
album upload ~/Pictures/pier.jpg --section Travel
album upload scan.png --title "Grandma, 1962" --no-add
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openAlbum(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			s := uploadrunner.Upload{
				Path:     args[0],
				Title:    io.Title,
				Section:  so.Section,
				NoAdd:    noAdd,
				JSON:     oo.JSON,
				Service:  a.Service,
				Backend:  a.Store,
				Settings: a.Config.Cloudinary(),
				Out:      cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(ctx(cmd)))
		},
	}

	options.AddTitleArgs(cmd, io)
	options.AddTargetSectionArgs(cmd, so)
	registerSectionCompletion(cmd)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&noAdd, "no-add", false, "Only upload, do not add the photo to the album.")

	cmd.AddCommand(newUploadConfigCmd())
	topLevel.AddCommand(cmd)
}

func newUploadConfigCmd() *cobra.Command {
	c := &uploadrunner.Config{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Store the Cloudinary cloud name and unsigned preset",
		Example: `
album upload config --cloud-name demo --preset unsigned_album
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openAlbum(cmd)
			if err != nil {
				return err
			}
			c.Backend = a.Store
			c.Out = cmd.OutOrStdout()
			return c.Do(ctx(cmd))
		},
	}

	cmd.Flags().StringVar(&c.CloudName, "cloud-name", "", "Cloudinary cloud name.")
	cmd.Flags().StringVar(&c.Preset, "preset", "", "Unsigned upload preset.")
	return cmd
}

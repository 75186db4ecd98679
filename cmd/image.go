// Image URL compose and parse subcommands.
// compose builds a CDN image URL from an image id and size options;
// parse decodes an existing CDN URL back into its spec.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zakkhoyt/linkmark/config"
	"github.com/zakkhoyt/linkmark/core/compose"
)

var (
	flagImgWidth    int
	flagImgHeight   int
	flagImgSide     int
	flagImgQuality  int
	flagImgAutoCrop bool
	flagImgFormat   string
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Compose or parse CDN image URLs",
}

var imageComposeCmd = &cobra.Command{
	Use:   "compose <image-id>",
	Short: "Build a CDN image URL",
	Long: `Compose assembles a CDN image URL from an image id and modifier
options. Width/height take precedence over the square side; with no size
options at all a 500px square side is applied.

Examples:
  linkmark image compose ABC1234567
  linkmark image compose ABC1234567 --width 800 --height 600 --autocrop`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		url := compose.ImageURL(args[0], compose.ImageOptions{
			Width:      flagImgWidth,
			Height:     flagImgHeight,
			SquareSide: flagImgSide,
			Quality:    flagImgQuality,
			AutoCrop:   flagImgAutoCrop,
			Format:     flagImgFormat,
			Host:       cfg.Image.CDNHost,
		})
		fmt.Fprintln(os.Stdout, url)
		return nil
	},
}

var imageParseCmd = &cobra.Command{
	Use:   "parse <url>",
	Short: "Decode a CDN image URL into its spec",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spec := compose.ParseImageURL(args[0])
		if spec == nil {
			return fmt.Errorf("not a CDN image URL: %s", args[0])
		}
		data, err := json.MarshalIndent(spec, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(imageCmd)
	imageCmd.AddCommand(imageComposeCmd)
	imageCmd.AddCommand(imageParseCmd)

	imageComposeCmd.Flags().IntVar(&flagImgWidth, "width", 0, "Width in pixels (SX token)")
	imageComposeCmd.Flags().IntVar(&flagImgHeight, "height", 0, "Height in pixels (SY token)")
	imageComposeCmd.Flags().IntVar(&flagImgSide, "side", 0, "Square side in pixels (SL token)")
	imageComposeCmd.Flags().IntVar(&flagImgQuality, "quality", 0, "JPEG quality 1-100 (QL token, omitted at 95)")
	imageComposeCmd.Flags().BoolVar(&flagImgAutoCrop, "autocrop", false, "Auto-crop (AC token)")
	imageComposeCmd.Flags().StringVar(&flagImgFormat, "format", "", "File extension (default jpg)")
}

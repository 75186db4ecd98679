// The link command fetches a listing page, extracts the title and
// identifier, and prints a markdown link.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zakkhoyt/linkmark/config"
	"github.com/zakkhoyt/linkmark/core/compose"
	"github.com/zakkhoyt/linkmark/core/extract"
	"github.com/zakkhoyt/linkmark/core/fetch"
	"github.com/zakkhoyt/linkmark/core/locator"
	"github.com/zakkhoyt/linkmark/core/markdown"
	"github.com/zakkhoyt/linkmark/core/normalize"
)

var (
	flagLinkFormat string
	flagWithImage  bool
	flagImageSide  int
	flagMaxTitle   int
	flagVerbose    bool
)

var linkCmd = &cobra.Command{
	Use:   "link <url>",
	Short: "Extract a listing and print a markdown link",
	Long: `Link fetches the listing page, extracts the identifier and title, and
prints a [title](url) markdown fragment. The URL side is recomposed at the
chosen verbosity: short (canonical path only), medium (canonical path plus
variant parameters), or long (all original parameters).

Examples:
  linkmark link https://www.amazon.com/dp/B01ABCDEFG
  linkmark link https://www.amazon.com/dp/B01ABCDEFG --format medium
  linkmark link https://www.amazon.com/dp/B01ABCDEFG --image`,
	Args: cobra.ExactArgs(1),
	RunE: runLink,
}

func init() {
	rootCmd.AddCommand(linkCmd)

	linkCmd.Flags().StringVar(&flagLinkFormat, "format", "short", "URL verbosity: short, medium, or long")
	linkCmd.Flags().BoolVar(&flagWithImage, "image", false, "Include a linked image fragment")
	linkCmd.Flags().IntVar(&flagImageSide, "image_side", 0, "Square side for the image URL (default from config)")
	linkCmd.Flags().IntVar(&flagMaxTitle, "max_title", 0, "Title length budget (default from config)")
	linkCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Trace which strategy produced each field")
}

func runLink(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	format := compose.LinkFormat(flagLinkFormat)
	switch format {
	case compose.FormatShort, compose.FormatMedium, compose.FormatLong:
	default:
		return fmt.Errorf("unknown format %q (want short, medium, or long)", flagLinkFormat)
	}

	rawURL := args[0]
	loc, err := locator.Classify(rawURL)
	if err != nil {
		return fmt.Errorf("classifying URL: %w", err)
	}

	result, err := fetch.New().Fetch(context.Background(), rawURL)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	extractor := extract.New(extract.Options{
		Verbose: flagVerbose || cfg.Extract.Verbose,
		Logf: func(f string, a ...any) {
			fmt.Fprintf(os.Stderr, f+"\n", a...)
		},
	})

	listing, err := extractor.Listing(extract.FromHTML(result.HTML), rawURL)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	// Prefer the URL's own identity for composition; fall back to the
	// extracted identifier for non-canonical URLs.
	if loc.Identifier == "" {
		loc.Identifier = listing.Identifier
	}

	url, err := compose.LocatorURL(loc, format)
	if err != nil {
		return fmt.Errorf("compose: %w", err)
	}

	maxTitle := flagMaxTitle
	if maxTitle <= 0 {
		maxTitle = cfg.Extract.TitleMaxLength
	}
	title := normalize.Truncate(listing.TitleNormalized, maxTitle)
	opts := normalize.DefaultEscapeOptions()
	opts.Parens = false
	title = normalize.EscapeMarkdown(title, opts)

	if !flagWithImage || listing.Images.Primary == nil || listing.Images.Primary.ID == "" {
		link, err := markdown.Link(title, url)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, link)
		return nil
	}

	side := flagImageSide
	if side <= 0 {
		side = cfg.Image.SquareSide
	}
	imgURL := compose.ImageURL(listing.Images.Primary.ID, compose.ImageOptions{
		SquareSide: side,
		Host:       cfg.Image.CDNHost,
	})
	combined, err := markdown.Combined(title, url, imgURL, markdown.FormatInline)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, combined)
	return nil
}

// The listing command runs the full extraction and renders the listing as
// Markdown, JSON, or PDF, to stdout or to a file named after the
// identifier.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zakkhoyt/linkmark/core"
	"github.com/zakkhoyt/linkmark/core/extract"
	"github.com/zakkhoyt/linkmark/core/fetch"
	"github.com/zakkhoyt/linkmark/core/output"
	"github.com/zakkhoyt/linkmark/core/render"
)

var (
	flagListingMarkdown bool
	flagListingJSON     bool
	flagListingPDF      bool
	flagListingOut      string
)

var listingCmd = &cobra.Command{
	Use:   "listing <url>",
	Short: "Extract a full listing record and render it",
	Long: `Listing fetches the page, extracts every field the strategies can
resolve (identifier, title, brand, price, images, rating, availability),
and renders the record.

Examples:
  linkmark listing https://www.amazon.com/dp/B01ABCDEFG --markdown
  linkmark listing https://www.amazon.com/dp/B01ABCDEFG --json
  linkmark listing https://www.amazon.com/dp/B01ABCDEFG --pdf --output_dir ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runListing,
}

func init() {
	rootCmd.AddCommand(listingCmd)

	listingCmd.Flags().BoolVar(&flagListingMarkdown, "markdown", false, "Render a markdown card (default)")
	listingCmd.Flags().BoolVar(&flagListingJSON, "json", false, "Render the record as JSON")
	listingCmd.Flags().BoolVar(&flagListingPDF, "pdf", false, "Render a PDF card")
	listingCmd.Flags().StringVar(&flagListingOut, "output_dir", "", "Write to a file in this directory instead of stdout")
}

func runListing(cmd *cobra.Command, args []string) error {
	renderer, err := selectListingRenderer()
	if err != nil {
		return err
	}

	rawURL := args[0]
	result, err := fetch.New().Fetch(context.Background(), rawURL)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	extractor := extract.New(extract.Options{})
	listing, err := extractor.Listing(extract.FromHTML(result.HTML), rawURL)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	data, err := renderer.Render(listing)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if flagListingOut == "" && !flagListingPDF {
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	writer, err := output.New(flagListingOut)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.WriteListing(listing.Identifier, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// selectListingRenderer picks the renderer; at most one format flag is
// allowed and markdown is the default.
func selectListingRenderer() (core.Renderer, error) {
	count := 0
	for _, flag := range []bool{flagListingMarkdown, flagListingJSON, flagListingPDF} {
		if flag {
			count++
		}
	}
	if count > 1 {
		return nil, fmt.Errorf("only one of --markdown, --json, --pdf allowed (got %d)", count)
	}

	switch {
	case flagListingJSON:
		return render.NewJSONRenderer(), nil
	case flagListingPDF:
		return render.NewPDFRenderer(), nil
	default:
		return render.NewMarkdownRenderer(), nil
	}
}

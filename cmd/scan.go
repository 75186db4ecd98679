// The scan command fetches a search/category results page and lists every
// product link it carries, flagging sponsored tiles.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zakkhoyt/linkmark/core/fetch"
	"github.com/zakkhoyt/linkmark/scan"
)

var (
	flagScanSponsored bool
	flagScanJSON      bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "List product links on a results page",
	Long: `Scan fetches a search or category results page, resolves every anchor,
and reports the product links once each in document order. Sponsored tiles
are flagged; --sponsored restricts the output to them.

Examples:
  linkmark scan "https://www.amazon.com/s?k=espresso"
  linkmark scan "https://www.amazon.com/s?k=espresso" --sponsored --json`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&flagScanSponsored, "sponsored", false, "Only show sponsored listings")
	scanCmd.Flags().BoolVar(&flagScanJSON, "json", false, "Emit JSON instead of text")
}

func runScan(cmd *cobra.Command, args []string) error {
	rawURL := args[0]
	result, err := fetch.New().Fetch(context.Background(), rawURL)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	listings, err := scan.Results(result.HTML, rawURL)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	if flagScanSponsored {
		filtered := listings[:0]
		for _, l := range listings {
			if l.Sponsored {
				filtered = append(filtered, l)
			}
		}
		listings = filtered
	}

	if flagScanJSON {
		data, err := json.MarshalIndent(listings, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	for _, l := range listings {
		marker := " "
		if l.Sponsored {
			marker = "$"
		}
		fmt.Fprintf(os.Stdout, "%s %s  %s\n", marker, l.Locator.Identifier, l.Title)
	}
	fmt.Fprintf(os.Stderr, "%d listings\n", len(listings))
	return nil
}

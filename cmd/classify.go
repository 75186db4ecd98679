// The classify command: classify a URL without fetching anything.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zakkhoyt/linkmark/core/locator"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <url>",
	Short: "Classify a marketplace URL",
	Long: `Classify parses a URL and reports what it points at (product, store,
search, category, bestsellers, deals, or other), the extracted identifier,
and the variant/tracking split of its query parameters. No network I/O.

Example:
  linkmark classify "https://www.amazon.com/dp/B01ABCDEFG?th=1&tag=foo-20"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := locator.Classify(args[0])
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(loc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

// Package cmd implements the CLI commands for linkmark using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "linkmark",
	Short: "Turn marketplace listing URLs into markdown links",
	Long: `linkmark extracts listing data (title, price, images, rating) from
marketplace product pages and composes markdown links, listing cards,
canonical URLs, and CDN image URLs.

Usage:
  linkmark link <url>
  linkmark listing <url> --json
  linkmark classify <url>
  linkmark image parse <url>
  linkmark scan <url>
  linkmark serve`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

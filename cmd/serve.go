// The serve command runs the HTTP API so browser-side callers (extensions,
// userscripts) can reach the extraction pipeline locally.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zakkhoyt/linkmark/config"
	"github.com/zakkhoyt/linkmark/core/fetch"
	"github.com/zakkhoyt/linkmark/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the extraction HTTP API",
	Long: `Serve starts an HTTP server exposing classification, extraction, link
composition, and image URL endpoints under /api/v1. Port and allowed
origins come from the config file or LINKMARK_ environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		handler := server.NewHandler(cfg, fetch.New())
		router := server.SetupRouter(cfg, handler)

		fmt.Fprintf(os.Stdout, "linkmark API listening on :%s\n", cfg.Server.Port)
		return router.Run(":" + cfg.Server.Port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

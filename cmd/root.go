/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhnt/devserve/internal/server"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devserve",
		Short: "Serve a directory over HTTP with caching disabled",
		Long: `devserve serves static files from a local directory for frontend
development. Every response tells browsers and proxies not to cache it,
so a reload always shows the latest build output.`,
		Version:      server.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runServe,
	}

	cmd.Flags().String("host", server.DefaultHost, "Host to bind")
	cmd.Flags().IntP("port", "p", server.DefaultPort, "Port to bind")
	cmd.Flags().String("dir", server.DefaultRoot, "Directory to serve")
	cmd.Flags().Int("max-conns", 0, "Maximum concurrent connections, 0 for unlimited")

	// usage goes with flag errors only, not with startup failures
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, c.UsageString())
	})

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides the command-line interface for the hypergraph desktop path layer.
package main

import (
	"log"

	"github.com/lerenn/hypergraph-desktop/cmd/hgd/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hgd",
		Short: "Hypergraph Desktop - path resolution and directory selection",
		Long: `Inspect, resolve and create the directories hypergraphs are stored in, ` +
			`and drive the "Open Hypergraph" directory browser from the terminal.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(
		createInspectCmd(),
		createResolveCmd(),
		createExistsCmd(),
		createBrowseCmd(),
		createMkdirCmd(),
		createWriteCmd(),
		createYamlCmd(),
		createValidateCmd(),
		createMenuCmd(),
		createInitCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

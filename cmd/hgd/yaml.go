package main

import (
	"fmt"

	"github.com/lerenn/hypergraph-desktop/pkg/fs"
	"github.com/spf13/cobra"
)

func createYamlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "yaml <name>...",
		Short: "Report which names carry a YAML extension",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", name, fs.HasYamlExtension(name))
			}
			return nil
		},
	}
}

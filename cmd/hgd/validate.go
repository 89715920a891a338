package main

import (
	"fmt"

	"github.com/lerenn/hypergraph-desktop/pkg/fs"
	"github.com/spf13/cobra"
)

func createValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>",
		Short: "Check that a string is a syntactically valid pathname",
		Long: `Check the syntax of a pathname on this platform without touching the filesystem.

Examples:
  hgd validate "~/hypergraphs/physics"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), fs.IsValidPathname(args[0]))
			return nil
		},
	}
}

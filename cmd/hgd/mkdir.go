package main

import (
	"github.com/lerenn/hypergraph-desktop/cmd/hgd/internal/cli"
	"github.com/lerenn/hypergraph-desktop/pkg/fs"
	"github.com/spf13/cobra"
)

func createMkdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a single directory",
		Long: `Create one directory level. Fails when the path is empty, when anything
already exists at the path or when the parent directory is missing.

Examples:
  hgd mkdir ~/hypergraphs/physics`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := fs.NewFSWithLogger(cli.NewLogger())
			if err := f.CreateDirectory(args[0]); err != nil {
				return err
			}

			cli.Printf(cmd.OutOrStdout(), "Created directory %s\n", args[0])
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/lerenn/hypergraph-desktop/cmd/hgd/internal/cli"
	"github.com/lerenn/hypergraph-desktop/pkg/fs"
	"github.com/spf13/cobra"
)

func createExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists <path>",
		Short: "Report whether a path is accessible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := fs.NewFSWithLogger(cli.NewLogger())
			fmt.Fprintln(cmd.OutOrStdout(), f.Exists(cmd.Context(), args[0]))
			return nil
		},
	}
}

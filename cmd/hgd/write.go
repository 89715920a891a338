package main

import (
	"github.com/lerenn/hypergraph-desktop/cmd/hgd/internal/cli"
	"github.com/lerenn/hypergraph-desktop/pkg/fs"
	"github.com/spf13/cobra"
)

func createWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write <path> [content|-]",
		Short: "Write UTF-8 text to a file",
		Long: `Create or overwrite a file with the given text. Without content, or with "-",
the text is read from stdin.

Examples:
  hgd write graph.yaml "nodes: []"
  cat graph.yaml | hgd write copy.yaml -`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := cli.ReadContent(cmd.InOrStdin(), args[1:])
			if err != nil {
				return err
			}

			f := fs.NewFSWithLogger(cli.NewLogger())
			if err := f.WriteFile(args[0], content); err != nil {
				return err
			}

			cli.Printf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(content), args[0])
			return nil
		},
	}
}

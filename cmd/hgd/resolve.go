package main

import (
	"errors"
	"fmt"

	"github.com/lerenn/hypergraph-desktop/cmd/hgd/internal/cli"
	"github.com/lerenn/hypergraph-desktop/pkg/fs"
	"github.com/spf13/cobra"
)

// ErrUnresolved is returned when a link target is neither a file nor a directory.
var ErrUnresolved = errors.New("path could not be resolved")

func createResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Normalize a path and follow one symbolic link hop",
		Long: `Print the absolute, cleaned form of a path. When the path is a symbolic link,
its target is printed instead, provided the target is an existing file or directory.

Examples:
  hgd resolve ../graphs
  hgd resolve ./current`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := fs.NewFSWithLogger(cli.NewLogger())

			resolved := f.NormalizeAndResolvePath(args[0])
			if resolved == "" {
				return fmt.Errorf("%w: %s", ErrUnresolved, args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), resolved)
			return nil
		},
	}
}

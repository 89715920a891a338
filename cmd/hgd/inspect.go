package main

import (
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/lerenn/hypergraph-desktop/cmd/hgd/internal/cli"
	"github.com/lerenn/hypergraph-desktop/pkg/fs"
	"github.com/spf13/cobra"
)

func createInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <path>",
		Short: "Classify a filesystem entry",
		Long: `Report whether a path is a file, a directory or nothing, and whether it is a symbolic link.
For files the detected content type is printed too.

Examples:
  hgd inspect ~/hypergraphs
  hgd inspect ./current`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := fs.NewFSWithLogger(cli.NewLogger())
			entry := f.Inspect(args[0])

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:      %s\n", entry.Path)
			fmt.Fprintf(out, "kind:      %s\n", entry.Kind)
			fmt.Fprintf(out, "symlink:   %t\n", entry.Symlink)
			if entry.Symlink {
				fmt.Fprintf(out, "resolved:  %s\n", f.NormalizeAndResolvePath(entry.Path))
			}
			if entry.Kind == fs.EntryFile {
				printMIMEType(out, entry.Path)
			}
			return nil
		},
	}
}

// printMIMEType prints the content type detected from the file header.
func printMIMEType(out io.Writer, path string) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		fmt.Fprintf(out, "mime:      unknown (%v)\n", err)
		return
	}
	fmt.Fprintf(out, "mime:      %s\n", mtype.String())
}

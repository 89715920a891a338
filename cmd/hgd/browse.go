package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/lerenn/hypergraph-desktop/cmd/hgd/internal/cli"
	"github.com/lerenn/hypergraph-desktop/pkg/browser"
	"github.com/lerenn/hypergraph-desktop/pkg/dependencies"
	"github.com/lerenn/hypergraph-desktop/pkg/dialog"
	"github.com/spf13/cobra"
)

// ErrInvalidSelection is returned when the chosen entry is not a usable directory.
var ErrInvalidSelection = errors.New("selection is not a directory")

var (
	usePrompt bool
	startDir  string
)

func createBrowseCmd() *cobra.Command {
	browseCmd := &cobra.Command{
		Use:   "browse [--prompt] [--start <dir>]",
		Short: "Pick a directory to open a hypergraph from",
		Long: `Open the directory picker and print the resolved directory.
Symbolic links are followed one hop; a selection that is not a directory is rejected.

Examples:
  hgd browse
  hgd browse --prompt --start ~/hypergraphs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, cfg, err := cli.NewDependencies()
			if err != nil {
				return err
			}
			if usePrompt {
				deps.WithPicker(dialog.NewPromptPicker(deps.Prompt, deps.FS))
			}

			return runBrowse(cmd.Context(), cmd.OutOrStdout(), deps, cli.Window(cfg, startDir))
		},
	}

	browseCmd.Flags().BoolVar(&usePrompt, "prompt", false, "Use the line prompt instead of the full-screen browser")
	browseCmd.Flags().StringVar(&startDir, "start", "", "Directory to start browsing from")

	return browseCmd
}

// runBrowse runs the browse workflow and reports its outcome on out.
func runBrowse(ctx context.Context, out io.Writer, deps *dependencies.Dependencies, win dialog.Window) error {
	result, err := deps.Browser().BrowseDirectory(ctx, win)
	if err != nil {
		return err
	}

	switch result.Status {
	case browser.StatusResolved:
		fmt.Fprintln(out, result.Path)
		return nil
	case browser.StatusInvalid:
		return fmt.Errorf("%w: %s", ErrInvalidSelection, result.Selected)
	default:
		cli.Printf(out, "Cancelled\n")
		return nil
	}
}

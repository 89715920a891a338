package main

import (
	"errors"
	"fmt"

	"github.com/lerenn/hypergraph-desktop/cmd/hgd/internal/cli"
	"github.com/lerenn/hypergraph-desktop/pkg/config"
	"github.com/lerenn/hypergraph-desktop/pkg/fs"
	"github.com/spf13/cobra"
)

// ErrAlreadyInitialized is returned by init when a config file already exists and --force is not set.
var ErrAlreadyInitialized = errors.New("configuration already exists (use --force to overwrite)")

var (
	force      bool
	defaultDir string
	pickerName string
)

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init [--force] [--default-directory <dir>] [--picker tui|prompt]",
		Short: "Write the hgd configuration file",
		Long: `Write the default configuration, optionally overriding some of its values.

Flags:
  --force               Overwrite an existing configuration
  --default-directory   Directory the picker starts in
  --picker              Picker to use: tui or prompt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := fs.NewFSWithLogger(cli.NewLogger())
			manager := cli.NewConfigManager(f)

			if !force && f.Exists(cmd.Context(), manager.GetConfigPath()) {
				return fmt.Errorf("%w: %s", ErrAlreadyInitialized, manager.GetConfigPath())
			}

			cfg := manager.DefaultConfig()
			if defaultDir != "" {
				cfg.DefaultDirectory = defaultDir
			}
			if pickerName != "" {
				cfg.Picker = pickerName
			}

			if err := manager.SaveConfig(cfg); err != nil {
				return err
			}

			cli.Printf(cmd.OutOrStdout(), "Configuration written to %s\n", manager.GetConfigPath())
			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration")
	initCmd.Flags().StringVar(&defaultDir, "default-directory", "", "Directory the picker starts in")
	initCmd.Flags().StringVar(&pickerName, "picker", "", fmt.Sprintf("Picker to use (%s or %s)",
		config.PickerTUI, config.PickerPrompt))

	return initCmd
}

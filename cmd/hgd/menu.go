package main

import (
	"context"
	"fmt"

	"github.com/lerenn/hypergraph-desktop/cmd/hgd/internal/cli"
	"github.com/lerenn/hypergraph-desktop/pkg/menu"
	"github.com/lerenn/hypergraph-desktop/pkg/prompt"
	"github.com/spf13/cobra"
)

var (
	interactive bool
	trigger     string
)

func createMenuCmd() *cobra.Command {
	menuCmd := &cobra.Command{
		Use:   "menu [--interactive | --trigger <action>]",
		Short: "Show the application menu or activate one of its entries",
		Long: `Print the application menu. With --interactive, pick an entry from a filterable list
and activate it. With --trigger, activate the entry carrying the given action.

Examples:
  hgd menu
  hgd menu --interactive
  hgd menu --trigger main:open-hypergraph`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			template, err := menu.DefaultTemplate()
			if err != nil {
				return err
			}

			if !interactive && trigger == "" {
				fmt.Fprint(cmd.OutOrStdout(), template.Render())
				return nil
			}

			deps, cfg, err := cli.NewDependencies()
			if err != nil {
				return err
			}

			unregister, err := deps.Dispatcher.Register(menu.ActionOpenHypergraph,
				func(ctx context.Context, _ menu.Event) error {
					return runBrowse(ctx, cmd.OutOrStdout(), deps, cli.Window(cfg, ""))
				})
			if err != nil {
				return err
			}
			defer unregister()

			action := trigger
			if interactive {
				choice, err := deps.Prompt.PromptSelectMenuItem(menuChoices(template))
				if err != nil {
					return err
				}
				action = choice.Action
			}

			return menu.New(template, deps.Dispatcher).Trigger(cmd.Context(), action)
		},
	}

	menuCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Select an entry interactively")
	menuCmd.Flags().StringVar(&trigger, "trigger", "", "Activate the entry carrying this action")
	menuCmd.MarkFlagsMutuallyExclusive("interactive", "trigger")

	return menuCmd
}

// menuChoices lists the template entries that carry an action.
func menuChoices(t menu.Template) []prompt.MenuChoice {
	actions := t.Actions()
	choices := make([]prompt.MenuChoice, 0, len(actions))
	for _, a := range actions {
		choices = append(choices, prompt.MenuChoice{
			Location: a.Location,
			Label:    a.Label,
			Action:   a.Action,
		})
	}
	return choices
}

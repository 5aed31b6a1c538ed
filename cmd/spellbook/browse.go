package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/spellbook/internal/tui"
)

func newBrowseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive spell browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, opts)
		},
	}
}

func runBrowse(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()

	service, cleanup, err := opts.service(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	model, err := tui.New(tui.Options{
		Service: service,
		Context: ctx,
	})
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err = p.Run()
	return err
}

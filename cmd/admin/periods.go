package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"bookline-admin/res/schedule"
	"bookline-admin/sys/tui"
)

var periodsCmd = &cobra.Command{
	Use:   "periods",
	Short: "Edit the opening periods of your business",
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := configTokens()

		identity, err := configSession(tokens).Resolve(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to resolve session: %w", err)
		}

		editor := schedule.NewEditor(configGraphQL(tokens), *identity, logger)
		program := tea.NewProgram(tui.NewPeriodsModel(cmd.Context(), editor), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("editor failed: %w", err)
		}
		return nil
	},
}

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"rating_widget/internal/domain/service/resolver"
)

func newGradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "Print the grade table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			for _, style := range resolver.Styles() {
				swatch := lipgloss.NewStyle().
					Bold(true).
					Padding(0, 1).
					Foreground(lipgloss.Color("#ffffff")).
					Background(lipgloss.Color(style.Color.Hex())).
					Render(style.Grade.String())

				if _, err := fmt.Fprintf(
					out,
					"%s  %-10s %-6s %s\n",
					swatch, style.Labels.Classic, style.Labels.Card, style.Color,
				); err != nil {
					return fmt.Errorf("fmt.Fprintf: %w", err)
				}
			}

			return nil
		},
	}
}

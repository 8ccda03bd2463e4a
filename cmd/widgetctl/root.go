package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "widgetctl",
		Short:         "widgetctl renders product rating widgets without running the server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newGradesCmd())

	return cmd
}

package main

import "github.com/spf13/cobra"

func newGUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Play in a window (requires the ebiten build tag)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(opts)
		},
	}
}

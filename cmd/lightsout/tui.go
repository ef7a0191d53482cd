package main

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lights-out/internal/tui"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := tuiLogger(logFile, opts.level)
			if err != nil {
				return err
			}
			defer closeLog()
			slog.SetDefault(logger)

			m, err := tui.New(opts.cfg, tui.Options{Logger: logger})
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file while the game runs (default: discard)")
	return cmd
}

// tuiLogger keeps log output off the terminal bubbletea draws on. Without a
// path everything is discarded.
func tuiLogger(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := tea.LogToFile(path, "lightsout")
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f.Close, nil
}

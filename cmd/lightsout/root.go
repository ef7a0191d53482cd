package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"lights-out/internal/config"
)

type rootOptions struct {
	flags      config.Config
	cfg        config.Config
	configPath string
	sets       []string
	logLevel   string
	level      slog.Level
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{flags: config.DefaultConfig()}
	cmd := &cobra.Command{
		Use:           "lightsout",
		Short:         "Play Lights Out in the terminal or a window",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd, cmd.ErrOrStderr())
		},
	}
	pf := cmd.PersistentFlags()
	opts.flags.Bind(pf)
	pf.StringVar(&opts.configPath, "config", "", "YAML config file")
	pf.StringArrayVar(&opts.sets, "set", nil, "override a setting as key=value (repeatable)")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	cmd.AddCommand(
		newTUICmd(opts),
		newGUICmd(opts),
		newPrintCmd(opts),
		newSolveCmd(opts),
	)
	return cmd
}

// setup resolves defaults, the config file, --set pairs and explicit flags,
// in that order.
func (o *rootOptions) setup(cmd *cobra.Command, logOut io.Writer) error {
	if err := o.level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("log level %q: %w", o.logLevel, err)
	}
	o.logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: o.level}))
	slog.SetDefault(o.logger)

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	overrides, err := config.ParseSet(o.sets)
	if err != nil {
		return err
	}
	cfg = cfg.Override(overrides)
	cfg.Merge(cmd.Flags(), o.flags)
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg
	o.logger.Debug("configuration loaded", "path", o.configPath, "rows", cfg.Rows, "cols", cfg.Cols, "chance", cfg.Chance, "seed", cfg.Seed)
	return nil
}

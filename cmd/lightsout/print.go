package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lights-out/pkg/lightsout"
)

func newPrintCmd(opts *rootOptions) *cobra.Command {
	var showParams bool
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Deal a board and print it with a solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showParams {
				for _, p := range opts.cfg.Parameters() {
					fmt.Fprintf(out, "%-13s %s\n", p.Label, p.Value)
				}
				fmt.Fprintln(out)
			}
			g, err := lightsout.NewGame(opts.cfg.Game(), opts.cfg.Source())
			if err != nil {
				return err
			}
			writeBoard(out, g.Board())
			return nil
		},
	}
	cmd.Flags().BoolVar(&showParams, "params", false, "print the effective settings first")
	return cmd
}

func newSolveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a board read from a file or stdin ('O' lit, '.' unlit)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			data, err := io.ReadAll(r)
			if err != nil {
				return err
			}
			b, err := lightsout.ParseBoard(string(data))
			if err != nil {
				return err
			}
			opts.logger.Debug("solving board", "rows", b.Rows(), "cols", b.Cols(), "lit", b.Lit())
			writeBoard(cmd.OutOrStdout(), b)
			return nil
		},
	}
}

func writeBoard(w io.Writer, b lightsout.Board) {
	fmt.Fprintln(w, b)
	fmt.Fprintf(w, "\n%dx%d, %d lit\n", b.Rows(), b.Cols(), b.Lit())
	if lightsout.HasWon(b) {
		fmt.Fprintln(w, "all lights are off")
		return
	}
	presses, ok := lightsout.Solve(b)
	if !ok {
		fmt.Fprintln(w, "no solution")
		return
	}
	parts := make([]string, len(presses))
	for i, c := range presses {
		parts[i] = fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	fmt.Fprintf(w, "solution: %d presses %s\n", len(presses), strings.Join(parts, " "))
}

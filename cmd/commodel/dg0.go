// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/klamt-lab/commodel/thermo"
)

func dg0Command(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dg0",
		Short: "Standard Gibbs free energy tables",
	}

	var (
		species  []string
		output   string
		text     bool
		model    string
		excludes []string
	)
	convert := &cobra.Command{
		Use:   "convert notes.txt",
		Short: "Convert a reaction notes dump into a dG0 JSON table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fh, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer fh.Close()
			t, err := thermo.ParseReactionNotes(fh, species...)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if model != "" {
				m, err := readModel(model)
				if err != nil {
					return err
				}
				n := t.AddExchangeDefaults(m, excludes...)
				a.log.Debug("exchange defaults added", "count", n)
			}
			a.log.Info("dG0 table parsed", "entries", len(t))

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			if text {
				return t.WriteTextList(out)
			}
			return t.WriteJSON(out)
		},
	}
	convert.Flags().StringSliceVar(&species, "species", nil, "Expand every id to <id>_<species> for each species")
	convert.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	convert.Flags().BoolVar(&text, "text", false, "Write the semicolon list instead of JSON")
	convert.Flags().StringVar(&model, "model", "", "Community model whose exchange reactions get zero entries")
	convert.Flags().StringSliceVar(&excludes, "exclude", []string{"h2o", "h", "pi"}, "Exchange ids left without default entry")

	coverage := &cobra.Command{
		Use:   "coverage model.json dg0.json",
		Short: "Report which internal reactions carry a dG0 entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readModel(args[0])
			if err != nil {
				return err
			}
			t, err := thermo.ReadFile(args[1])
			if err != nil {
				return err
			}
			c := t.CoverageOf(m)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "internal reactions: %d\n", c.Internal)
			fmt.Fprintf(out, "with dG0: %d\n", c.Covered)
			fmt.Fprintf(out, "exchange entries: %d\n", c.Exchanges)
			fmt.Fprintf(out, "missing: %.1f%%\n", 100*c.MissingFraction())
			for _, id := range c.Uncovered {
				fmt.Fprintf(out, "  no dG0: %s\n", id)
			}
			for _, id := range c.Unknown {
				fmt.Fprintf(out, "  not in model: %s\n", id)
			}
			return nil
		},
	}

	cmd.AddCommand(convert, coverage)
	return cmd
}

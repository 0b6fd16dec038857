// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/klamt-lab/commodel/results"
)

func runsCommand(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "runs [id]",
		Short: "List stored runs or print one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			defer store.Close()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				run, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s model=%s mu=%g status=%s objective=%g\n",
					run.ID, run.Kind, run.ModelID, run.GrowthRate, run.Status, run.Objective)
				if run.Summary != "" {
					fmt.Fprint(out, run.Summary)
				}
				return nil
			}

			runs, err := store.Runs(cmd.Context(), kind)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tKIND\tMODEL\tMU\tSTATUS\tOBJECTIVE\tFRACTIONS")
			for i := range runs {
				r := &runs[i]
				fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%s\t%g\t%s\n",
					r.ID, r.Kind, r.ModelID, r.GrowthRate, r.Status, r.Objective, fractions(r))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", fmt.Sprintf("Filter by kind: %s, %s, %s or %s",
		results.KindFBA, results.KindBalanced, results.KindRedCom, results.KindMinimal))
	return cmd
}

func fractions(r *results.Run) string {
	m := r.FractionMap()
	species := make([]string, 0, len(m))
	for sp := range m {
		species = append(species, sp)
	}
	sort.Strings(species)
	parts := make([]string, len(species))
	for i, sp := range species {
		parts[i] = fmt.Sprintf("%s=%.3f", sp, m[sp])
	}
	return strings.Join(parts, ",")
}

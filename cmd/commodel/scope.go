// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/klamt-lab/commodel/fluxnet"
)

func scopeCommand(a *app) *cobra.Command {
	var (
		seeds    []string
		maxDepth int
		blocked  bool
	)
	cmd := &cobra.Command{
		Use:   "scope model.json",
		Short: "Metabolites reachable from the uptakes and seed metabolites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readModel(args[0])
			if err != nil {
				return err
			}
			sc, err := m.Scope(seeds, &fluxnet.ScopeOptions{Ctx: cmd.Context(), MaxDepth: maxDepth})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			dead := sc.Blocked(m)
			a.log.Debug("scope computed", "available", len(sc.Order), "blocked", len(dead))
			if blocked {
				for _, id := range dead {
					fmt.Fprintln(out, id)
				}
				return nil
			}
			for _, id := range sc.Order {
				fmt.Fprintf(out, "%d\t%s\t%s\n", sc.Depth[id], id, sc.Producer[id])
			}
			fmt.Fprintf(out, "%d of %d metabolites available, %d reactions blocked\n",
				len(sc.Order), m.NumMetabolites(), len(dead))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&seeds, "seed", nil, "Metabolites available from the start")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Stop after that many reaction steps (0 for no limit)")
	cmd.Flags().BoolVar(&blocked, "blocked", false, "List the blocked reactions only")
	return cmd
}

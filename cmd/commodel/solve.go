// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/klamt-lab/commodel/lp"
	"github.com/klamt-lab/commodel/redcom"
	"github.com/klamt-lab/commodel/results"
)

func fbaCommand(a *app) *cobra.Command {
	var (
		save   bool
		fluxes bool
		mu     float64
	)
	cmd := &cobra.Command{
		Use:   "fba model.json",
		Short: "Optimise a model's own objective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readModel(args[0])
			if err != nil {
				return err
			}
			sol, err := m.Optimize(cmd.Context(), a.solver())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "status: %s\n", sol.Status)
			if sol.Status == lp.Optimal {
				fmt.Fprintf(out, "objective: %.6g\n", sol.ObjectiveValue)
				if fluxes {
					printFluxes(out, sol.Fluxes)
				}
			}
			if !save {
				return nil
			}
			kind := results.KindFBA
			if mu > 0 {
				kind = results.KindBalanced
			}
			return a.save(cmd, results.FromSolution(kind, m.ID, mu, sol))
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "Store the run")
	cmd.Flags().BoolVar(&fluxes, "fluxes", false, "Print every non-zero flux")
	cmd.Flags().Float64Var(&mu, "mu", 0, "Growth rate the model was built for; stored runs become balanced-growth runs")
	return cmd
}

func redcomCommand(a *app) *cobra.Command {
	var (
		mu   float64
		save bool
	)
	cmd := &cobra.Command{
		Use:   "redcom model.json",
		Short: "RedCom FBA at a fixed community growth rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readModel(args[0])
			if err != nil {
				return err
			}
			res, err := redcom.FBA(cmd.Context(), m, mu, a.solver(), a.settings.RedComOptions(a.log))
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			if !save {
				return nil
			}
			return a.save(cmd, results.FromResult(results.KindRedCom, m.ID, mu, res))
		},
	}
	cmd.Flags().Float64Var(&mu, "mu", 0, "Community growth rate")
	cmd.Flags().BoolVar(&save, "save", false, "Store the run")
	_ = cmd.MarkFlagRequired("mu")
	return cmd
}

func minimalCommand(a *app) *cobra.Command {
	var (
		mu        float64
		target    string
		value     float64
		enumerate int
		resume    bool
		save      bool
	)
	cmd := &cobra.Command{
		Use:   "minimal model.json",
		Short: "Minimal species sets able to reach a growth rate",
		Long: `Minimises the number of active species at a fixed community growth rate.
With --enumerate N (0 for all) every further set is found by excluding the
previous ones. --resume also excludes the sets stored earlier for the model.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readModel(args[0])
			if err != nil {
				return err
			}
			req := redcom.Request{TargetReactionID: target, TargetValue: value}
			if target != "" && !cmd.Flags().Changed("value") {
				return errors.New("--target needs --value")
			}

			var store *results.Store
			if save || resume {
				if store, err = a.store(); err != nil {
					return err
				}
				defer store.Close()
			}
			if resume {
				if req.Exclude, err = store.Patterns(cmd.Context(), m.ID, mu); err != nil {
					return err
				}
				a.log.Info("resuming enumeration", "model", m.ID, "excluded", len(req.Exclude))
			}

			opts := a.settings.RedComOptions(a.log)
			var found []*redcom.Result
			if cmd.Flags().Changed("enumerate") {
				found, err = redcom.Enumerate(cmd.Context(), m, mu, a.solver(), req, enumerate, opts)
				if err != nil && len(found) == 0 {
					return err
				}
			} else {
				res, err := redcom.MinimalSpecies(cmd.Context(), m, mu, a.solver(), req, opts)
				if err != nil {
					return err
				}
				found = append(found, res)
			}

			out := cmd.OutOrStdout()
			for i, res := range found {
				if len(found) > 1 {
					fmt.Fprintf(out, "--- solution %d ---\n", i+1)
				}
				printResult(out, res)
				if store != nil && save {
					run := results.FromResult(results.KindMinimal, m.ID, mu, res)
					if err := store.Save(cmd.Context(), run); err != nil {
						return err
					}
					fmt.Fprintf(out, "saved run %s\n", run.ID)
				}
			}
			if cmd.Flags().Changed("enumerate") {
				fmt.Fprintf(out, "%d species sets found\n", len(found))
			}
			return err
		},
	}
	cmd.Flags().Float64Var(&mu, "mu", 0, "Community growth rate")
	cmd.Flags().StringVar(&target, "target", "", "Reaction fixed to --value")
	cmd.Flags().Float64Var(&value, "value", 0, "Flux of the target reaction")
	cmd.Flags().IntVar(&enumerate, "enumerate", 0, "Enumerate up to N species sets (0 for all)")
	cmd.Flags().BoolVar(&resume, "resume", false, "Exclude the species sets stored for this model and growth rate")
	cmd.Flags().BoolVar(&save, "save", false, "Store every solution")
	_ = cmd.MarkFlagRequired("mu")
	return cmd
}

// save stores run and prints its id.
func (a *app) save(cmd *cobra.Command, run *results.Run) error {
	store, err := a.store()
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Save(cmd.Context(), run); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved run %s\n", run.ID)
	return nil
}

func printResult(w io.Writer, res *redcom.Result) {
	if res.Status != lp.Optimal {
		fmt.Fprintf(w, "status: %s\n", res.Status)
		return
	}
	fmt.Fprint(w, res.Summary.String())
	species := make([]string, 0, len(res.Fractions))
	for sp := range res.Fractions {
		species = append(species, sp)
	}
	sort.Strings(species)
	fmt.Fprintln(w, "\nFractions:")
	for _, sp := range species {
		fmt.Fprintf(w, "%s: %.6g\n", sp, res.Fractions[sp])
	}
}

func printFluxes(w io.Writer, fluxes map[string]float64) {
	ids := make([]string, 0, len(fluxes))
	for id, v := range fluxes {
		if v != 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(w, "%s: %g\n", id, fluxes[id])
	}
}

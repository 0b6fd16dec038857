// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/klamt-lab/commodel/builder"
	"github.com/klamt-lab/commodel/community"
	"github.com/klamt-lab/commodel/config"
)

type toyFlags struct {
	dir         string
	uptake      float64
	species     []string
	mu          float64
	random      bool
	seed        int64
	metabolites int
	reactions   int
}

func toyCommand(a *app) *cobra.Command {
	f := &toyFlags{}
	cmd := &cobra.Command{
		Use:   "toy",
		Short: "Write member models and a community descriptor using them",
		Long: `Writes one model file per species and community.yaml. By default every
member is the five-step toy organism; --random samples seeded random
networks instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(f.dir, 0o755); err != nil {
				return err
			}
			var (
				c   *community.Community
				err error
			)
			if f.random {
				c, err = builder.RandomCommunity(f.seed, f.metabolites, f.reactions, f.species...)
			} else {
				c, err = builder.ToyCommunity(f.uptake, f.species...)
			}
			if err != nil {
				return err
			}

			d := &config.Descriptor{
				Compartment:    c.Compartment,
				ExchangePrefix: c.ExchangePrefix,
				Inputs:         c.Inputs,
				Outputs:        c.Outputs,
				GrowthRate:     f.mu,
			}
			fraction := 1 / float64(len(c.Models))
			out := cmd.OutOrStdout()
			for _, sm := range c.Models {
				file := sm.Species + ".json"
				path := filepath.Join(f.dir, file)
				if err := sm.Model.WriteFile(path); err != nil {
					return err
				}
				fmt.Fprintln(out, path)
				share := fraction
				d.Models = append(d.Models, config.ModelEntry{
					Species:        sm.Species,
					File:           file,
					Objective:      sm.ObjectiveReactionID,
					ExchangePrefix: sm.ExchangePrefix,
					Inputs:         sm.Inputs,
					Outputs:        sm.Outputs,
					ExchangeIDs:    sm.ExchangeIDs,
					Fraction:       &share,
				})
			}

			descPath := filepath.Join(f.dir, "community.yaml")
			fh, err := os.Create(descPath)
			if err != nil {
				return err
			}
			if err := config.WriteDescriptor(fh, d); err != nil {
				fh.Close()
				return err
			}
			if err := fh.Close(); err != nil {
				return err
			}
			a.log.Info("member files written", "descriptor", descPath, "species", len(c.Models), "random", f.random)
			fmt.Fprintln(out, descPath)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.dir, "output", "o", ".", "Output directory")
	fl.Float64Var(&f.uptake, "uptake", 10, "Upper bound of the first toy conversion step")
	fl.StringSliceVar(&f.species, "species", []string{"species1", "species2"}, "Species tags of the community members")
	fl.Float64Var(&f.mu, "mu", 0.5, "Growth rate written into the descriptor")
	fl.BoolVar(&f.random, "random", false, "Sample random member networks")
	fl.Int64Var(&f.seed, "seed", 1, "Random source seed")
	fl.IntVar(&f.metabolites, "metabolites", 6, "Metabolites per random member")
	fl.IntVar(&f.reactions, "reactions", 12, "Reactions per random member, besides uptake and release")
	return cmd
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/klamt-lab/commodel/community"
	"github.com/klamt-lab/commodel/config"
	"github.com/klamt-lab/commodel/fluxnet"
)

type buildFlags struct {
	output    string
	mu        float64
	fractions map[string]string
}

func buildCommand(a *app) *cobra.Command {
	f := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble a community model from a YAML descriptor",
	}
	cmd.PersistentFlags().StringVarP(&f.output, "output", "o", "", "Model JSON output file (default stdout)")

	balanced := &cobra.Command{
		Use:   "balanced descriptor.yaml",
		Short: "Balanced-growth model with the growth coupling embedded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, c, err := loadCommunity(args[0])
			if err != nil {
				return err
			}
			mu := f.mu
			if !cmd.Flags().Changed("mu") && d.GrowthRate > 0 {
				mu = d.GrowthRate
			}
			m, _, err := community.BuildBalancedGrowth(c, mu, community.WithLogger(a.log))
			if err != nil {
				return err
			}
			return writeModel(cmd.OutOrStdout(), f.output, m)
		},
	}
	balanced.Flags().Float64Var(&f.mu, "mu", 0, "Community growth rate (default: descriptor growth_rate)")

	fixed := &cobra.Command{
		Use:   "fixed descriptor.yaml",
		Short: "Model with organism bounds scaled by fixed fractions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, c, err := loadCommunity(args[0])
			if err != nil {
				return err
			}
			fractions := d.Fractions()
			for sp, raw := range f.fractions {
				v, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return fmt.Errorf("fraction %s: %w", sp, err)
				}
				fractions[sp] = v
			}
			m, _, err := community.BuildFixedFractions(c, fractions, community.WithLogger(a.log))
			if err != nil {
				return err
			}
			return writeModel(cmd.OutOrStdout(), f.output, m)
		},
	}
	fixed.Flags().StringToStringVar(&f.fractions, "fraction", nil, "Species fraction overrides, e.g. species1=0.5")

	redcom := &cobra.Command{
		Use:   "redcom descriptor.yaml",
		Short: "Community model for the RedCom solvers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := loadCommunity(args[0])
			if err != nil {
				return err
			}
			m, _, err := community.BuildRedCom(c, community.WithLogger(a.log))
			if err != nil {
				return err
			}
			return writeModel(cmd.OutOrStdout(), f.output, m)
		},
	}

	cmd.AddCommand(balanced, fixed, redcom)
	return cmd
}

func loadCommunity(path string) (*config.Descriptor, *community.Community, error) {
	d, err := config.ReadDescriptor(path)
	if err != nil {
		return nil, nil, err
	}
	c, err := d.Community()
	if err != nil {
		return nil, nil, err
	}
	return d, c, nil
}

func writeModel(stdout io.Writer, path string, m *fluxnet.Model) error {
	if path == "" {
		return m.WriteJSON(stdout)
	}
	if err := m.WriteFile(path); err != nil {
		return err
	}
	st := m.Stats()
	fmt.Fprintf(stdout, "wrote %s: %d metabolites, %d reactions\n", path, st.Metabolites, st.Reactions)
	return nil
}

func readModel(path string) (*fluxnet.Model, error) {
	if path == "-" {
		return fluxnet.ReadJSON(os.Stdin)
	}
	return fluxnet.ReadFile(path)
}

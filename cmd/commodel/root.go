// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/klamt-lab/commodel/config"
	"github.com/klamt-lab/commodel/logging"
	"github.com/klamt-lab/commodel/lp"
	"github.com/klamt-lab/commodel/results"
)

// app carries the resolved configuration to every subcommand.
type app struct {
	v        *viper.Viper
	cfgFile  string
	settings *config.Settings
	log      *slog.Logger
}

func (a *app) solver() lp.Solver {
	return lp.NewSimplex(a.settings.LPOptions(a.log))
}

func (a *app) store() (*results.Store, error) {
	return results.Open(a.settings.Store.Path)
}

// RootCommand creates the root command with every subcommand attached.
func RootCommand() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:           "commodel",
		Short:         "Metabolic community model assembly and RedCom analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	if err := setupFlags(rootCmd, a); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(
		toyCommand(a),
		buildCommand(a),
		fbaCommand(a),
		redcomCommand(a),
		minimalCommand(a),
		dg0Command(a),
		scopeCommand(a),
		runsCommand(a),
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.initialize()
	}
	return rootCmd
}

// initialize reads the config file and applies the log level.
func (a *app) initialize() error {
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}
	s, err := config.Decode(a.v)
	if err != nil {
		return err
	}
	lvl, err := s.LogLevel()
	if err != nil {
		return err
	}
	logging.SetLevel(lvl)
	a.settings = s
	a.log = logging.Logger()
	a.log.Debug("configuration loaded", "file", a.cfgFile, "store", s.Store.Path)
	return nil
}

// setupFlags defines the global flags and binds them to viper keys.
func setupFlags(rootCmd *cobra.Command, a *app) error {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML configuration file")
	pf.String("log-level", a.v.GetString("log.level"), "Log level: debug, info, warn, error")
	pf.Int("max-nodes", a.v.GetInt("solver.maxnodes"), "Branch-and-bound node limit")
	pf.Float64("max-bound", a.v.GetFloat64("redcom.maxbound"), "RedCom upper-bound clamp")
	pf.String("store", a.v.GetString("store.path"), "SQLite file for stored runs")

	binds := map[string]string{
		"log.level":       "log-level",
		"solver.maxnodes": "max-nodes",
		"redcom.maxbound": "max-bound",
		"store.path":      "store",
	}
	for key, flag := range binds {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			return fmt.Errorf("error binding flag %s: %w", flag, err)
		}
	}
	return nil
}

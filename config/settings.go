// SPDX-License-Identifier: MIT
// Package: commodel/config
//
// settings.go - viper-backed settings.

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/klamt-lab/commodel/lp"
	"github.com/klamt-lab/commodel/redcom"
)

// EnvPrefix prefixes every environment override, e.g. COMMODEL_SOLVER_MAXNODES.
const EnvPrefix = "COMMODEL"

// Settings is the resolved configuration.
type Settings struct {
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Solver struct {
		Tolerance        float64 `mapstructure:"tolerance"`
		IntegerTolerance float64 `mapstructure:"integertolerance"`
		MaxNodes         int     `mapstructure:"maxnodes"`
	} `mapstructure:"solver"`
	RedCom struct {
		MaxBound          float64 `mapstructure:"maxbound"`
		ActivityTolerance float64 `mapstructure:"activitytolerance"`
	} `mapstructure:"redcom"`
	Store struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"store"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	lpDef := lp.DefaultOptions()
	rcDef := redcom.DefaultOptions()
	v.SetDefault("log.level", "info")
	v.SetDefault("solver.tolerance", lpDef.Tolerance)
	v.SetDefault("solver.integertolerance", lpDef.IntegerTolerance)
	v.SetDefault("solver.maxnodes", lpDef.MaxNodes)
	v.SetDefault("redcom.maxbound", rcDef.MaxBound)
	v.SetDefault("redcom.activitytolerance", rcDef.ActivityTolerance)
	v.SetDefault("store.path", "commodel.db")
}

// New returns a viper instance with defaults and environment overrides.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges the YAML file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}

// Decode resolves v into Settings.
func Decode(v *viper.Viper) (*Settings, error) {
	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if _, err := s.LogLevel(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load is New, ReadFile and Decode in one call.
func Load(path string) (*Settings, error) {
	v := New()
	if err := ReadFile(v, path); err != nil {
		return nil, err
	}
	return Decode(v)
}

// ErrInvalidLevel indicates an unknown log level name.
var ErrInvalidLevel = errors.New("config: invalid log level")

// LogLevel parses Log.Level.
func (s *Settings) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s.Log.Level)
	}
	return l, nil
}

// LPOptions returns the solver options.
func (s *Settings) LPOptions(logger *slog.Logger) lp.Options {
	return lp.Options{
		Tolerance:        s.Solver.Tolerance,
		IntegerTolerance: s.Solver.IntegerTolerance,
		MaxNodes:         s.Solver.MaxNodes,
		Logger:           logger,
	}
}

// RedComOptions returns the RedCom solver options.
func (s *Settings) RedComOptions(logger *slog.Logger) *redcom.Options {
	return &redcom.Options{
		MaxBound:          s.RedCom.MaxBound,
		ActivityTolerance: s.RedCom.ActivityTolerance,
		Logger:            logger,
	}
}

// SPDX-License-Identifier: MIT
// Package: commodel/config
//
// descriptor.go - YAML community descriptors.
//
// Example:
//
//	compartment: exchg
//	exchange_prefix: EX_C_
//	inputs: [S]
//	outputs: [P]
//	growth_rate: 0.5
//	models:
//	  - species: species1
//	    file: toy.json          # relative to the descriptor
//	    objective: C_to_P
//	    exchange_prefix: EX_
//	    inputs: [S_c]
//	    outputs: [P_c]
//	    exchange_ids: {S_c: S, P_c: P}
//	    fraction: 0.5

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/klamt-lab/commodel/community"
	"github.com/klamt-lab/commodel/fluxnet"
)

// ErrNoModelFile indicates a model entry without file.
var ErrNoModelFile = errors.New("config: model entry without file")

// ModelEntry describes one organism of a descriptor.
type ModelEntry struct {
	Species        string            `yaml:"species"`
	File           string            `yaml:"file"`
	Objective      string            `yaml:"objective"`
	ExchangePrefix string            `yaml:"exchange_prefix"`
	Inputs         []string          `yaml:"inputs"`
	Outputs        []string          `yaml:"outputs"`
	ExchangeIDs    map[string]string `yaml:"exchange_ids"`
	Fraction       *float64          `yaml:"fraction,omitempty"`
}

// Descriptor is the YAML form of a community.
type Descriptor struct {
	Compartment    string       `yaml:"compartment"`
	ExchangePrefix string       `yaml:"exchange_prefix"`
	Inputs         []string     `yaml:"inputs"`
	Outputs        []string     `yaml:"outputs"`
	GrowthRate     float64      `yaml:"growth_rate,omitempty"`
	Models         []ModelEntry `yaml:"models"`

	dir string
}

// DecodeDescriptor reads a descriptor; relative model files resolve against dir.
func DecodeDescriptor(r io.Reader, dir string) (*Descriptor, error) {
	d := &Descriptor{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(d); err != nil {
		return nil, fmt.Errorf("config: descriptor: %w", err)
	}
	d.dir = dir
	return d, nil
}

// ReadDescriptor reads the descriptor file at path.
func ReadDescriptor(path string) (*Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return DecodeDescriptor(f, filepath.Dir(path))
}

// Community loads every model file and returns the community descriptor.
func (d *Descriptor) Community() (*community.Community, error) {
	c := &community.Community{
		Compartment:    d.Compartment,
		ExchangePrefix: d.ExchangePrefix,
		Inputs:         d.Inputs,
		Outputs:        d.Outputs,
	}
	for i, e := range d.Models {
		if e.File == "" {
			return nil, fmt.Errorf("%w: index %d (%s)", ErrNoModelFile, i, e.Species)
		}
		path := e.File
		if !filepath.IsAbs(path) && d.dir != "" {
			path = filepath.Join(d.dir, path)
		}
		m, err := fluxnet.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: model %s: %w", e.Species, err)
		}
		c.Models = append(c.Models, &community.SingleModel{
			Model:               m,
			Species:             e.Species,
			ObjectiveReactionID: e.Objective,
			ExchangePrefix:      e.ExchangePrefix,
			Inputs:              e.Inputs,
			Outputs:             e.Outputs,
			ExchangeIDs:         e.ExchangeIDs,
		})
	}
	return c, nil
}

// Fractions returns the fractions of the entries that declare one.
func (d *Descriptor) Fractions() map[string]float64 {
	out := make(map[string]float64)
	for _, e := range d.Models {
		if e.Fraction != nil {
			out[e.Species] = *e.Fraction
		}
	}
	return out
}

// WriteDescriptor encodes d as YAML.
func WriteDescriptor(w io.Writer, d *Descriptor) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("config: descriptor: %w", err)
	}
	return enc.Close()
}

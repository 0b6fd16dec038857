// SPDX-License-Identifier: MIT
// Package: commodel/thermo
//
// io.go - JSON persistence and the semicolon text listing.
//
// JSON layout: {"<reaction id>": {"dG0": x, "uncertainty": y}, ...}, UTF-8,
// 4-space indentation, keys sorted.

package thermo

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

const jsonIndent = "    "

// WriteJSON writes t to w.
func (t Table) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("thermo: WriteJSON: %w", err)
	}
	return nil
}

// ReadJSON decodes a table from r.
func ReadJSON(r io.Reader) (Table, error) {
	var t Table
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("thermo: ReadJSON: %w", err)
	}
	if t == nil {
		t = Table{}
	}
	return t, nil
}

// ReadFile reads a JSON table from path.
func ReadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("thermo: %w", err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteFile writes t as JSON to path.
func (t Table) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("thermo: %w", err)
	}
	if err := t.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTextList writes "Reaction ID;dG0" followed by one "<id>;<dG0>" line
// per reaction in lexical order.
func (t Table) WriteTextList(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("Reaction ID;dG0\n"); err != nil {
		return err
	}
	for _, id := range t.IDs() {
		line := id + ";" + strconv.FormatFloat(t[id].DG0, 'f', -1, 64) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SPDX-License-Identifier: MIT
// Package: commodel/thermo
//
// notes.go - parser for reaction-notes dumps.
//
// One reaction per line: the id (optionally "R_"-prefixed) followed by four
// spaces and the notes, which contain
//
//	...deltaGR0;#;num;#;<dG0>;...deltaGR0_Uncertainty;#;num;#;<uncertainty>;...
//
// Lines whose dG0 is NaN are skipped. Blank lines are ignored.

package thermo

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	idSeparator       = "    "
	reactionPrefix    = "R_"
	dG0Marker         = "deltaGR0;#;num;#;"
	uncertaintyMarker = "deltaGR0_Uncertainty;#;num;#;"
)

// ParseReactionNotes reads a notes dump and returns its dG0 table, expanded
// to "<id>_<species>" keys when species are given.
func ParseReactionNotes(r io.Reader, species ...string) (Table, error) {
	seen := make(map[string]struct{})
	t := make(Table)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		head, _, _ := strings.Cut(text, idSeparator)
		id := strings.TrimPrefix(head, reactionPrefix)
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("line %d: %q: %w", line, id, ErrDuplicateReaction)
		}
		seen[id] = struct{}{}

		raw, ok := field(text, dG0Marker)
		if !ok {
			return nil, fmt.Errorf("line %d: %q: no dG0: %w", line, id, ErrMalformedLine)
		}
		if raw == "NaN" {
			continue
		}
		dg0, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: dG0: %w", line, id, err)
		}
		raw, ok = field(text, uncertaintyMarker)
		if !ok {
			return nil, fmt.Errorf("line %d: %q: no uncertainty: %w", line, id, ErrMalformedLine)
		}
		unc, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: uncertainty: %w", line, id, err)
		}
		t[id] = Entry{DG0: dg0, Uncertainty: unc}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("thermo: ParseReactionNotes: %w", err)
	}
	return t.Expand(species...), nil
}

// field returns the text between marker and the next ';'.
func field(text, marker string) (string, bool) {
	_, rest, ok := strings.Cut(text, marker)
	if !ok {
		return "", false
	}
	v, _, _ := strings.Cut(rest, ";")
	return v, true
}

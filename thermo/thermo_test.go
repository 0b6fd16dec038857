// SPDX-License-Identifier: MIT
// Package: commodel/thermo
//
// thermo_test.go - notes parsing, persistence and model bookkeeping tests.

package thermo_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klamt-lab/commodel/builder"
	"github.com/klamt-lab/commodel/community"
	"github.com/klamt-lab/commodel/thermo"
)

const notes = "R_PGI    GENE_ASSOCIATION;deltaGR0;#;num;#;2.5;x;deltaGR0_Uncertainty;#;num;#;0.8;end\n" +
	"\n" +
	"PFK    deltaGR0;#;num;#;-14.1;deltaGR0_Uncertainty;#;num;#;1.2;\n" +
	"R_FBA    deltaGR0;#;num;#;NaN;deltaGR0_Uncertainty;#;num;#;NaN;\n"

func TestParseReactionNotes(t *testing.T) {
	tab, err := thermo.ParseReactionNotes(strings.NewReader(notes))
	require.NoError(t, err)
	require.Equal(t, thermo.Table{
		"PGI": {DG0: 2.5, Uncertainty: 0.8},
		"PFK": {DG0: -14.1, Uncertainty: 1.2},
	}, tab)

	tab, err = thermo.ParseReactionNotes(strings.NewReader(notes), "ecoli1", "ecoli2")
	require.NoError(t, err)
	require.Equal(t, []string{"PFK_ecoli1", "PFK_ecoli2", "PGI_ecoli1", "PGI_ecoli2"}, tab.IDs())
}

func TestParseReactionNotes_Errors(t *testing.T) {
	_, err := thermo.ParseReactionNotes(strings.NewReader(notes + "R_PGI    deltaGR0;#;num;#;1;deltaGR0_Uncertainty;#;num;#;1;\n"))
	require.ErrorIs(t, err, thermo.ErrDuplicateReaction)

	_, err = thermo.ParseReactionNotes(strings.NewReader("R_X    nothing here\n"))
	require.ErrorIs(t, err, thermo.ErrMalformedLine)

	_, err = thermo.ParseReactionNotes(strings.NewReader("R_X    deltaGR0;#;num;#;abc;\n"))
	require.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	tab := thermo.Table{"S_to_A_species1": {DG0: 4}, "A_to_B_species1": {DG0: -5, Uncertainty: 0.5}}
	var buf bytes.Buffer
	require.NoError(t, tab.WriteJSON(&buf))
	require.Contains(t, buf.String(), "\n    \"A_to_B_species1\": {\n        \"dG0\": -5,")

	back, err := thermo.ReadJSON(&buf)
	require.NoError(t, err)
	require.Equal(t, tab, back)

	path := filepath.Join(t.TempDir(), "dG0.json")
	require.NoError(t, tab.WriteFile(path))
	back, err = thermo.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, tab, back)

	_, err = thermo.ReadJSON(strings.NewReader("[1]"))
	require.Error(t, err)
}

func TestWriteTextList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, thermo.Table{"B": {DG0: -5}, "A": {DG0: 4.25}}.WriteTextList(&buf))
	require.Equal(t, "Reaction ID;dG0\nA;4.25\nB;-5\n", buf.String())
}

func TestExchangeDefaultsAndCoverage(t *testing.T) {
	c, err := builder.ToyCommunity(10, "species1", "species2")
	require.NoError(t, err)
	m, _, err := community.BuildRedCom(c)
	require.NoError(t, err)

	tab := thermo.Table{"S_to_A": {DG0: 4}, "A_to_B": {DG0: -5}, "B_to_C": {DG0: -5}, "C_to_P": {DG0: 4}}.
		Expand("species1", "species2")
	tab["stale"] = thermo.Entry{}

	require.Equal(t, 2, tab.AddExchangeDefaults(m, "P"))
	require.Contains(t, tab, "EXCHG_species1_S_c_to_S")
	require.NotContains(t, tab, "EXCHG_species1_P_c_to_P")

	cov := tab.CoverageOf(m)
	require.Equal(t, 8, cov.Internal)
	require.Equal(t, 8, cov.Covered)
	require.Equal(t, 2, cov.Exchanges)
	require.Empty(t, cov.Uncovered)
	require.Equal(t, []string{"stale"}, cov.Unknown)
	require.Zero(t, cov.MissingFraction())

	delete(tab, "A_to_B_species2")
	cov = tab.CoverageOf(m)
	require.Equal(t, []string{"A_to_B_species2"}, cov.Uncovered)
	require.InDelta(t, 0.125, cov.MissingFraction(), 1e-12)
}

package composition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tacerrors "github.com/tacular/tacular/errors"
)

func TestParseFormulas(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		formula string
		want    Composition
	}{
		{name: "water", formula: "H2O", want: Composition{"H": 2, "O": 1}},
		{name: "glycine residue", formula: "C2H3NO", want: Composition{"C": 2, "H": 3, "N": 1, "O": 1}},
		{name: "implicit counts", formula: "CHNOS", want: Composition{"C": 1, "H": 1, "N": 1, "O": 1, "S": 1}},
		{name: "two letter symbol", formula: "NaCl", want: Composition{"Na": 1, "Cl": 1}},
		{name: "isotope label delta", formula: "[13C]6C-6", want: Composition{"13C": 6, "C": -6}},
		{name: "deuterium bracket", formula: "[2H]3", want: Composition{"2H": 3}},
		{name: "negative term", formula: "H-1N-1O", want: Composition{"H": -1, "N": -1, "O": 1}},
		{name: "repeated symbol accumulates", formula: "CH3CH3", want: Composition{"C": 2, "H": 6}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tc.formula)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		formula string
	}{
		{name: "empty", formula: ""},
		{name: "lowercase start", formula: "h2O"},
		{name: "unknown symbol", formula: "Zz2"},
		{name: "unterminated bracket", formula: "[13C"},
		{name: "empty bracket", formula: "[]2"},
		{name: "dangling sign", formula: "C-"},
		{name: "count without atom", formula: "2H"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tc.formula)
			require.Error(t, err)
			_, ok := tacerrors.AsLookup(err)
			assert.True(t, ok, "expected typed lookup error, got %v", err)
		})
	}
}

func TestMassMonoisotopicAndAverage(t *testing.T) {
	t.Parallel()

	water := MustParse("H2O")

	mono, err := water.Mass(true)
	require.NoError(t, err)
	assert.InDelta(t, 18.010565, mono, 1e-5)

	avg, err := water.Mass(false)
	require.NoError(t, err)
	assert.InDelta(t, 18.015, avg, 1e-3)
	assert.NotEqual(t, mono, avg)
}

func TestMassWithIsotopeTermsIgnoresFlag(t *testing.T) {
	t.Parallel()

	label := MustParse("[13C]6C-6")

	mono, err := label.Mass(true)
	require.NoError(t, err)
	assert.InDelta(t, 6.020129, mono, 1e-5)

	avg, err := label.Mass(false)
	require.NoError(t, err)
	// The 13C terms are fixed; only the plain carbon removal shifts.
	assert.InDelta(t, 6*13.00335483507-6*12.011, avg, 1e-6)
}

func TestTermsHillOrderAndFormat(t *testing.T) {
	t.Parallel()

	comp := MustParse("OH3[13C]2NC")

	terms, err := comp.Terms()
	require.NoError(t, err)

	got := make([]string, 0, len(terms))
	for _, term := range terms {
		got = append(got, term.Isotope.String())
	}
	assert.Equal(t, []string{"C", "13C", "H", "N", "O"}, got)

	formatted, err := comp.Format()
	require.NoError(t, err)
	assert.Equal(t, "C[13C]2H3NO", formatted)
	assert.Equal(t, formatted, comp.String())
}

func TestZeroCountsDropped(t *testing.T) {
	t.Parallel()

	comp := Composition{"C": 0, "H": 2, "O": 1}
	terms, err := comp.Terms()
	require.NoError(t, err)
	assert.Len(t, terms, 2)
	assert.False(t, comp.IsZero())
	assert.True(t, Composition{"C": 0}.IsZero())
	assert.True(t, Composition{}.IsZero())
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	orig := Composition{"C": 2, "H": 4}
	clone := orig.Clone()
	clone["C"] = 9

	assert.Equal(t, 2, orig["C"])
	assert.Nil(t, Composition(nil).Clone())
}

func TestStringOnUnknownSymbolIsEmpty(t *testing.T) {
	t.Parallel()

	bad := Composition{"Zz": 1}
	assert.Equal(t, "", bad.String())
	_, err := bad.Format()
	assert.Error(t, err)
}

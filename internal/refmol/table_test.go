package refmol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tacerrors "github.com/tacular/tacular/errors"
)

func TestByNameCaseInsensitive(t *testing.T) {
	t.Parallel()

	tmt, err := Default().ByName("TMT126")
	require.NoError(t, err)
	assert.Equal(t, "TMT", tmt.LabelType)
	assert.Equal(t, "reporter", tmt.MoleculeType)

	folded, err := Default().ByName("tmt126")
	require.NoError(t, err)
	assert.Same(t, tmt, folded)

	_, err = Default().ByName("TMT999")
	require.Error(t, err)
	assert.True(t, tacerrors.IsNotFound(err))
}

func TestReporterCationMasses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		mono float64
	}{
		{name: "TMT126", mono: 126.127726},
		{name: "TMT127N", mono: 127.124761},
		{name: "TMT127C", mono: 127.131081},
		{name: "TMT131C", mono: 131.144500},
		{name: "TMT135N", mono: 135.151600},
		{name: "iTRAQ113", mono: 113.107325},
		{name: "iTRAQ114", mono: 114.110680},
		{name: "iTRAQ117", mono: 117.114433},
		{name: "iTRAQ121", mono: 121.121524},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := Default().ByName(tc.name)
			require.NoError(t, err)
			assert.Equal(t, 1, m.Charge)
			assert.True(t, m.IsCharged())
			assert.InDelta(t, tc.mono, m.Mass(true), 1e-4)
		})
	}
}

func TestNucleobasesAreNeutral(t *testing.T) {
	t.Parallel()

	adenine, err := Default().ByName("adenine")
	require.NoError(t, err)
	assert.False(t, adenine.IsCharged())
	assert.InDelta(t, 135.054495, adenine.Mass(true), 1e-4)

	uracil, err := Default().ByName("uracil")
	require.NoError(t, err)
	assert.InDelta(t, 112.027277, uracil.Mass(true), 1e-4)
}

func TestByLabelType(t *testing.T) {
	t.Parallel()

	tmt := Default().ByLabelType("tmt")
	assert.Len(t, tmt, 18)
	for _, m := range tmt {
		assert.Equal(t, "TMT", m.LabelType)
	}

	itraq := Default().ByLabelType("iTRAQ")
	assert.Len(t, itraq, 8)

	assert.Empty(t, Default().ByLabelType("SILAC"))
}

func TestByMoleculeType(t *testing.T) {
	t.Parallel()

	reporters := Default().ByMoleculeType("reporter")
	assert.Len(t, reporters, 26)

	bases := Default().ByMoleculeType("Nucleobase")
	assert.Len(t, bases, 5)
	for _, m := range bases {
		assert.Equal(t, 0, m.Charge)
	}

	assert.Empty(t, Default().ByMoleculeType("solvent"))
}

func TestNearIsobaricChannelsDiffer(t *testing.T) {
	t.Parallel()

	n, err := Default().ByName("TMT127N")
	require.NoError(t, err)
	c, err := Default().ByName("TMT127C")
	require.NoError(t, err)
	diff := c.Mass(true) - n.Mass(true)
	assert.Greater(t, diff, 0.005)
	assert.Less(t, diff, 0.008)
}

func TestTypeEnumerations(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"itraq", "tmt"}, Default().LabelTypes())
	assert.Equal(t, []string{"nucleobase", "reporter"}, Default().MoleculeTypes())
}

func TestListAndContains(t *testing.T) {
	t.Parallel()

	list := Default().List()
	require.Equal(t, Default().Len(), len(list))
	for _, m := range list {
		assert.True(t, Default().Contains(m.Name))
		assert.NotEmpty(t, m.Formula)
	}
}

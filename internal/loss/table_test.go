package loss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tacerrors "github.com/tacular/tacular/errors"
)

func TestByFormulaCaseInsensitive(t *testing.T) {
	t.Parallel()

	water, err := Default().ByFormula("H2O")
	require.NoError(t, err)
	assert.Equal(t, "water", water.Name)

	folded, err := Default().ByFormula("h2o")
	require.NoError(t, err)
	assert.Same(t, water, folded)
}

func TestGetTriesFormulaThenName(t *testing.T) {
	t.Parallel()

	ammonia, err := Default().Get("NH3")
	require.NoError(t, err)
	byName, err := Default().Get("Ammonia")
	require.NoError(t, err)
	assert.Same(t, ammonia, byName)

	_, err = Default().Get("XYZ")
	require.Error(t, err)
	assert.True(t, tacerrors.IsNotFound(err))

	_, ok := Default().Find("XYZ")
	assert.False(t, ok)
}

func TestKnownMasses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		formula string
		mono    float64
	}{
		{formula: "H2O", mono: 18.010565},
		{formula: "NH3", mono: 17.026549},
		{formula: "CO", mono: 27.994915},
		{formula: "CO2", mono: 43.989829},
		{formula: "HPO3", mono: 79.966331},
		{formula: "H3PO4", mono: 97.976896},
		{formula: "CH4OS", mono: 63.998286},
		{formula: "H2S", mono: 33.987721},
	}

	for _, tc := range cases {
		t.Run(tc.formula, func(t *testing.T) {
			t.Parallel()
			d, err := Default().ByFormula(tc.formula)
			require.NoError(t, err)
			assert.InDelta(t, tc.mono, d.Mass(true), 1e-5)
		})
	}
}

func TestAverageMassDiffers(t *testing.T) {
	t.Parallel()

	water, err := Default().ByFormula("H2O")
	require.NoError(t, err)
	assert.NotEqual(t, water.Mass(true), water.Mass(false))
	assert.InDelta(t, 18.015, water.Mass(false), 1e-2)
}

func TestLossSites(t *testing.T) {
	t.Parallel()

	water, err := Default().ByFormula("H2O")
	require.NoError(t, err)
	assert.True(t, water.ResidueSpecific())
	assert.Equal(t, 2, water.LossSites("SAGE"))
	assert.Equal(t, 0, water.LossSites("GGKR"))

	co, err := Default().ByFormula("CO")
	require.NoError(t, err)
	assert.False(t, co.ResidueSpecific())
	assert.Equal(t, 4, co.LossSites("SAGE"))
}

func TestListCoversAllEntries(t *testing.T) {
	t.Parallel()

	list := Default().List()
	require.Equal(t, Default().Len(), len(list))
	for _, d := range list {
		assert.NotEmpty(t, d.Formula)
		assert.NotEmpty(t, d.Name)
		assert.True(t, Default().Contains(d.Formula))
		assert.True(t, Default().Contains(d.Name))
	}
}

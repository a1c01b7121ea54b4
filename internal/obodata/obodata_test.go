package obodata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tacerrors "github.com/tacular/tacular/errors"
	"github.com/tacular/tacular/internal/ontology"
)

func TestLoadAllBundledVocabularies(t *testing.T) {
	t.Parallel()

	cases := []struct {
		cv      ontology.CV
		version string
	}{
		{cv: ontology.CVUnimod, version: "2024-08-12"},
		{cv: ontology.CVPSIMod, version: "1.031.6"},
		{cv: ontology.CVRESID, version: "75.00"},
		{cv: ontology.CVXLMod, version: "1.1.12"},
		{cv: ontology.CVGNO, version: "2024-05-21"},
	}

	for _, tc := range cases {
		t.Run(string(tc.cv), func(t *testing.T) {
			t.Parallel()
			ds, err := Load(tc.cv)
			require.NoError(t, err)
			assert.Equal(t, tc.cv, ds.CV)
			assert.Equal(t, tc.version, ds.Version)
			assert.NotEmpty(t, ds.Entries)
			for _, e := range ds.Entries {
				assert.Equal(t, tc.cv, e.CV)
				assert.NotEmpty(t, e.ID)
				assert.NotEmpty(t, e.Name)
			}
		})
	}
}

func TestLoadUnknownVocabulary(t *testing.T) {
	t.Parallel()

	_, err := Load(ontology.CVObserved)
	require.Error(t, err)
	assert.True(t, tacerrors.IsNotFound(err))
}

func TestUnimodSnapshotContents(t *testing.T) {
	t.Parallel()

	l, err := Lookup(ontology.CVUnimod)
	require.NoError(t, err)

	phospho, err := l.ByID("21")
	require.NoError(t, err)
	assert.Equal(t, "Phospho", phospho.Name)
	require.NotNil(t, phospho.MonoisotopicMass)
	assert.InDelta(t, 79.966331, *phospho.MonoisotopicMass, 1e-6)
	require.NotNil(t, phospho.Composition)
	mono, err := phospho.Composition.Mass(true)
	require.NoError(t, err)
	assert.InDelta(t, *phospho.MonoisotopicMass, mono, 1e-4)

	label, err := l.ByName("Label:13C(6)")
	require.NoError(t, err)
	assert.Equal(t, "188", label.ID)
	assert.InDelta(t, 6.020129, *label.MonoisotopicMass, 1e-6)
}

func TestGNOMasslessTerms(t *testing.T) {
	t.Parallel()

	ds, err := Load(ontology.CVGNO)
	require.NoError(t, err)

	massless := 0
	for _, e := range ds.Entries {
		if e.MonoisotopicMass == nil {
			massless++
		}
	}
	assert.Equal(t, 2, massless)
}

func TestEmbeddedCompositionsMatchDeclaredMasses(t *testing.T) {
	t.Parallel()

	for _, cv := range []ontology.CV{ontology.CVUnimod, ontology.CVRESID, ontology.CVXLMod, ontology.CVGNO} {
		ds, err := Load(cv)
		require.NoError(t, err)
		for _, e := range ds.Entries {
			if e.Composition == nil || e.MonoisotopicMass == nil {
				continue
			}
			mono, err := e.Composition.Mass(true)
			require.NoError(t, err, e.Accession())
			assert.InDelta(t, *e.MonoisotopicMass, mono, 5e-4, e.Accession())
		}
	}
}

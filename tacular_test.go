package tacular_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacular/tacular"
	tacerrors "github.com/tacular/tacular/errors"
)

func TestAccessorsReturnSingletons(t *testing.T) {
	t.Parallel()

	assert.Same(t, tacular.Elements(), tacular.Elements())
	assert.Same(t, tacular.AminoAcids(), tacular.AminoAcids())
	assert.Same(t, tacular.Proteases(), tacular.Proteases())
	assert.Same(t, tacular.FragmentIons(), tacular.FragmentIons())
	assert.Same(t, tacular.Monosaccharides(), tacular.Monosaccharides())
	assert.Same(t, tacular.NeutralDeltas(), tacular.NeutralDeltas())
	assert.Same(t, tacular.RefMolecules(), tacular.RefMolecules())
	assert.Same(t, tacular.Unimod(), tacular.Unimod())
	assert.Same(t, tacular.GNO(), tacular.GNO())
}

func TestBundledOntologies(t *testing.T) {
	t.Parallel()

	cases := []struct {
		lookup *tacular.Ontology
		cv     tacular.CV
		key    string
		name   string
	}{
		{lookup: tacular.Unimod(), cv: tacular.CVUnimod, key: "UNIMOD:1", name: "Acetyl"},
		{lookup: tacular.PSIMod(), cv: tacular.CVPSIMod, key: "MOD:46", name: "O-phospho-L-serine"},
		{lookup: tacular.RESID(), cv: tacular.CVRESID, key: "AA0002", name: "L-arginine"},
		{lookup: tacular.XLMod(), cv: tacular.CVXLMod, key: "XLMOD:02001", name: "DSSO"},
		{lookup: tacular.GNO(), cv: tacular.CVGNO, key: "G00008BG", name: "Hex(1)"},
	}

	for _, tc := range cases {
		t.Run(string(tc.cv), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.cv, tc.lookup.CV())
			assert.NotEmpty(t, tc.lookup.Version())
			e, err := tc.lookup.ByID(tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.name, e.Name)
		})
	}
}

func TestCrossVocabularyPhospho(t *testing.T) {
	t.Parallel()

	unimod, err := tacular.Unimod().ByName("Phospho")
	require.NoError(t, err)
	psimod, err := tacular.PSIMod().ByID("00696")
	require.NoError(t, err)
	resid, err := tacular.RESID().ByID("AA0037")
	require.NoError(t, err)

	uMass, err := unimod.Mass(true)
	require.NoError(t, err)
	mMass, err := psimod.Mass(true)
	require.NoError(t, err)
	assert.InDelta(t, uMass, mMass, 1e-6)

	// RESID records full residue masses, not deltas.
	rMass, err := resid.Mass(true)
	require.NoError(t, err)
	assert.InDelta(t, 166.998359, rMass, 1e-5)
}

func TestMassSearchAcrossBundledData(t *testing.T) {
	t.Parallel()

	matches := tacular.Unimod().MassWithin(79.9663, tacular.NewMassQuery())
	require.NotEmpty(t, matches)
	assert.Equal(t, "Phospho", matches[0].Name)

	_, err := tacular.Unimod().ResolveMass(79.96, tacular.NewMassQuery().WithTolerance(0.02))
	require.Error(t, err)
	assert.True(t, tacerrors.IsCode(err, tacerrors.CodeAmbiguousMass))
}

func TestLoadOntology(t *testing.T) {
	t.Parallel()

	doc := `
name: in-house
version: "2"
modifications:
  - id: "1"
    name: Heavy-Tag
    composition:
      13C: 4
      C: -4
  - id: "2"
    name: Stated
    mono_mass: 100.5
`
	custom, err := tacular.LoadOntology(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, tacular.CVCustom, custom.CV())
	assert.Equal(t, "2", custom.Version())
	assert.Equal(t, 2, custom.Len())

	heavy, err := custom.ByName("heavy-tag")
	require.NoError(t, err)
	mono, err := heavy.Mass(true)
	require.NoError(t, err)
	assert.InDelta(t, 4.013419, mono, 1e-5)

	stated, err := custom.ByID("2")
	require.NoError(t, err)
	mono, err = stated.Mass(true)
	require.NoError(t, err)
	assert.Equal(t, 100.5, mono)
	_, err = stated.Mass(false)
	require.Error(t, err)
	assert.True(t, tacerrors.IsCode(err, tacerrors.CodeNoMass))
}

func TestLoadOntologyRejectsDuplicates(t *testing.T) {
	t.Parallel()

	doc := `
modifications:
  - id: "1"
    name: One
  - id: "1"
    name: Two
`
	_, err := tacular.LoadOntology(strings.NewReader(doc))
	require.Error(t, err)
	assert.True(t, tacerrors.IsCode(err, tacerrors.CodeDuplicateID))
}

func TestLoadOntologyRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := tacular.LoadOntology(strings.NewReader("{not yaml"))
	require.Error(t, err)
	assert.True(t, tacerrors.IsCode(err, tacerrors.CodeDecode))

	_, err = tacular.LoadOntology(strings.NewReader("modifications:\n  - name: no-id\n"))
	require.Error(t, err)
	assert.True(t, tacerrors.IsCode(err, tacerrors.CodeBadIdentifier))
}

package tacular

import (
	"github.com/tacular/tacular/internal/fragment"
	"github.com/tacular/tacular/internal/glycan"
	"github.com/tacular/tacular/internal/isotope"
	"github.com/tacular/tacular/internal/loss"
	"github.com/tacular/tacular/internal/protease"
	"github.com/tacular/tacular/internal/refmol"
	"github.com/tacular/tacular/internal/residue"
)

// Record types, aliased so callers need only this package.
type (
	// Isotope is a periodic-table entry: an element or one of its
	// isotopes.
	Isotope = isotope.Isotope
	// AminoAcid is a proteinogenic or ambiguous residue.
	AminoAcid = residue.AminoAcid
	// Protease is an enzyme with its cleavage-site pattern.
	Protease = protease.Protease
	// FragmentIon is a peptide fragment ion series.
	FragmentIon = fragment.Ion
	// FragmentSeries names a fragment ion series ("b", "y", ...).
	FragmentSeries = fragment.Series
	// Monosaccharide is a glycan building block.
	Monosaccharide = glycan.Monosaccharide
	// NeutralDelta is a neutral loss or gain.
	NeutralDelta = loss.Delta
	// RefMolecule is an annotation reference species.
	RefMolecule = refmol.Molecule
)

// Elements returns the periodic table.
func Elements() *isotope.Table {
	return isotope.Default()
}

// AminoAcids returns the residue table.
func AminoAcids() *residue.Table {
	return residue.Default()
}

// Proteases returns the enzyme table.
func Proteases() *protease.Table {
	return protease.Default()
}

// FragmentIons returns the fragment ion series table.
func FragmentIons() *fragment.Table {
	return fragment.Default()
}

// Monosaccharides returns the glycan building-block table.
func Monosaccharides() *glycan.Table {
	return glycan.Default()
}

// NeutralDeltas returns the neutral loss table.
func NeutralDeltas() *loss.Table {
	return loss.Default()
}

// RefMolecules returns the reference molecule table.
func RefMolecules() *refmol.Table {
	return refmol.Default()
}

// Package refmol defines the reference molecules used in spectrum
// annotation, such as isobaric label reporter ions and nucleobases.
package refmol

import (
	"fmt"

	"github.com/tacular/tacular/internal/composition"
)

// electronMass is the CODATA electron rest mass in unified atomic mass
// units, subtracted once per positive charge.
const electronMass = 0.00054857990946

// Molecule is a named reference species. Charged molecules are cations
// and their masses account for the missing electrons.
type Molecule struct {
	// Name is the canonical annotation name, e.g. "TMT127N".
	Name string
	// LabelType groups labelling reagents, e.g. "TMT" or "iTRAQ";
	// empty for unlabelled species.
	LabelType string
	// MoleculeType classifies the species, e.g. "reporter" or
	// "nucleobase".
	MoleculeType string
	// Formula is the elemental formula, isotopes in brackets.
	Formula string
	// Charge is the integer charge state; 0 for neutral species.
	Charge int
	// Composition is the parsed elemental formula.
	Composition composition.Composition

	mono float64
	avg  float64
}

// Mass returns the species mass, monoisotopic or average. For charged
// species this is the ion mass, not the neutral mass.
func (m *Molecule) Mass(monoisotopic bool) float64 {
	if monoisotopic {
		return m.mono
	}
	return m.avg
}

// IsCharged reports whether the species carries a net charge.
func (m *Molecule) IsCharged() bool {
	return m.Charge != 0
}

func (m *Molecule) String() string {
	if m.Charge > 0 {
		return fmt.Sprintf("%s (%s, %+d)", m.Name, m.Formula, m.Charge)
	}
	return fmt.Sprintf("%s (%s)", m.Name, m.Formula)
}

// Package glycan defines the monosaccharide building blocks used in
// glycan compositions, keyed by the ProForma short names.
package glycan

import (
	"fmt"
	"math"

	tacerrors "github.com/tacular/tacular/errors"
	"github.com/tacular/tacular/internal/composition"
)

// Monosaccharide is a single residue-form sugar unit. Mass values are
// derived from Composition when the table is built.
type Monosaccharide struct {
	// ID is a small stable numeric identifier.
	ID int
	// Name is the ProForma short name, e.g. "HexNAc".
	Name string
	// Aliases lists alternative names resolving to the same unit,
	// e.g. "GlcNAc" for "HexNAc".
	Aliases []string
	// Composition is the residue (dehydrated) elemental formula.
	Composition composition.Composition

	mono float64
	avg  float64
}

// HasMass reports whether the unit carries a defined mass.
func (m *Monosaccharide) HasMass() bool {
	return !math.IsNaN(m.mono)
}

// Mass returns the residue mass, monoisotopic or average.
func (m *Monosaccharide) Mass(monoisotopic bool) (float64, error) {
	if !m.HasMass() {
		return 0, tacerrors.NewLookupf(tacerrors.CodeNoMass, "monosaccharide", m.Name, "no mass defined")
	}
	if monoisotopic {
		return m.mono, nil
	}
	return m.avg, nil
}

// Formula renders the composition in Hill order.
func (m *Monosaccharide) Formula() (string, error) {
	return m.Composition.Format()
}

func (m *Monosaccharide) String() string {
	return fmt.Sprintf("%s (%d)", m.Name, m.ID)
}

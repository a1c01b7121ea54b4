// Package loss defines the common neutral losses and gains observed on
// peptide fragment ions, keyed by elemental formula.
package loss

import (
	"fmt"
	"strings"

	"github.com/tacular/tacular/internal/composition"
)

// Delta is a neutral mass change such as water or ammonia loss. Mass
// values are derived from Composition when the table is built.
type Delta struct {
	// Formula is the canonical elemental formula, e.g. "H2O".
	Formula string
	// Name is a short human name, e.g. "water".
	Name string
	// Description notes the typical origin of the change.
	Description string
	// Residues lists the one-letter codes of residues that commonly
	// produce this change; empty when it is not residue specific.
	Residues string
	// Composition is the elemental formula of the change.
	Composition composition.Composition

	mono float64
	avg  float64
}

// Mass returns the delta mass, monoisotopic or average.
func (d *Delta) Mass(monoisotopic bool) float64 {
	if monoisotopic {
		return d.mono
	}
	return d.avg
}

// ResidueSpecific reports whether the change is tied to particular
// residues.
func (d *Delta) ResidueSpecific() bool {
	return d.Residues != ""
}

// LossSites counts the positions in sequence occupied by residues that
// can produce this change. A non residue specific delta matches every
// position.
func (d *Delta) LossSites(sequence string) int {
	if !d.ResidueSpecific() {
		return len(sequence)
	}
	n := 0
	for _, r := range sequence {
		if strings.ContainsRune(d.Residues, r) {
			n++
		}
	}
	return n
}

func (d *Delta) String() string {
	return fmt.Sprintf("%s (%s)", d.Formula, d.Name)
}

// Package residue provides the amino-acid reference table: the twenty
// standard residues, selenocysteine and pyrrolysine, and the ambiguity
// codes B, J, X, Z. Masses are residue masses (peptide-bond form).
package residue

import (
	"math"

	tacerrors "github.com/tacular/tacular/errors"
	"github.com/tacular/tacular/internal/composition"
)

// AminoAcid is a single immutable amino-acid record. Its one-letter code is
// the record identifier. Ambiguity codes without a defined composition carry
// no mass; J (Leu/Ile) is ambiguous but shares their exact mass.
type AminoAcid struct {
	Code        string
	ThreeLetter string
	Name        string
	Composition composition.Composition
	Ambiguous   bool

	mono float64
	avg  float64
}

// HasMass reports whether the residue has a defined mass.
func (a *AminoAcid) HasMass() bool {
	return !math.IsNaN(a.mono)
}

// Mass returns the monoisotopic or average residue mass.
func (a *AminoAcid) Mass(monoisotopic bool) (float64, error) {
	if !a.HasMass() {
		return 0, tacerrors.NewLookupf(tacerrors.CodeNoMass, tableName, a.Code, "%s has no defined mass", a.Name)
	}
	if monoisotopic {
		return a.mono, nil
	}
	return a.avg, nil
}

// Formula renders the residue composition in Hill order, or "" when the
// residue has none.
func (a *AminoAcid) Formula() string {
	if a.Composition == nil {
		return ""
	}
	return a.Composition.String()
}

// IsMassAmbiguous reports whether the code is ambiguous with no shared mass
// across its candidates (B, X, Z). J is ambiguous but mass-unambiguous.
func (a *AminoAcid) IsMassAmbiguous() bool {
	return a.Ambiguous && !a.HasMass()
}

func (a *AminoAcid) String() string {
	return a.Code + " (" + a.Name + ")"
}

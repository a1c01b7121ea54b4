// Package ontology implements lookup over controlled vocabularies of
// mass modifications: Unimod, PSI-MOD, RESID, XLMOD, GNO, and
// user-supplied vocabularies.
package ontology

import (
	"fmt"

	tacerrors "github.com/tacular/tacular/errors"
	"github.com/tacular/tacular/internal/composition"
)

// CV identifies a controlled vocabulary.
type CV string

const (
	CVUnimod   CV = "UNIMOD"
	CVPSIMod   CV = "MOD"
	CVRESID    CV = "RESID"
	CVGNO      CV = "GNO"
	CVXLMod    CV = "XLMOD"
	CVCustom   CV = "CUSTOM"
	CVObserved CV = "OBSERVED"
)

// Entry is a single vocabulary term. Mass fields are pointers because
// some terms, GNO subsumption terms in particular, define no mass.
type Entry struct {
	// ID is the canonical accession without the CV prefix, exactly
	// as the source writes it, e.g. "21", "00046", "AA0038",
	// "G00008BG".
	ID string
	// Name is the term's preferred label.
	Name string
	// Formula is the elemental formula as the source writes it;
	// empty when the source defines none.
	Formula string
	// MonoisotopicMass is the term's monoisotopic delta or mass.
	MonoisotopicMass *float64
	// AverageMass is the term's average delta or mass.
	AverageMass *float64
	// Composition is the parsed formula; nil when Formula is empty
	// or unparsable in the source's own notation.
	Composition composition.Composition
	// CV names the vocabulary the term belongs to.
	CV CV
}

// Accession returns the prefixed form, e.g. "UNIMOD:21".
func (e *Entry) Accession() string {
	return fmt.Sprintf("%s:%s", e.CV, e.ID)
}

// HasMass reports whether the requested mass kind is defined.
func (e *Entry) HasMass(monoisotopic bool) bool {
	if monoisotopic {
		return e.MonoisotopicMass != nil
	}
	return e.AverageMass != nil
}

// Mass returns the term's mass, monoisotopic or average.
func (e *Entry) Mass(monoisotopic bool) (float64, error) {
	if monoisotopic {
		if e.MonoisotopicMass == nil {
			return 0, tacerrors.NewLookupf(tacerrors.CodeNoMass, string(e.CV), e.ID, "no monoisotopic mass")
		}
		return *e.MonoisotopicMass, nil
	}
	if e.AverageMass == nil {
		return 0, tacerrors.NewLookupf(tacerrors.CodeNoMass, string(e.CV), e.ID, "no average mass")
	}
	return *e.AverageMass, nil
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s", e.Accession(), e.Name)
}

package tacular

import (
	"fmt"
	"sync"

	"github.com/tacular/tacular/internal/obodata"
	"github.com/tacular/tacular/internal/ontology"
)

// Modification vocabulary types, aliased from the internal package.
type (
	// Modification is one controlled-vocabulary term.
	Modification = ontology.Entry
	// Ontology indexes one vocabulary's terms.
	Ontology = ontology.Lookup
	// CV identifies a controlled vocabulary.
	CV = ontology.CV
	// MassQuery parameterises mass searches; see NewMassQuery.
	MassQuery = ontology.MassQuery
	// Pick narrows Ontology.Random.
	Pick = ontology.Pick
)

const (
	CVUnimod   = ontology.CVUnimod
	CVPSIMod   = ontology.CVPSIMod
	CVRESID    = ontology.CVRESID
	CVGNO      = ontology.CVGNO
	CVXLMod    = ontology.CVXLMod
	CVCustom   = ontology.CVCustom
	CVObserved = ontology.CVObserved
)

// NewMassQuery returns the default mass query: monoisotopic, 0.01 Da
// tolerance.
func NewMassQuery() MassQuery {
	return ontology.NewMassQuery()
}

// bundled decodes an embedded vocabulary snapshot once. The snapshots
// ship inside the binary, so a decode failure is a build defect, not a
// runtime condition.
func bundled(cv ontology.CV) func() *Ontology {
	return sync.OnceValue(func() *Ontology {
		l, err := obodata.Lookup(cv)
		if err != nil {
			panic(fmt.Sprintf("tacular: bundled %s dataset: %v", cv, err))
		}
		return l
	})
}

var (
	unimod = bundled(ontology.CVUnimod)
	psimod = bundled(ontology.CVPSIMod)
	resid  = bundled(ontology.CVRESID)
	xlmod  = bundled(ontology.CVXLMod)
	gno    = bundled(ontology.CVGNO)
)

// Unimod returns the bundled Unimod vocabulary.
func Unimod() *Ontology {
	return unimod()
}

// PSIMod returns the bundled PSI-MOD vocabulary.
func PSIMod() *Ontology {
	return psimod()
}

// RESID returns the bundled RESID vocabulary.
func RESID() *Ontology {
	return resid()
}

// XLMod returns the bundled XLMOD cross-linker vocabulary.
func XLMod() *Ontology {
	return xlmod()
}

// GNO returns the bundled Glycan Naming Ontology.
func GNO() *Ontology {
	return gno()
}

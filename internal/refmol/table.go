package refmol

import (
	"slices"
	"strings"
	"sync"

	tacerrors "github.com/tacular/tacular/errors"
	"github.com/tacular/tacular/internal/xiter"
)

// Table indexes reference molecules by folded name and groups them by
// label type and molecule type.
type Table struct {
	byName         map[string]*Molecule
	byLabelType    map[string][]*Molecule
	byMoleculeType map[string][]*Molecule
	ordered        []*Molecule
}

func newTable(items []Molecule) (*Table, error) {
	t := &Table{
		byName:         make(map[string]*Molecule, len(items)),
		byLabelType:    make(map[string][]*Molecule),
		byMoleculeType: make(map[string][]*Molecule),
		ordered:        make([]*Molecule, 0, len(items)),
	}
	for i := range items {
		item := &items[i]
		if err := computeMasses(item); err != nil {
			return nil, err
		}
		name := strings.ToLower(item.Name)
		if _, ok := t.byName[name]; ok {
			return nil, tacerrors.NewLookup(tacerrors.CodeDuplicateID, "reference-molecule", item.Name)
		}
		t.byName[name] = item
		if item.LabelType != "" {
			key := strings.ToLower(item.LabelType)
			t.byLabelType[key] = append(t.byLabelType[key], item)
		}
		key := strings.ToLower(item.MoleculeType)
		t.byMoleculeType[key] = append(t.byMoleculeType[key], item)
		t.ordered = append(t.ordered, item)
	}
	return t, nil
}

func computeMasses(item *Molecule) error {
	mono, err := item.Composition.Mass(true)
	if err != nil {
		return err
	}
	avg, err := item.Composition.Mass(false)
	if err != nil {
		return err
	}
	shift := float64(item.Charge) * electronMass
	item.mono = mono - shift
	item.avg = avg - shift
	return nil
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := newTable(molecules())
	if err != nil {
		panic(err)
	}
	return t
})

// Default returns the built-in reference molecule table.
func Default() *Table {
	return defaultTable()
}

// ByName resolves a molecule by name, case-insensitively.
func (t *Table) ByName(name string) (*Molecule, error) {
	item, ok := t.byName[strings.ToLower(name)]
	if !ok {
		return nil, tacerrors.NotFound("reference-molecule", name)
	}
	return item, nil
}

// Get is an alias for ByName; names are the only lookup key.
func (t *Table) Get(key string) (*Molecule, error) {
	return t.ByName(key)
}

// Find is the ok-variant of Get.
func (t *Table) Find(key string) (*Molecule, bool) {
	item, err := t.Get(key)
	if err != nil {
		return nil, false
	}
	return item, true
}

// Contains reports whether key resolves to a molecule.
func (t *Table) Contains(key string) bool {
	_, ok := t.Find(key)
	return ok
}

// ByLabelType returns the molecules of a labelling reagent family,
// case-insensitively. Unknown families yield an empty slice.
func (t *Table) ByLabelType(labelType string) []*Molecule {
	return slices.Clone(t.byLabelType[strings.ToLower(labelType)])
}

// ByMoleculeType returns the molecules of a class such as "reporter"
// or "nucleobase", case-insensitively. Unknown classes yield an empty
// slice.
func (t *Table) ByMoleculeType(moleculeType string) []*Molecule {
	return slices.Clone(t.byMoleculeType[strings.ToLower(moleculeType)])
}

// LabelTypes returns the folded labelling reagent families, sorted.
func (t *Table) LabelTypes() []string {
	return xiter.Collect(xiter.SortedKeys(t.byLabelType))
}

// MoleculeTypes returns the folded molecule classes, sorted.
func (t *Table) MoleculeTypes() []string {
	return xiter.Collect(xiter.SortedKeys(t.byMoleculeType))
}

// List returns the molecules in declaration order.
func (t *Table) List() []*Molecule {
	return slices.Clone(t.ordered)
}

// Len returns the number of molecules.
func (t *Table) Len() int {
	return len(t.ordered)
}

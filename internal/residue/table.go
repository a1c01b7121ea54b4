package residue

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	tacerrors "github.com/tacular/tacular/errors"
)

const tableName = "amino-acids"

// Table is the read-only amino-acid index, keyed by one-letter code,
// three-letter code, and full name, all case-insensitively.
type Table struct {
	byCode  map[string]*AminoAcid
	byThree map[string]*AminoAcid
	byName  map[string]*AminoAcid
	ordered []*AminoAcid
}

func newTable(items []AminoAcid) (*Table, error) {
	t := &Table{
		byCode:  make(map[string]*AminoAcid, len(items)),
		byThree: make(map[string]*AminoAcid, len(items)),
		byName:  make(map[string]*AminoAcid, len(items)),
		ordered: make([]*AminoAcid, 0, len(items)),
	}

	for idx := range items {
		item := &items[idx]
		if err := computeMasses(item); err != nil {
			return nil, fmt.Errorf("amino acid %s: %w", item.Code, err)
		}
		for key, index := range map[string]map[string]*AminoAcid{
			strings.ToLower(item.Code):        t.byCode,
			strings.ToLower(item.ThreeLetter): t.byThree,
			strings.ToLower(item.Name):        t.byName,
		} {
			if _, exists := index[key]; exists {
				return nil, tacerrors.NewLookupf(tacerrors.CodeDuplicateID, tableName, key, "duplicate amino acid key")
			}
			index[key] = item
		}
		t.ordered = append(t.ordered, item)
	}

	slices.SortFunc(t.ordered, func(a, b *AminoAcid) int {
		return strings.Compare(a.Code, b.Code)
	})
	return t, nil
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := newTable(aminoAcids())
	if err != nil {
		panic("residue: " + err.Error())
	}
	return t
})

// Default returns the bundled amino-acid table, built on first use.
func Default() *Table {
	return defaultTable()
}

// OneLetter resolves a one-letter code, case-insensitively.
func (t *Table) OneLetter(code string) (*AminoAcid, error) {
	return t.fromIndex(t.byCode, code)
}

// ThreeLetter resolves a three-letter code, case-insensitively.
func (t *Table) ThreeLetter(code string) (*AminoAcid, error) {
	return t.fromIndex(t.byThree, code)
}

// ByName resolves a full residue name, case-insensitively.
func (t *Table) ByName(name string) (*AminoAcid, error) {
	return t.fromIndex(t.byName, name)
}

// Get tries one-letter, three-letter, and full-name keys in that order.
func (t *Table) Get(key string) (*AminoAcid, error) {
	folded := strings.ToLower(key)
	for _, index := range []map[string]*AminoAcid{t.byCode, t.byThree, t.byName} {
		if item, ok := index[folded]; ok {
			return item, nil
		}
	}
	return nil, tacerrors.NotFound(tableName, key)
}

// Find is the ok-variant of Get.
func (t *Table) Find(key string) (*AminoAcid, bool) {
	item, err := t.Get(key)
	if err != nil {
		return nil, false
	}
	return item, true
}

// Contains reports whether any key form resolves.
func (t *Table) Contains(key string) bool {
	_, ok := t.Find(key)
	return ok
}

// Ordered returns all records sorted by one-letter code.
func (t *Table) Ordered() []*AminoAcid {
	out := make([]*AminoAcid, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.ordered)
}

// Ambiguous returns the ambiguity-code records (B, J, X, Z).
func (t *Table) Ambiguous() []*AminoAcid {
	return t.filter(func(a *AminoAcid) bool { return a.Ambiguous })
}

// Unambiguous returns records that name a single residue.
func (t *Table) Unambiguous() []*AminoAcid {
	return t.filter(func(a *AminoAcid) bool { return !a.Ambiguous })
}

// WithMass returns records that carry a defined mass.
func (t *Table) WithMass() []*AminoAcid {
	return t.filter((*AminoAcid).HasMass)
}

// UnambiguousWithMass returns unambiguous records with a defined mass.
func (t *Table) UnambiguousWithMass() []*AminoAcid {
	return t.filter(func(a *AminoAcid) bool { return !a.Ambiguous && a.HasMass() })
}

// IsAmbiguous reports whether the key resolves to an ambiguity code.
func (t *Table) IsAmbiguous(key string) (bool, error) {
	item, err := t.Get(key)
	if err != nil {
		return false, err
	}
	return item.Ambiguous, nil
}

// IsMassAmbiguous reports whether the key resolves to an ambiguity code with
// no shared candidate mass.
func (t *Table) IsMassAmbiguous(key string) (bool, error) {
	item, err := t.Get(key)
	if err != nil {
		return false, err
	}
	return item.IsMassAmbiguous(), nil
}

// Mass resolves a key and returns its residue mass.
func (t *Table) Mass(key string, monoisotopic bool) (float64, error) {
	item, err := t.Get(key)
	if err != nil {
		return 0, err
	}
	return item.Mass(monoisotopic)
}

// Composition resolves a key and returns a copy of its composition.
func (t *Table) Composition(key string) (map[string]int, error) {
	item, err := t.Get(key)
	if err != nil {
		return nil, err
	}
	if item.Composition == nil {
		return nil, tacerrors.NewLookupf(tacerrors.CodeNoComposition, tableName, key, "%s has no defined composition", item.Name)
	}
	return item.Composition.Clone(), nil
}

func (t *Table) fromIndex(index map[string]*AminoAcid, key string) (*AminoAcid, error) {
	item, ok := index[strings.ToLower(key)]
	if !ok {
		return nil, tacerrors.NotFound(tableName, key)
	}
	return item, nil
}

func (t *Table) filter(keep func(*AminoAcid) bool) []*AminoAcid {
	out := make([]*AminoAcid, 0, len(t.ordered))
	for _, item := range t.ordered {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

package protease

import (
	"strings"
	"sync"

	tacerrors "github.com/tacular/tacular/errors"
)

const tableName = "proteases"

// Well-known enzyme identifiers.
const (
	IDTrypsin          = "trypsin"
	IDChymotrypsinHigh = "chymotrypsin-high"
	IDChymotrypsinLow  = "chymotrypsin-low"
	IDLysC             = "lys-c"
	IDLysN             = "lys-n"
	IDArgC             = "arg-c"
	IDAspN             = "asp-n"
	IDGluC             = "glu-c"
	IDPepsin13         = "pepsin-1.3"
	IDPepsin20         = "pepsin-2.0"
	IDCNBr             = "cnbr"
	IDProteinaseK      = "proteinase-k"
	IDThermolysin      = "thermolysin"
	IDElastase         = "elastase"
	IDNonspecific      = "nonspecific"
)

// Table is the read-only protease index, keyed by id and name,
// case-insensitively.
type Table struct {
	byID    map[string]*Protease
	byName  map[string]*Protease
	ordered []*Protease
}

func newTable(items []Protease) (*Table, error) {
	t := &Table{
		byID:    make(map[string]*Protease, len(items)),
		byName:  make(map[string]*Protease, len(items)),
		ordered: make([]*Protease, 0, len(items)),
	}
	for idx := range items {
		item := &items[idx]
		id := strings.ToLower(item.ID)
		name := strings.ToLower(item.Name)
		if _, exists := t.byID[id]; exists {
			return nil, tacerrors.NewLookupf(tacerrors.CodeDuplicateID, tableName, item.ID, "duplicate protease id")
		}
		if _, exists := t.byName[name]; exists {
			return nil, tacerrors.NewLookupf(tacerrors.CodeDuplicateID, tableName, item.Name, "duplicate protease name")
		}
		t.byID[id] = item
		t.byName[name] = item
		t.ordered = append(t.ordered, item)
	}
	return t, nil
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := newTable(proteases())
	if err != nil {
		panic("protease: " + err.Error())
	}
	return t
})

// Default returns the bundled protease table, built on first use.
func Default() *Table {
	return defaultTable()
}

// ByID resolves an enzyme id, case-insensitively.
func (t *Table) ByID(id string) (*Protease, error) {
	item, ok := t.byID[strings.ToLower(id)]
	if !ok {
		return nil, tacerrors.NotFound(tableName, id)
	}
	return item, nil
}

// ByName resolves an enzyme name, case-insensitively.
func (t *Table) ByName(name string) (*Protease, error) {
	item, ok := t.byName[strings.ToLower(name)]
	if !ok {
		return nil, tacerrors.NotFound(tableName, name)
	}
	return item, nil
}

// Get tries id and then name.
func (t *Table) Get(key string) (*Protease, error) {
	if item, err := t.ByID(key); err == nil {
		return item, nil
	}
	if item, err := t.ByName(key); err == nil {
		return item, nil
	}
	return nil, tacerrors.NotFound(tableName, key)
}

// Find is the ok-variant of Get.
func (t *Table) Find(key string) (*Protease, bool) {
	item, err := t.Get(key)
	if err != nil {
		return nil, false
	}
	return item, true
}

// Contains reports whether the key resolves.
func (t *Table) Contains(key string) bool {
	_, ok := t.Find(key)
	return ok
}

// List returns all records in bundled order.
func (t *Table) List() []*Protease {
	out := make([]*Protease, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.ordered)
}

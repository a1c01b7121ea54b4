package glycan

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	tacerrors "github.com/tacular/tacular/errors"
)

// Table indexes monosaccharides by numeric id and by folded name,
// with aliases sharing the name index.
type Table struct {
	byID    map[int]*Monosaccharide
	byName  map[string]*Monosaccharide
	ordered []*Monosaccharide
}

func newTable(items []Monosaccharide) (*Table, error) {
	t := &Table{
		byID:    make(map[int]*Monosaccharide, len(items)),
		byName:  make(map[string]*Monosaccharide, len(items)),
		ordered: make([]*Monosaccharide, 0, len(items)),
	}
	for i := range items {
		item := &items[i]
		if err := computeMasses(item); err != nil {
			return nil, err
		}
		if _, ok := t.byID[item.ID]; ok {
			return nil, tacerrors.NewLookup(tacerrors.CodeDuplicateID, "monosaccharide", strconv.Itoa(item.ID))
		}
		t.byID[item.ID] = item
		for _, name := range append([]string{item.Name}, item.Aliases...) {
			folded := strings.ToLower(name)
			if _, ok := t.byName[folded]; ok {
				return nil, tacerrors.NewLookup(tacerrors.CodeDuplicateID, "monosaccharide", name)
			}
			t.byName[folded] = item
		}
		t.ordered = append(t.ordered, item)
	}
	slices.SortFunc(t.ordered, func(a, b *Monosaccharide) int {
		return a.ID - b.ID
	})
	return t, nil
}

func computeMasses(item *Monosaccharide) error {
	mono, err := item.Composition.Mass(true)
	if err != nil {
		return err
	}
	avg, err := item.Composition.Mass(false)
	if err != nil {
		return err
	}
	item.mono = mono
	item.avg = avg
	return nil
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := newTable(monosaccharides())
	if err != nil {
		panic(err)
	}
	return t
})

// Default returns the built-in monosaccharide table.
func Default() *Table {
	return defaultTable()
}

// ByID resolves a unit by its numeric identifier.
func (t *Table) ByID(id int) (*Monosaccharide, error) {
	item, ok := t.byID[id]
	if !ok {
		return nil, tacerrors.NotFound("monosaccharide", strconv.Itoa(id))
	}
	return item, nil
}

// ProForma resolves a unit by ProForma short name or alias,
// case-insensitively.
func (t *Table) ProForma(name string) (*Monosaccharide, error) {
	item, ok := t.byName[strings.ToLower(name)]
	if !ok {
		return nil, tacerrors.NotFound("monosaccharide", name)
	}
	return item, nil
}

// Get resolves a key that may be a name, an alias, or a numeric id.
func (t *Table) Get(key string) (*Monosaccharide, error) {
	if item, ok := t.byName[strings.ToLower(key)]; ok {
		return item, nil
	}
	if id, err := strconv.Atoi(key); err == nil {
		if item, ok := t.byID[id]; ok {
			return item, nil
		}
	}
	return nil, tacerrors.NotFound("monosaccharide", key)
}

// Find is the ok-variant of Get.
func (t *Table) Find(key string) (*Monosaccharide, bool) {
	item, err := t.Get(key)
	if err != nil {
		return nil, false
	}
	return item, true
}

// Contains reports whether key resolves to a unit.
func (t *Table) Contains(key string) bool {
	_, ok := t.Find(key)
	return ok
}

// List returns the units ordered by id.
func (t *Table) List() []*Monosaccharide {
	return slices.Clone(t.ordered)
}

// Len returns the number of distinct units.
func (t *Table) Len() int {
	return len(t.ordered)
}

package loss

import (
	"slices"
	"strings"
	"sync"

	tacerrors "github.com/tacular/tacular/errors"
)

// Table indexes neutral deltas by formula and by name, both folded.
type Table struct {
	byFormula map[string]*Delta
	byName    map[string]*Delta
	ordered   []*Delta
}

func newTable(items []Delta) (*Table, error) {
	t := &Table{
		byFormula: make(map[string]*Delta, len(items)),
		byName:    make(map[string]*Delta, len(items)),
		ordered:   make([]*Delta, 0, len(items)),
	}
	for i := range items {
		item := &items[i]
		if err := computeMasses(item); err != nil {
			return nil, err
		}
		formula := strings.ToLower(item.Formula)
		if _, ok := t.byFormula[formula]; ok {
			return nil, tacerrors.NewLookup(tacerrors.CodeDuplicateID, "neutral-delta", item.Formula)
		}
		t.byFormula[formula] = item
		name := strings.ToLower(item.Name)
		if _, ok := t.byName[name]; ok {
			return nil, tacerrors.NewLookup(tacerrors.CodeDuplicateID, "neutral-delta", item.Name)
		}
		t.byName[name] = item
		t.ordered = append(t.ordered, item)
	}
	return t, nil
}

func computeMasses(item *Delta) error {
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
	t, err := newTable(deltas())
	if err != nil {
		panic(err)
	}
	return t
})

// Default returns the built-in neutral delta table.
func Default() *Table {
	return defaultTable()
}

// ByFormula resolves a delta by elemental formula, case-insensitively.
func (t *Table) ByFormula(formula string) (*Delta, error) {
	item, ok := t.byFormula[strings.ToLower(formula)]
	if !ok {
		return nil, tacerrors.NotFound("neutral-delta", formula)
	}
	return item, nil
}

// ByName resolves a delta by short name, case-insensitively.
func (t *Table) ByName(name string) (*Delta, error) {
	item, ok := t.byName[strings.ToLower(name)]
	if !ok {
		return nil, tacerrors.NotFound("neutral-delta", name)
	}
	return item, nil
}

// Get resolves a key that may be a formula or a name.
func (t *Table) Get(key string) (*Delta, error) {
	folded := strings.ToLower(key)
	if item, ok := t.byFormula[folded]; ok {
		return item, nil
	}
	if item, ok := t.byName[folded]; ok {
		return item, nil
	}
	return nil, tacerrors.NotFound("neutral-delta", key)
}

// Find is the ok-variant of Get.
func (t *Table) Find(key string) (*Delta, bool) {
	item, err := t.Get(key)
	if err != nil {
		return nil, false
	}
	return item, true
}

// Contains reports whether key resolves to a delta.
func (t *Table) Contains(key string) bool {
	_, ok := t.Find(key)
	return ok
}

// List returns the deltas in declaration order.
func (t *Table) List() []*Delta {
	return slices.Clone(t.ordered)
}

// Len returns the number of deltas.
func (t *Table) Len() int {
	return len(t.ordered)
}

package fragment

import (
	"fmt"
	"math"
	"strings"
	"sync"

	tacerrors "github.com/tacular/tacular/errors"
	"github.com/tacular/tacular/internal/composition"
)

const tableName = "fragment-ions"

// Table is the read-only fragment-ion index, keyed by series letter and
// display name, case-insensitively.
type Table struct {
	bySeries map[string]*Ion
	byName   map[string]*Ion
	ordered  []*Ion
}

func newTable(items []Ion) (*Table, error) {
	t := &Table{
		bySeries: make(map[string]*Ion, len(items)),
		byName:   make(map[string]*Ion, len(items)),
		ordered:  make([]*Ion, 0, len(items)),
	}
	for idx := range items {
		item := &items[idx]
		if err := computeOffsets(item); err != nil {
			return nil, fmt.Errorf("fragment series %s: %w", item.Series, err)
		}
		series := strings.ToLower(string(item.Series))
		name := strings.ToLower(item.Name)
		if _, exists := t.bySeries[series]; exists {
			return nil, tacerrors.NewLookupf(tacerrors.CodeDuplicateID, tableName, series, "duplicate series")
		}
		t.bySeries[series] = item
		t.byName[name] = item
		t.ordered = append(t.ordered, item)
	}
	return t, nil
}

func computeOffsets(item *Ion) error {
	if item.Offset == nil {
		item.mono = math.NaN()
		item.avg = math.NaN()
		return nil
	}
	mono, err := item.Offset.Mass(true)
	if err != nil {
		return err
	}
	avg, err := item.Offset.Mass(false)
	if err != nil {
		return err
	}
	item.mono = mono
	item.avg = avg
	return nil
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := newTable(ions())
	if err != nil {
		panic("fragment: " + err.Error())
	}
	return t
})

// Default returns the bundled fragment-ion table, built on first use.
func Default() *Table {
	return defaultTable()
}

// BySeries resolves a series letter, case-insensitively.
func (t *Table) BySeries(series Series) (*Ion, error) {
	item, ok := t.bySeries[strings.ToLower(string(series))]
	if !ok {
		return nil, tacerrors.NotFound(tableName, string(series))
	}
	return item, nil
}

// ByName resolves a display name, case-insensitively.
func (t *Table) ByName(name string) (*Ion, error) {
	item, ok := t.byName[strings.ToLower(name)]
	if !ok {
		return nil, tacerrors.NotFound(tableName, name)
	}
	return item, nil
}

// Get tries the series letter and then the display name.
func (t *Table) Get(key string) (*Ion, error) {
	if item, err := t.BySeries(Series(key)); err == nil {
		return item, nil
	}
	if item, err := t.ByName(key); err == nil {
		return item, nil
	}
	return nil, tacerrors.NotFound(tableName, key)
}

// Find is the ok-variant of Get.
func (t *Table) Find(key string) (*Ion, bool) {
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
func (t *Table) List() []*Ion {
	out := make([]*Ion, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.ordered)
}

func ions() []Ion {
	return []Ion{
		{Series: SeriesA, Name: "a ion", Offset: composition.Composition{"C": -1, "O": -1}, Kind: KindForward},
		{Series: SeriesB, Name: "b ion", Offset: composition.Composition{}, Kind: KindForward},
		{Series: SeriesC, Name: "c ion", Offset: composition.Composition{"N": 1, "H": 3}, Kind: KindForward},
		{Series: SeriesD, Name: "d ion", Kind: KindForward | KindSatellite},
		{Series: SeriesV, Name: "v ion", Kind: KindBackward | KindSatellite},
		{Series: SeriesW, Name: "w ion", Kind: KindBackward | KindSatellite},
		{Series: SeriesX, Name: "x ion", Offset: composition.Composition{"C": 1, "O": 2}, Kind: KindBackward},
		{Series: SeriesY, Name: "y ion", Offset: composition.Composition{"H": 2, "O": 1}, Kind: KindBackward},
		{Series: SeriesZ, Name: "z ion", Offset: composition.Composition{"H": -1, "N": -1, "O": 1}, Kind: KindBackward},
		{Series: SeriesInternal, Name: "internal fragment", Offset: composition.Composition{}, Kind: KindInternal},
		{Series: SeriesPrecursor, Name: "precursor", Offset: composition.Composition{"H": 2, "O": 1}, Kind: KindIntact},
		{Series: SeriesImmonium, Name: "immonium ion", Kind: KindImmonium},
		{Series: SeriesReporter, Name: "reporter ion", Kind: KindReporter},
	}
}

package isotope

import (
	"sync"

	tacerrors "github.com/tacular/tacular/errors"
)

const tableName = "elements"

type isotopeKey struct {
	symbol     string
	massNumber int
}

// Table is the read-only element/isotope index. Symbols are case-sensitive.
type Table struct {
	byKey   map[isotopeKey]*Isotope
	ordered []*Isotope
}

func newTable(items []Isotope) *Table {
	byKey := make(map[isotopeKey]*Isotope, len(items))
	ordered := make([]*Isotope, 0, len(items))

	for idx := range items {
		item := &items[idx]
		key := isotopeKey{symbol: item.Symbol, massNumber: item.MassNumber}
		if _, exists := byKey[key]; exists {
			continue
		}
		byKey[key] = item
		ordered = append(ordered, item)
	}

	return &Table{byKey: byKey, ordered: ordered}
}

var defaultTable = sync.OnceValue(func() *Table {
	return newTable(elements())
})

// Default returns the bundled periodic table, built on first use.
func Default() *Table {
	return defaultTable()
}

// Get resolves a key of the form "C" (element entry), "13C" (isotope), or the
// heavy-hydrogen aliases "D" and "T". Symbols are case-sensitive. A key with
// digits but no symbol is malformed; an unknown symbol or isotope is a
// missing-key error.
func (t *Table) Get(spec string) (*Isotope, error) {
	symbol, massNumber, err := splitSpec(spec)
	if err != nil {
		return nil, err
	}
	return t.GetIsotope(symbol, massNumber)
}

// GetIsotope resolves a symbol plus explicit mass number; zero selects the
// element-level entry.
func (t *Table) GetIsotope(symbol string, massNumber int) (*Isotope, error) {
	item, ok := t.byKey[isotopeKey{symbol: symbol, massNumber: massNumber}]
	if !ok {
		key := symbol
		if massNumber != 0 {
			key = Spec(symbol, massNumber)
		}
		return nil, tacerrors.NotFound(tableName, key)
	}
	return item, nil
}

// Find is the ok-variant of Get; malformed keys report false as well.
func (t *Table) Find(spec string) (*Isotope, bool) {
	item, err := t.Get(spec)
	if err != nil {
		return nil, false
	}
	return item, true
}

// MustGet resolves a key and panics when it is unknown. Reserved for bundled
// data that is validated at build time.
func (t *Table) MustGet(spec string) *Isotope {
	item, err := t.Get(spec)
	if err != nil {
		panic("isotope: " + err.Error())
	}
	return item
}

// Mass resolves a key and returns its mass. Element-level entries honor the
// monoisotopic flag; a named isotope ignores it.
func (t *Table) Mass(spec string, monoisotopic bool) (float64, error) {
	item, err := t.Get(spec)
	if err != nil {
		return 0, err
	}
	return item.MassFor(monoisotopic), nil
}

// Contains reports whether the key resolves to an entry.
func (t *Table) Contains(spec string) bool {
	_, ok := t.Find(spec)
	return ok
}

// List returns all entries in deterministic data order.
func (t *Table) List() []*Isotope {
	items := make([]*Isotope, len(t.ordered))
	copy(items, t.ordered)
	return items
}

// Len returns the number of entries, element-level rows included.
func (t *Table) Len() int {
	return len(t.ordered)
}

// Spec renders a symbol and mass number as a lookup key ("13C").
func Spec(symbol string, massNumber int) string {
	if massNumber == 0 {
		return symbol
	}
	i := Isotope{Symbol: symbol, MassNumber: massNumber}
	return i.String()
}

func splitSpec(spec string) (symbol string, massNumber int, err error) {
	if spec == "" {
		return "", 0, tacerrors.NewLookupf(tacerrors.CodeBadIdentifier, tableName, spec, "empty key")
	}

	i := 0
	for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
		massNumber = massNumber*10 + int(spec[i]-'0')
		i++
	}
	symbol = spec[i:]
	if symbol == "" {
		return "", 0, tacerrors.NewLookupf(tacerrors.CodeBadIdentifier, tableName, spec, "digits without an element symbol")
	}

	// Heavy-hydrogen shorthand carries its own mass number.
	if massNumber == 0 {
		switch symbol {
		case "D":
			return "H", 2, nil
		case "T":
			return "H", 3, nil
		}
	}
	return symbol, massNumber, nil
}

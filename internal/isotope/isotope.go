// Package isotope provides the periodic-table reference data: element-level
// entries carrying the principal-isotope mass and standard atomic weight,
// plus per-isotope entries with exact masses and natural abundances.
package isotope

import (
	"fmt"
	"strconv"
)

// Isotope is a single periodic-table entry. A MassNumber of zero marks the
// element-level entry; its Mass is the monoisotopic (principal isotope) mass
// and its Average is the standard atomic weight. Isotope entries carry the
// isotope mass in both Mass and Average, so the monoisotopic/average flag is
// irrelevant once a specific isotope is named.
type Isotope struct {
	Number     int
	MassNumber int
	Symbol     string
	Mass       float64
	Abundance  float64
	Average    float64
	Principal  bool
}

// IsElement reports whether this is the element-level entry.
func (i *Isotope) IsElement() bool {
	return i.MassNumber == 0
}

// ProtonCount returns the atomic number.
func (i *Isotope) ProtonCount() int {
	return i.Number
}

// NeutronCount returns the neutron count for an isotope entry. The second
// return value is false for element-level entries, which have no mass number.
func (i *Isotope) NeutronCount() (int, bool) {
	if i.IsElement() {
		return 0, false
	}
	return i.MassNumber - i.Number, true
}

// IsRadioactive reports whether the isotope has no natural abundance.
func (i *Isotope) IsRadioactive() bool {
	return !i.IsElement() && i.Abundance == 0
}

// MassFor returns the monoisotopic or average mass for element-level entries
// and the isotope mass regardless of the flag for isotope entries.
func (i *Isotope) MassFor(monoisotopic bool) float64 {
	if !i.IsElement() {
		return i.Mass
	}
	if monoisotopic {
		return i.Mass
	}
	return i.Average
}

// String renders the entry as a composition key: "C" or "13C".
func (i *Isotope) String() string {
	if i.IsElement() {
		return i.Symbol
	}
	return strconv.Itoa(i.MassNumber) + i.Symbol
}

// Serialize renders a formula term for this entry with the given count:
// "C2", "C-1", "[13C]", "[13C]2". A zero count is rejected.
func (i *Isotope) Serialize(count int) (string, error) {
	if count == 0 {
		return "", fmt.Errorf("serialize %s: zero count", i)
	}
	if !i.IsElement() {
		if count == 1 {
			return "[" + i.String() + "]", nil
		}
		return fmt.Sprintf("[%s]%d", i, count), nil
	}
	if count == 1 {
		return i.Symbol, nil
	}
	return fmt.Sprintf("%s%d", i.Symbol, count), nil
}

// hillRank orders symbols for Hill notation: carbon, hydrogen, then the rest.
func hillRank(symbol string) int {
	switch symbol {
	case "C":
		return 0
	case "H":
		return 1
	default:
		return 2
	}
}

// CompareHill orders entries in Hill notation order with isotope priorities:
// C first, H second, then alphabetical by symbol; within a symbol the
// element-level entry comes first, then isotopes by ascending neutron count.
func CompareHill(a, b *Isotope) int {
	if r := hillRank(a.Symbol) - hillRank(b.Symbol); r != 0 {
		return r
	}
	if a.Symbol != b.Symbol {
		if a.Symbol < b.Symbol {
			return -1
		}
		return 1
	}
	return neutronRank(a) - neutronRank(b)
}

func neutronRank(i *Isotope) int {
	if i.IsElement() {
		return -1
	}
	return i.MassNumber - i.Number
}

// Package composition models elemental compositions keyed by isotope specs
// ("C", "13C") with signed counts, and computes monoisotopic and average
// masses against the bundled periodic table.
package composition

import (
	"slices"
	"strings"

	"github.com/tacular/tacular/internal/isotope"
)

// Composition maps isotope specs to signed atom counts. Negative counts
// express removals, as in isotope-label deltas such as {"C": -6, "13C": 6}.
type Composition map[string]int

// Term is one resolved composition entry.
type Term struct {
	Isotope *isotope.Isotope
	Count   int
}

// Clone returns an independent copy.
func (c Composition) Clone() Composition {
	if c == nil {
		return nil
	}
	out := make(Composition, len(c))
	for spec, count := range c {
		out[spec] = count
	}
	return out
}

// Terms resolves every spec against the periodic table and returns the terms
// in Hill order. Zero-count terms are dropped.
func (c Composition) Terms() ([]Term, error) {
	terms := make([]Term, 0, len(c))
	for spec, count := range c {
		if count == 0 {
			continue
		}
		entry, err := isotope.Default().Get(spec)
		if err != nil {
			return nil, err
		}
		terms = append(terms, Term{Isotope: entry, Count: count})
	}
	slices.SortFunc(terms, func(a, b Term) int {
		return isotope.CompareHill(a.Isotope, b.Isotope)
	})
	return terms, nil
}

// Mass sums the composition's mass. Element terms use the principal-isotope
// mass or the standard atomic weight per the flag; explicit isotope terms
// contribute their isotope mass in both modes.
func (c Composition) Mass(monoisotopic bool) (float64, error) {
	terms, err := c.Terms()
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, term := range terms {
		sum += float64(term.Count) * term.Isotope.MassFor(monoisotopic)
	}
	return sum, nil
}

// Format renders the composition as a Hill-ordered formula, for example
// "C2H3NO" or "[13C]6C-6".
func (c Composition) Format() (string, error) {
	terms, err := c.Terms()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, term := range terms {
		part, err := term.Isotope.Serialize(term.Count)
		if err != nil {
			return "", err
		}
		b.WriteString(part)
	}
	return b.String(), nil
}

// String renders the formula, or an empty string when a spec cannot be
// resolved. Use Format to observe resolution errors.
func (c Composition) String() string {
	s, err := c.Format()
	if err != nil {
		return ""
	}
	return s
}

// IsZero reports whether the composition has no non-zero terms.
func (c Composition) IsZero() bool {
	for _, count := range c {
		if count != 0 {
			return false
		}
	}
	return true
}

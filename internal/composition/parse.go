package composition

import (
	tacerrors "github.com/tacular/tacular/errors"
	"github.com/tacular/tacular/internal/isotope"
)

const formulaTable = "formula"

// Parse reads a Hill-style formula into a composition. Accepted terms are an
// element symbol ("C", "Na"), a bracketed isotope ("[13C]", "[2H]"), each
// followed by an optional signed count: "C2H3NO", "[13C]6C-6", "H-1N-1O".
// Symbols are validated against the periodic table.
func Parse(formula string) (Composition, error) {
	if formula == "" {
		return nil, tacerrors.NewLookupf(tacerrors.CodeBadIdentifier, formulaTable, formula, "empty formula")
	}

	out := make(Composition)
	i := 0
	for i < len(formula) {
		spec, next, err := readAtom(formula, i)
		if err != nil {
			return nil, err
		}
		count, next, err := readCount(formula, next)
		if err != nil {
			return nil, err
		}
		if _, err := isotope.Default().Get(spec); err != nil {
			return nil, err
		}
		out[spec] += count
		i = next
	}
	return out, nil
}

// MustParse parses a formula and panics on error. Reserved for bundled data.
func MustParse(formula string) Composition {
	c, err := Parse(formula)
	if err != nil {
		panic("composition: " + err.Error())
	}
	return c
}

func readAtom(formula string, i int) (spec string, next int, err error) {
	if formula[i] == '[' {
		end := i + 1
		for end < len(formula) && formula[end] != ']' {
			end++
		}
		if end == len(formula) || end == i+1 {
			return "", 0, tacerrors.NewLookupf(tacerrors.CodeBadIdentifier, formulaTable, formula, "unterminated isotope bracket at offset %d", i)
		}
		return formula[i+1 : end], end + 1, nil
	}

	if !isUpper(formula[i]) {
		return "", 0, tacerrors.NewLookupf(tacerrors.CodeBadIdentifier, formulaTable, formula, "expected element symbol at offset %d", i)
	}
	end := i + 1
	for end < len(formula) && isLower(formula[end]) {
		end++
	}
	return formula[i:end], end, nil
}

func readCount(formula string, i int) (count, next int, err error) {
	if i >= len(formula) || !(formula[i] == '-' || isDigit(formula[i])) {
		return 1, i, nil
	}
	negative := false
	if formula[i] == '-' {
		negative = true
		i++
	}
	if i >= len(formula) || !isDigit(formula[i]) {
		return 0, 0, tacerrors.NewLookupf(tacerrors.CodeBadIdentifier, formulaTable, formula, "dangling sign at offset %d", i)
	}
	value := 0
	for i < len(formula) && isDigit(formula[i]) {
		value = value*10 + int(formula[i]-'0')
		i++
	}
	if negative {
		value = -value
	}
	return value, i, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

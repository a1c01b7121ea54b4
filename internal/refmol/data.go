package refmol

import "github.com/tacular/tacular/internal/composition"

func reporter(name, labelType, formula string) Molecule {
	return Molecule{
		Name:         name,
		LabelType:    labelType,
		MoleculeType: "reporter",
		Formula:      formula,
		Charge:       1,
		Composition:  composition.MustParse(formula),
	}
}

func nucleobase(name, formula string) Molecule {
	return Molecule{
		Name:         name,
		MoleculeType: "nucleobase",
		Formula:      formula,
		Composition:  composition.MustParse(formula),
	}
}

func molecules() []Molecule {
	return []Molecule{
		// TMT and TMTpro reporter cations. N and C suffixes mark
		// which heavy substitution distinguishes the near-isobaric
		// channels.
		reporter("TMT126", "TMT", "C8H16N"),
		reporter("TMT127N", "TMT", "C8H16[15N]"),
		reporter("TMT127C", "TMT", "C7[13C]H16N"),
		reporter("TMT128N", "TMT", "C7[13C]H16[15N]"),
		reporter("TMT128C", "TMT", "C6[13C]2H16N"),
		reporter("TMT129N", "TMT", "C6[13C]2H16[15N]"),
		reporter("TMT129C", "TMT", "C5[13C]3H16N"),
		reporter("TMT130N", "TMT", "C5[13C]3H16[15N]"),
		reporter("TMT130C", "TMT", "C4[13C]4H16N"),
		reporter("TMT131N", "TMT", "C4[13C]4H16[15N]"),
		reporter("TMT131C", "TMT", "C3[13C]5H16N"),
		reporter("TMT132N", "TMT", "C3[13C]5H16[15N]"),
		reporter("TMT132C", "TMT", "C2[13C]6H16N"),
		reporter("TMT133N", "TMT", "C2[13C]6H16[15N]"),
		reporter("TMT133C", "TMT", "C[13C]7H16N"),
		reporter("TMT134N", "TMT", "C[13C]7H16[15N]"),
		reporter("TMT134C", "TMT", "[13C]8H16N"),
		reporter("TMT135N", "TMT", "[13C]8H16[15N]"),

		// iTRAQ reporter cations.
		reporter("iTRAQ113", "iTRAQ", "C6H13N2"),
		reporter("iTRAQ114", "iTRAQ", "C5[13C]H13N2"),
		reporter("iTRAQ115", "iTRAQ", "C5[13C]H13N[15N]"),
		reporter("iTRAQ116", "iTRAQ", "C4[13C]2H13N[15N]"),
		reporter("iTRAQ117", "iTRAQ", "C3[13C]3H13N[15N]"),
		reporter("iTRAQ118", "iTRAQ", "C3[13C]3H13[15N]2"),
		reporter("iTRAQ119", "iTRAQ", "C2[13C]4H13[15N]2"),
		reporter("iTRAQ121", "iTRAQ", "[13C]6H13[15N]2"),

		// Nucleobases, neutral.
		nucleobase("adenine", "C5H5N5"),
		nucleobase("guanine", "C5H5N5O"),
		nucleobase("cytosine", "C4H5N3O"),
		nucleobase("thymine", "C5H6N2O2"),
		nucleobase("uracil", "C4H4N2O2"),
	}
}

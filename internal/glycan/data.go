package glycan

import "github.com/tacular/tacular/internal/composition"

func sugar(id int, name string, formula string, aliases ...string) Monosaccharide {
	return Monosaccharide{
		ID:          id,
		Name:        name,
		Aliases:     aliases,
		Composition: composition.MustParse(formula),
	}
}

// monosaccharides lists the residue (dehydrated) units recognised in
// ProForma glycan compositions.
func monosaccharides() []Monosaccharide {
	return []Monosaccharide{
		sugar(1, "Hex", "C6H10O5", "Glc", "Gal", "Man"),
		sugar(2, "HexNAc", "C8H13NO5", "GlcNAc", "GalNAc"),
		sugar(3, "dHex", "C6H10O4", "Fuc"),
		sugar(4, "HexA", "C6H8O6"),
		sugar(5, "HexN", "C6H11NO4", "GlcN"),
		sugar(6, "Pen", "C5H8O4", "Pent", "Xyl"),
		sugar(7, "Neu", "C11H17NO7"),
		sugar(8, "NeuAc", "C11H17NO8", "Neu5Ac", "NANA"),
		sugar(9, "NeuGc", "C11H17NO9", "Neu5Gc"),
		sugar(10, "Hep", "C7H12O6"),
	}
}

package residue

import (
	"math"

	"github.com/tacular/tacular/internal/composition"
)

// Generated from the IUPAC-IUBMB one/three-letter code assignments with
// residue compositions in peptide-bond form. Masses are derived from the
// composition at build time so they always agree with the element table.

func aa(code, three, name, formula string) AminoAcid {
	return AminoAcid{
		Code:        code,
		ThreeLetter: three,
		Name:        name,
		Composition: composition.MustParse(formula),
	}
}

func ambiguous(code, three, name, formula string) AminoAcid {
	item := AminoAcid{Code: code, ThreeLetter: three, Name: name, Ambiguous: true}
	if formula != "" {
		item.Composition = composition.MustParse(formula)
	}
	return item
}

func aminoAcids() []AminoAcid {
	return []AminoAcid{
		aa("A", "Ala", "Alanine", "C3H5NO"),
		ambiguous("B", "Asx", "Aspartic acid or Asparagine", ""),
		aa("C", "Cys", "Cysteine", "C3H5NOS"),
		aa("D", "Asp", "Aspartic acid", "C4H5NO3"),
		aa("E", "Glu", "Glutamic acid", "C5H7NO3"),
		aa("F", "Phe", "Phenylalanine", "C9H9NO"),
		aa("G", "Gly", "Glycine", "C2H3NO"),
		aa("H", "His", "Histidine", "C6H7N3O"),
		aa("I", "Ile", "Isoleucine", "C6H11NO"),
		ambiguous("J", "Xle", "Leucine or Isoleucine", "C6H11NO"),
		aa("K", "Lys", "Lysine", "C6H12N2O"),
		aa("L", "Leu", "Leucine", "C6H11NO"),
		aa("M", "Met", "Methionine", "C5H9NOS"),
		aa("N", "Asn", "Asparagine", "C4H6N2O2"),
		aa("O", "Pyl", "Pyrrolysine", "C12H19N3O2"),
		aa("P", "Pro", "Proline", "C5H7NO"),
		aa("Q", "Gln", "Glutamine", "C5H8N2O2"),
		aa("R", "Arg", "Arginine", "C6H12N4O"),
		aa("S", "Ser", "Serine", "C3H5NO2"),
		aa("T", "Thr", "Threonine", "C4H7NO2"),
		aa("U", "Sec", "Selenocysteine", "C3H5NOSe"),
		aa("V", "Val", "Valine", "C5H9NO"),
		aa("W", "Trp", "Tryptophan", "C11H10N2O"),
		ambiguous("X", "Xaa", "Any amino acid", ""),
		aa("Y", "Tyr", "Tyrosine", "C9H9NO2"),
		ambiguous("Z", "Glx", "Glutamic acid or Glutamine", ""),
	}
}

func computeMasses(item *AminoAcid) error {
	if item.Composition == nil {
		item.mono = math.NaN()
		item.avg = math.NaN()
		return nil
	}
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

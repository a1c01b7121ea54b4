package protease

// Cleavage expressions follow the Expasy PeptideCutter rules, rewritten
// without lookaround so they compile under RE2. Each match marks the residue
// pair spanning a cleavage site (or the single residue the enzyme cuts at).

func proteases() []Protease {
	return []Protease{
		{ID: IDTrypsin, Name: "Trypsin", FullName: "Trypsin", Pattern: `[KR][^P]`},
		{ID: IDChymotrypsinHigh, Name: "Chymotrypsin (high specificity)", FullName: "Chymotrypsin, high specificity (C-terminal to F/Y/W)", Pattern: `[FYW][^P]`},
		{ID: IDChymotrypsinLow, Name: "Chymotrypsin (low specificity)", FullName: "Chymotrypsin, low specificity (C-terminal to F/Y/W/M/L)", Pattern: `[FYWML][^P]`},
		{ID: IDLysC, Name: "Lys-C", FullName: "Lysyl endopeptidase", Pattern: `K`},
		{ID: IDLysN, Name: "Lys-N", FullName: "Peptidyl-Lys metalloendopeptidase", Pattern: `K`},
		{ID: IDArgC, Name: "Arg-C", FullName: "Clostripain", Pattern: `R`},
		{ID: IDAspN, Name: "Asp-N", FullName: "Peptidyl-Asp metalloendopeptidase", Pattern: `D`},
		{ID: IDGluC, Name: "Glu-C", FullName: "Glutamyl endopeptidase (V8)", Pattern: `E`},
		{ID: IDPepsin13, Name: "Pepsin (pH 1.3)", FullName: "Pepsin at pH 1.3", Pattern: `[FL]`},
		{ID: IDPepsin20, Name: "Pepsin (pH 2.0)", FullName: "Pepsin at pH 2.0", Pattern: `[FLWY]`},
		{ID: IDCNBr, Name: "CNBr", FullName: "Cyanogen bromide", Pattern: `M`},
		{ID: IDProteinaseK, Name: "Proteinase K", FullName: "Proteinase K", Pattern: `[AEFILTVWY]`},
		{ID: IDThermolysin, Name: "Thermolysin", FullName: "Thermolysin", Pattern: `[^DE][AFILMV]`},
		{ID: IDElastase, Name: "Elastase", FullName: "Pancreatic elastase", Pattern: `[AGSV]`},
		{ID: IDNonspecific, Name: "Nonspecific", FullName: "Unspecific cleavage", Pattern: `[A-Z]`},
	}
}

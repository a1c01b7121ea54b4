package loss

import "github.com/tacular/tacular/internal/composition"

func delta(formula, name, description, residues string) Delta {
	return Delta{
		Formula:     formula,
		Name:        name,
		Description: description,
		Residues:    residues,
		Composition: composition.MustParse(formula),
	}
}

func deltas() []Delta {
	return []Delta{
		delta("H2O", "water", "loss from hydroxyl and carboxyl side chains", "STED"),
		delta("NH3", "ammonia", "loss from basic and amide side chains", "KNQR"),
		delta("CO", "carbon monoxide", "b to a ion conversion", ""),
		delta("CO2", "carbon dioxide", "decarboxylation of acidic side chains", "DE"),
		delta("HPO3", "metaphosphate", "partial loss from phosphorylated residues", "STY"),
		delta("H3PO4", "phosphoric acid", "full loss from phosphorylated residues", "STY"),
		delta("CH4OS", "methanesulfenic acid", "loss from oxidised methionine", "M"),
		delta("H2S", "hydrogen sulfide", "loss from cysteine", "C"),
		delta("C3H9N", "trimethylamine", "loss from trimethylated lysine", "K"),
	}
}

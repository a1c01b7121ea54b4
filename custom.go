package tacular

import (
	"io"

	"gopkg.in/yaml.v3"

	tacerrors "github.com/tacular/tacular/errors"
	"github.com/tacular/tacular/internal/composition"
	"github.com/tacular/tacular/internal/ontology"
)

// customDocument is the YAML shape accepted by LoadOntology.
type customDocument struct {
	Name          string        `yaml:"name"`
	Version       string        `yaml:"version"`
	Modifications []customEntry `yaml:"modifications"`
}

type customEntry struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Formula     string         `yaml:"formula"`
	MonoMass    *float64       `yaml:"mono_mass"`
	AvgMass     *float64       `yaml:"avg_mass"`
	Composition map[string]int `yaml:"composition"`
}

// LoadOntology reads a user-supplied modification vocabulary from
// YAML and indexes it under the CUSTOM CV. Entries may state masses
// directly, give a composition or formula the masses are computed
// from, or both. Duplicate ids are rejected.
func LoadOntology(r io.Reader) (*Ontology, error) {
	var doc customDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, tacerrors.NewLookupf(tacerrors.CodeDecode, "custom", doc.Name, "yaml: %v", err)
	}

	entries := make([]ontology.Entry, 0, len(doc.Modifications))
	for _, raw := range doc.Modifications {
		if raw.ID == "" {
			return nil, tacerrors.NewLookupf(tacerrors.CodeBadIdentifier, "custom", raw.Name, "missing id")
		}
		e := ontology.Entry{
			ID:               raw.ID,
			Name:             raw.Name,
			Formula:          raw.Formula,
			MonoisotopicMass: raw.MonoMass,
			AverageMass:      raw.AvgMass,
			CV:               ontology.CVCustom,
		}
		if raw.Composition != nil {
			e.Composition = composition.Composition(raw.Composition)
		} else if raw.Formula != "" {
			parsed, err := composition.Parse(raw.Formula)
			if err != nil {
				return nil, err
			}
			e.Composition = parsed
		}
		if e.Composition != nil {
			if err := fillMasses(&e); err != nil {
				return nil, err
			}
		}
		entries = append(entries, e)
	}
	return ontology.New(ontology.CVCustom, doc.Version, entries)
}

// fillMasses computes absent masses from the entry's composition.
func fillMasses(e *ontology.Entry) error {
	if e.MonoisotopicMass == nil {
		mono, err := e.Composition.Mass(true)
		if err != nil {
			return err
		}
		e.MonoisotopicMass = &mono
	}
	if e.AverageMass == nil {
		avg, err := e.Composition.Mass(false)
		if err != nil {
			return err
		}
		e.AverageMass = &avg
	}
	return nil
}

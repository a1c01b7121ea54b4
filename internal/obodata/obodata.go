// Package obodata carries the embedded controlled-vocabulary
// snapshots. Each dataset is a gzip-compressed NDJSON file generated
// from the upstream OBO release: a header line with the vocabulary and
// its version, then one term per line.
package obodata

import (
	"bufio"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/klauspost/pgzip"

	tacerrors "github.com/tacular/tacular/errors"
	"github.com/tacular/tacular/internal/composition"
	"github.com/tacular/tacular/internal/ontology"
)

//go:embed data/*.ndjson.gz
var datasets embed.FS

// Dataset is one decoded vocabulary snapshot.
type Dataset struct {
	CV      ontology.CV
	Version string
	Entries []ontology.Entry
}

type header struct {
	CV      string `json:"cv"`
	Version string `json:"version"`
}

type record struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Formula     string         `json:"formula,omitempty"`
	MonoMass    *float64       `json:"mono_mass,omitempty"`
	AvgMass     *float64       `json:"avg_mass,omitempty"`
	Composition map[string]int `json:"composition,omitempty"`
}

// filenames maps each bundled vocabulary to its snapshot file.
var filenames = map[ontology.CV]string{
	ontology.CVUnimod: "unimod",
	ontology.CVPSIMod: "psimod",
	ontology.CVRESID:  "resid",
	ontology.CVXLMod:  "xlmod",
	ontology.CVGNO:    "gno",
}

// Load decodes the bundled snapshot of cv.
func Load(cv ontology.CV) (*Dataset, error) {
	name, ok := filenames[cv]
	if !ok {
		return nil, tacerrors.NotFound("dataset", string(cv))
	}
	f, err := datasets.Open(fmt.Sprintf("data/%s.ndjson.gz", name))
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", cv, err)
	}
	defer f.Close()
	return decode(cv, f)
}

func decode(cv ontology.CV, f fs.File) (*Dataset, error) {
	zr, err := pgzip.NewReader(f)
	if err != nil {
		return nil, tacerrors.NewLookupf(tacerrors.CodeDecode, "dataset", string(cv), "gzip: %v", err)
	}
	defer zr.Close()

	scanner := bufio.NewScanner(zr)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		return nil, tacerrors.NewLookupf(tacerrors.CodeDecode, "dataset", string(cv), "missing header line")
	}
	var h header
	if err := json.Unmarshal(scanner.Bytes(), &h); err != nil {
		return nil, tacerrors.NewLookupf(tacerrors.CodeDecode, "dataset", string(cv), "header: %v", err)
	}
	if !strings.EqualFold(h.CV, string(cv)) {
		return nil, tacerrors.NewLookupf(tacerrors.CodeDecode, "dataset", string(cv), "header names cv %q", h.CV)
	}

	ds := &Dataset{CV: cv, Version: h.Version}
	line := 1
	for scanner.Scan() {
		line++
		var r record
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			return nil, tacerrors.NewLookupf(tacerrors.CodeDecode, "dataset", string(cv), "line %d: %v", line, err)
		}
		e := ontology.Entry{
			ID:               r.ID,
			Name:             r.Name,
			Formula:          r.Formula,
			MonoisotopicMass: r.MonoMass,
			AverageMass:      r.AvgMass,
			CV:               cv,
		}
		if r.Composition != nil {
			e.Composition = composition.Composition(r.Composition)
		}
		ds.Entries = append(ds.Entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, tacerrors.NewLookupf(tacerrors.CodeDecode, "dataset", string(cv), "read: %v", err)
	}
	return ds, nil
}

// Lookup decodes the bundled snapshot of cv and indexes it.
func Lookup(cv ontology.CV) (*ontology.Lookup, error) {
	ds, err := Load(cv)
	if err != nil {
		return nil, err
	}
	return ontology.New(ds.CV, ds.Version, ds.Entries)
}

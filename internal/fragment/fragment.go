// Package fragment provides the fragment-ion series table: the backbone
// series a/b/c and x/y/z, the satellite series d/v/w, internal fragments,
// immonium and reporter ions, and the intact precursor.
package fragment

import (
	"math"

	tacerrors "github.com/tacular/tacular/errors"
	"github.com/tacular/tacular/internal/composition"
)

// Series identifies a fragment-ion series by its conventional letter.
type Series string

const (
	SeriesA         Series = "a"
	SeriesB         Series = "b"
	SeriesC         Series = "c"
	SeriesD         Series = "d"
	SeriesV         Series = "v"
	SeriesW         Series = "w"
	SeriesX         Series = "x"
	SeriesY         Series = "y"
	SeriesZ         Series = "z"
	SeriesInternal  Series = "m"
	SeriesPrecursor Series = "p"
	SeriesImmonium  Series = "i"
	SeriesReporter  Series = "r"
)

// Kind is a bit set classifying a series.
type Kind uint16

const (
	KindForward Kind = 1 << iota
	KindBackward
	KindInternal
	KindIntact
	KindImmonium
	KindReporter
	KindSatellite
)

// Ion is a single fragment-ion series record. Offset is the neutral mass
// delta relative to the summed residue masses of the fragment; it is nil for
// satellite and single-residue series whose delta depends on the sequence,
// and such records carry no mass.
type Ion struct {
	Series Series
	Name   string
	Offset composition.Composition
	Kind   Kind

	mono float64
	avg  float64
}

// IsForward reports whether the series counts from the N terminus.
func (i *Ion) IsForward() bool { return i.Kind&KindForward != 0 }

// IsBackward reports whether the series counts from the C terminus.
func (i *Ion) IsBackward() bool { return i.Kind&KindBackward != 0 }

// IsInternal reports whether the series covers internal fragments.
func (i *Ion) IsInternal() bool { return i.Kind&KindInternal != 0 }

// IsIntact reports whether the series is the undissociated precursor.
func (i *Ion) IsIntact() bool { return i.Kind&KindIntact != 0 }

// IsSatellite reports whether the series is a side-chain-loss satellite.
func (i *Ion) IsSatellite() bool { return i.Kind&KindSatellite != 0 }

// HasMass reports whether the series has a sequence-independent mass offset.
func (i *Ion) HasMass() bool {
	return !math.IsNaN(i.mono)
}

// Mass returns the monoisotopic or average neutral mass offset.
func (i *Ion) Mass(monoisotopic bool) (float64, error) {
	if !i.HasMass() {
		return 0, tacerrors.NewLookupf(tacerrors.CodeNoMass, tableName, string(i.Series), "%s offset depends on the sequence", i.Name)
	}
	if monoisotopic {
		return i.mono, nil
	}
	return i.avg, nil
}

func (i *Ion) String() string {
	return string(i.Series)
}

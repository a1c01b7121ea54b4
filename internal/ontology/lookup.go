package ontology

import (
	"iter"
	"math"
	"math/rand/v2"
	"slices"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	tacerrors "github.com/tacular/tacular/errors"
	"github.com/tacular/tacular/internal/xiter"
)

// Lookup is an immutable index over one vocabulary's entries. Build it
// with New; all query methods are safe for concurrent use.
type Lookup struct {
	cv      CV
	scheme  Scheme
	version string
	entries []*Entry
	byID    map[string]*Entry
	byName  map[string]*Entry
	byMono  []massIndexEntry
	byAvg   []massIndexEntry
}

type massIndexEntry struct {
	mass  float64
	entry *Entry
}

// New builds a Lookup from entries. Entry order is preserved.
// Duplicate canonical IDs or names are rejected; alias collisions
// resolve to the first entry.
func New(cv CV, version string, entries []Entry) (*Lookup, error) {
	l := &Lookup{
		cv:      cv,
		scheme:  SchemeFor(cv),
		version: version,
		entries: make([]*Entry, 0, len(entries)),
		byID:    make(map[string]*Entry, len(entries)*2),
		byName:  make(map[string]*Entry, len(entries)),
	}
	for i := range entries {
		e := &entries[i]
		canonical := strings.ToLower(e.ID)
		if _, ok := l.byID[canonical]; ok {
			return nil, tacerrors.NewLookup(tacerrors.CodeDuplicateID, string(cv), e.ID)
		}
		l.byID[canonical] = e
		for _, alias := range idAliases(canonical) {
			if _, ok := l.byID[alias]; !ok {
				l.byID[alias] = e
			}
		}
		name := foldName(e.Name)
		if _, ok := l.byName[name]; !ok {
			l.byName[name] = e
		}
		if e.MonoisotopicMass != nil {
			l.byMono = append(l.byMono, massIndexEntry{mass: *e.MonoisotopicMass, entry: e})
		}
		if e.AverageMass != nil {
			l.byAvg = append(l.byAvg, massIndexEntry{mass: *e.AverageMass, entry: e})
		}
		l.entries = append(l.entries, e)
	}
	sortByMass := func(a, b massIndexEntry) int {
		if a.mass != b.mass {
			if a.mass < b.mass {
				return -1
			}
			return 1
		}
		return strings.Compare(a.entry.ID, b.entry.ID)
	}
	slices.SortFunc(l.byMono, sortByMass)
	slices.SortFunc(l.byAvg, sortByMass)
	return l, nil
}

// idAliases returns the additional spellings a canonical lowercased id
// is registered under: leading-zero-stripped digit ids, and for
// letter-prefixed accessions the letter-stripped tail and its
// zero-stripped form.
func idAliases(canonical string) []string {
	var aliases []string
	if stripped := stripLeadingZeros(canonical); stripped != canonical {
		aliases = append(aliases, stripped)
	}
	head := 0
	for head < len(canonical) && isLetter(canonical[head]) {
		head++
	}
	if head > 0 && head < len(canonical) {
		tail := canonical[head:]
		aliases = append(aliases, tail)
		if stripped := stripLeadingZeros(tail); stripped != tail {
			aliases = append(aliases, stripped)
		}
	}
	return aliases
}

func stripLeadingZeros(s string) string {
	if !isDigits(s) {
		return s
	}
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// foldName normalizes a term name for case-insensitive comparison.
func foldName(name string) string {
	return cases.Fold().String(name)
}

// CV returns the vocabulary this lookup serves.
func (l *Lookup) CV() CV {
	return l.cv
}

// Version returns the dataset release the lookup was built from.
func (l *Lookup) Version() string {
	return l.version
}

// ByID resolves an accession. The "<CV>:" prefix, leading zeros on
// numeric ids, and the letter prefix of accessions like "AA0038" are
// all optional.
func (l *Lookup) ByID(id string) (*Entry, error) {
	key := strings.ToLower(l.scheme.stripIDPrefix(id))
	if e, ok := l.byID[key]; ok {
		return e, nil
	}
	if stripped := stripLeadingZeros(key); stripped != key {
		if e, ok := l.byID[stripped]; ok {
			return e, nil
		}
	}
	return nil, tacerrors.NotFound(string(l.cv), id)
}

// ByNumber resolves a numeric accession, matching ids regardless of
// zero padding.
func (l *Lookup) ByNumber(id int) (*Entry, error) {
	return l.ByID(strconv.Itoa(id))
}

// ByName resolves a term by preferred label, case-insensitively. The
// vocabulary's single-letter prefix ("U:Acetyl") is optional.
func (l *Lookup) ByName(name string) (*Entry, error) {
	key := foldName(l.scheme.stripNamePrefix(name))
	if e, ok := l.byName[key]; ok {
		return e, nil
	}
	return nil, tacerrors.NotFound(string(l.cv), name)
}

// Get resolves a key that may be a name or an accession.
func (l *Lookup) Get(key string) (*Entry, error) {
	if e, err := l.ByName(key); err == nil {
		return e, nil
	}
	if e, err := l.ByID(key); err == nil {
		return e, nil
	}
	return nil, tacerrors.NotFound(string(l.cv), key)
}

// Find is the ok-variant of Get.
func (l *Lookup) Find(key string) (*Entry, bool) {
	e, err := l.Get(key)
	if err != nil {
		return nil, false
	}
	return e, true
}

// Contains reports whether key resolves to a term.
func (l *Lookup) Contains(key string) bool {
	_, ok := l.Find(key)
	return ok
}

// MassWithin returns the terms whose mass lies within the query's
// tolerance of target, closest first; ties order by id.
func (l *Lookup) MassWithin(target float64, q MassQuery) []*Entry {
	index := l.byAvg
	if q.Monoisotopic() {
		index = l.byMono
	}
	lo := target - q.Tolerance()
	hi := target + q.Tolerance()
	first := sort.Search(len(index), func(i int) bool { return index[i].mass >= lo })
	var matches []*Entry
	for i := first; i < len(index) && index[i].mass <= hi; i++ {
		matches = append(matches, index[i].entry)
	}
	slices.SortStableFunc(matches, func(a, b *Entry) int {
		da, _ := a.Mass(q.Monoisotopic())
		db, _ := b.Mass(q.Monoisotopic())
		if d := math.Abs(da-target) - math.Abs(db-target); d != 0 {
			if d < 0 {
				return -1
			}
			return 1
		}
		return strings.Compare(a.ID, b.ID)
	})
	return matches
}

// ResolveMass returns the single term matching target. With no match
// it reports not-found. With several matches of differing elemental
// composition it reports ambiguous-mass; when all matches share one
// composition the closest is returned.
func (l *Lookup) ResolveMass(target float64, q MassQuery) (*Entry, error) {
	matches := l.MassWithin(target, q)
	if len(matches) == 0 {
		return nil, tacerrors.NewLookupf(tacerrors.CodeNotFound, string(l.cv), formatMass(target),
			"no term within %g", q.Tolerance())
	}
	first := matches[0]
	for _, m := range matches[1:] {
		if m.Formula != first.Formula {
			return nil, tacerrors.NewLookupf(tacerrors.CodeAmbiguousMass, string(l.cv), formatMass(target),
				"%d terms with differing compositions", len(matches))
		}
	}
	return first, nil
}

// Pick narrows the candidate set of Random.
type Pick struct {
	RequireMass        bool
	RequireComposition bool
}

// Random returns a uniformly chosen term satisfying pick. It reports
// empty-table when no term qualifies.
func (l *Lookup) Random(rng *rand.Rand, pick Pick) (*Entry, error) {
	candidates := l.Filter(func(e *Entry) bool {
		if pick.RequireMass && e.MonoisotopicMass == nil {
			return false
		}
		if pick.RequireComposition && e.Composition == nil {
			return false
		}
		return true
	})
	if len(candidates) == 0 {
		return nil, tacerrors.NewLookupf(tacerrors.CodeEmptyTable, string(l.cv), "", "no terms satisfy pick")
	}
	return candidates[rng.IntN(len(candidates))], nil
}

// Filter returns the entries satisfying pred, in stable order.
func (l *Lookup) Filter(pred func(*Entry) bool) []*Entry {
	var out []*Entry
	for _, e := range l.entries {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns all terms in their source order.
func (l *Lookup) Entries() []*Entry {
	return slices.Clone(l.entries)
}

// All iterates the terms in source order.
func (l *Lookup) All() iter.Seq[*Entry] {
	return xiter.Slice(l.entries)
}

// Len returns the number of terms.
func (l *Lookup) Len() int {
	return len(l.entries)
}

func formatMass(mass float64) string {
	return strconv.FormatFloat(mass, 'g', -1, 64)
}

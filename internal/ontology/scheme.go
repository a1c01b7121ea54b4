package ontology

import "strings"

// Scheme describes how a vocabulary spells its accessions: the colon
// prefixes stripped from IDs and the single-letter prefix accepted on
// names, as in ProForma notation ("U:Acetyl").
type Scheme struct {
	CV         CV
	Name       string
	IDPrefixes []string
	NamePrefix string
}

var schemes = map[CV]Scheme{
	CVUnimod: {CV: CVUnimod, Name: "Unimod", IDPrefixes: []string{"UNIMOD:", "U:"}, NamePrefix: "U:"},
	CVPSIMod: {CV: CVPSIMod, Name: "PSI-MOD", IDPrefixes: []string{"MOD:", "M:"}, NamePrefix: "M:"},
	CVRESID:  {CV: CVRESID, Name: "RESID", IDPrefixes: []string{"RESID:", "R:"}, NamePrefix: "R:"},
	CVXLMod:  {CV: CVXLMod, Name: "XLMOD", IDPrefixes: []string{"XLMOD:", "X:"}, NamePrefix: "X:"},
	CVGNO:    {CV: CVGNO, Name: "GNO", IDPrefixes: []string{"GNO:", "G:"}, NamePrefix: "G:"},
}

// SchemeFor returns the accession scheme of a vocabulary. Vocabularies
// without a registered scheme, CUSTOM included, strip only their own
// "<CV>:" prefix.
func SchemeFor(cv CV) Scheme {
	if s, ok := schemes[cv]; ok {
		return s
	}
	return Scheme{CV: cv, Name: string(cv), IDPrefixes: []string{string(cv) + ":"}}
}

// stripIDPrefix removes the first matching colon prefix from key,
// case-insensitively.
func (s Scheme) stripIDPrefix(key string) string {
	for _, prefix := range s.IDPrefixes {
		if len(key) >= len(prefix) && strings.EqualFold(key[:len(prefix)], prefix) {
			return key[len(prefix):]
		}
	}
	return key
}

// stripNamePrefix removes the single-letter name prefix from key,
// case-insensitively.
func (s Scheme) stripNamePrefix(key string) string {
	p := s.NamePrefix
	if p != "" && len(key) >= len(p) && strings.EqualFold(key[:len(p)], p) {
		return key[len(p):]
	}
	return key
}

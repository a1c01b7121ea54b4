// Package protease provides the bundled proteolytic-enzyme table with
// RE2-compatible cleavage-site expressions.
package protease

import (
	"regexp"
	"sync"
)

// Protease is a single enzyme record. Pattern is the cleavage-site regular
// expression source; the compiled form is built once on first use.
type Protease struct {
	ID       string
	Name     string
	FullName string
	Pattern  string

	once sync.Once
	re   *regexp.Regexp
}

// Regexp returns the compiled cleavage pattern. Bundled patterns are
// validated by the package tests, so compilation cannot fail at runtime.
func (p *Protease) Regexp() *regexp.Regexp {
	p.once.Do(func() {
		p.re = regexp.MustCompile(p.Pattern)
	})
	return p.re
}

// CleavageSites returns the number of cleavage-site matches in a sequence.
func (p *Protease) CleavageSites(sequence string) int {
	return len(p.Regexp().FindAllStringIndex(sequence, -1))
}

func (p *Protease) String() string {
	return p.Name
}

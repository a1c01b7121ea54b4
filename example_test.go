package tacular_test

import (
	"fmt"
	"strings"

	"github.com/tacular/tacular"
)

func Example() {
	phospho, err := tacular.Unimod().Get("Phospho")
	if err != nil {
		panic(err)
	}
	mono, _ := phospho.Mass(true)
	fmt.Printf("%s %.6f\n", phospho.Accession(), mono)

	serine, err := tacular.AminoAcids().Get("Ser")
	if err != nil {
		panic(err)
	}
	mass, _ := serine.Mass(true)
	fmt.Printf("%s %.5f\n", serine.Code, mass)

	// Output:
	// UNIMOD:21 79.966331
	// S 87.03203
}

func ExampleLoadOntology() {
	doc := `
name: in-house
version: "1"
modifications:
  - id: "1"
    name: My-Tag
    formula: C2H3NO
`
	custom, err := tacular.LoadOntology(strings.NewReader(doc))
	if err != nil {
		panic(err)
	}
	tag, _ := custom.ByName("my-tag")
	mono, _ := tag.Mass(true)
	fmt.Printf("%s %.6f\n", tag.Name, mono)

	// Output:
	// My-Tag 57.021464
}

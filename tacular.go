// Package tacular bundles the reference data used across mass
// spectrometry tooling: the periodic table, amino acids, proteases,
// fragment ion series, monosaccharides, neutral losses, annotation
// reference molecules, and the common modification vocabularies
// (Unimod, PSI-MOD, RESID, XLMOD, GNO).
//
// Every table is built once on first use and is safe for concurrent
// reads. Lookups accept the spellings found in the wild: accessions
// with or without their CV prefix, zero-padded numeric ids, and
// case-insensitive names. Element symbols alone are case sensitive.
//
// Failed lookups return a typed error from the errors subpackage;
// every Get has a Find variant returning an ok flag instead.
package tacular

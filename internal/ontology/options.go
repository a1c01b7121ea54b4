package ontology

// MassQuery carries the parameters of a mass search. The zero value is
// not useful; start from NewMassQuery and derive with the With
// methods, which copy.
type MassQuery struct {
	tolerance    float64
	monoisotopic bool
}

// NewMassQuery returns the default query: monoisotopic masses with a
// 0.01 Da tolerance.
func NewMassQuery() MassQuery {
	return MassQuery{
		tolerance:    0.01,
		monoisotopic: true,
	}
}

// WithTolerance sets the symmetric tolerance window in Daltons.
func (q MassQuery) WithTolerance(tolerance float64) MassQuery {
	q.tolerance = tolerance
	return q
}

// WithAverage switches the query to average masses.
func (q MassQuery) WithAverage() MassQuery {
	q.monoisotopic = false
	return q
}

// WithMonoisotopic switches the query to monoisotopic masses.
func (q MassQuery) WithMonoisotopic() MassQuery {
	q.monoisotopic = true
	return q
}

// Tolerance returns the tolerance window in Daltons.
func (q MassQuery) Tolerance() float64 {
	return q.tolerance
}

// Monoisotopic reports whether the query searches monoisotopic masses.
func (q MassQuery) Monoisotopic() bool {
	return q.monoisotopic
}

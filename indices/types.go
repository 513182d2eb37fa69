package indices

// AlphaTriple holds the three continuous indices evaluated at one α.
type AlphaTriple struct {
	Varian    float64
	InvVarian float64
	NMCI      float64
}

// Values is the full rationality-measures result: the three parameter-free
// indices, plus one AlphaTriple per requested α.
type Values struct {
	Afriat   float64
	HM       float64
	Swaps    float64
	PerAlpha []AlphaTriple
}

// Flatten lays Values out as the length 3+3·len(PerAlpha) vector
// [Afriat, HM, Swaps, Varian(α0), InvVarian(α0), NMCI(α0), Varian(α1), ...].
func (v *Values) Flatten() []float64 {
	out := make([]float64, 0, 3+3*len(v.PerAlpha))
	out = append(out, v.Afriat, v.HM, v.Swaps)
	for _, t := range v.PerAlpha {
		out = append(out, t.Varian, t.InvVarian, t.NMCI)
	}

	return out
}

package spectrum

import "gonum.org/v1/gonum/floats"

// Stats holds descriptive statistics of a binned power spectrum.
type Stats struct {
	Bins      int     // number of non-empty shells
	Modes     float64 // fold-weighted number of contributing frequency cells
	Total     float64 // sum of P(k) over shells
	Mean      float64 // average P(k) per shell
	Peak      float64 // largest P(k)
	PeakK     float64 // bin-center wavenumber of the peak
	KMin      float64 // smallest emitted bin center
	KMax      float64 // largest emitted bin center
}

// Calculate computes descriptive statistics from a spectrum table.
func Calculate(t Table) Stats {
	if len(t) == 0 {
		return Stats{}
	}

	s := Stats{
		Bins:  len(t),
		Peak:  t[0].Power,
		PeakK: t[0].K,
		KMin:  t[0].K,
		KMax:  t[len(t)-1].K,
	}

	powers := make([]float64, len(t))
	for i, b := range t {
		powers[i] = b.Power
		s.Modes += b.Count
		if b.Power > s.Peak {
			s.Peak = b.Power
			s.PeakK = b.K
		}
	}

	s.Total = floats.Sum(powers)
	s.Mean = s.Total / float64(len(t))
	return s
}

package fourier

import "math"

// FoldIndex maps an array index along a full-length transform axis to its
// signed frequency multiple: m for m <= n/2, m-n otherwise.
func FoldIndex(m, n int) int {
	if m <= n/2 {
		return m
	}
	return m - n
}

// Nyquist returns the Nyquist wavenumber π·n/boxSize of an n-cell grid
// covering a box of side boxSize.
func Nyquist(n int, boxSize float64) float64 {
	return math.Pi * float64(n) / boxSize
}

// Wavevector returns the physical wavevector (kx, ky, kz) of the amplitude
// stored at logical index (i, j, k). The i and j axes run over the full grid
// and fold to negative frequencies above n/2; the third axis stores only the
// non-redundant half 0..n/2 and never folds.
func Wavevector(i, j, k, n int, boxSize float64) (kx, ky, kz float64) {
	kf := 2 * math.Pi / boxSize
	kx = kf * float64(FoldIndex(i, n))
	ky = kf * float64(FoldIndex(j, n))
	kz = kf * float64(k)
	return kx, ky, kz
}

package spectrum

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-powerspec/fourier"
)

// Errors returned by the binner.
var (
	ErrGridMismatch    = errors.New("spectrum: grid size or box size mismatch")
	ErrInvalidBinCount = errors.New("spectrum: bin count must be >= 1")
	ErrEmptySpectrum   = errors.New("spectrum: no frequency cell fell into any bin")
	ErrNilSpectrum     = errors.New("spectrum: nil input spectrum")
)

// foldWeight returns the Hermitian multiplicity of the stored cell with
// third-axis index k. Cells on the kz=0 and kz=n/2 planes are their own
// conjugate partners and count once; every other stored cell stands for
// itself and its unstored conjugate mirror.
func foldWeight(k, n int) float64 {
	if k == 0 || k == n/2 {
		return 1
	}
	return 2
}

// binIndex places a wavenumber magnitude into one of nBins equal-width bins
// spanning (0, nBins·binWidth]. Bins are half-open [lo, hi); the final bin
// is closed on both ends so the largest achievable magnitude is kept.
// Returns -1 for magnitudes outside the range (including k=0).
func binIndex(mag, binWidth float64, nBins int) int {
	if mag <= 0 || binWidth <= 0 {
		return -1
	}

	idx := int(mag / binWidth)
	if idx >= nBins {
		if mag <= float64(nBins)*binWidth {
			return nBins - 1
		}
		return -1
	}
	return idx
}

// Cross computes the radially binned cross-power spectrum of a and b over
// nBins equal-width linear bins covering (0, sqrt(3)·k_nyquist]. The k=0
// mode carries the mean rather than fluctuation power and is excluded.
// Bins that receive no cells are omitted from the result.
//
// Passing the same spectrum twice yields the auto-power spectrum; the cross
// term degenerates to |F|² with no special casing.
func Cross(a, b *fourier.Spectrum, nBins int) (Table, error) {
	if a == nil || b == nil {
		return nil, ErrNilSpectrum
	}
	if a.N != b.N || a.BoxSize != b.BoxSize {
		return nil, fmt.Errorf("%w: n %d vs %d, box %g vs %g",
			ErrGridMismatch, a.N, b.N, a.BoxSize, b.BoxSize)
	}
	if nBins < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBinCount, nBins)
	}

	n := a.N
	half := a.HalfLen()
	kMax := math.Sqrt(3) * fourier.Nyquist(n, a.BoxSize)
	binWidth := kMax / float64(nBins)
	norm := math.Pow(a.BoxSize, 3) / math.Pow(float64(n), 6)
	kf := 2 * math.Pi / a.BoxSize

	// Planes along the first axis are independent, so fan them out over
	// workers with private accumulators merged below.
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	powerParts := make([][]float64, workers)
	countParts := make([][]float64, workers)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()

			power := make([]float64, nBins)
			count := make([]float64, nBins)

			for i := lo; i < hi; i++ {
				kx := kf * float64(fourier.FoldIndex(i, n))
				for j := 0; j < n; j++ {
					ky := kf * float64(fourier.FoldIndex(j, n))
					kxy := kx*kx + ky*ky
					rowA := a.Data[(i*n+j)*half : (i*n+j+1)*half]
					rowB := b.Data[(i*n+j)*half : (i*n+j+1)*half]

					for k := 0; k < half; k++ {
						if i == 0 && j == 0 && k == 0 {
							continue // mean mode, not fluctuation power
						}
						kz := kf * float64(k)
						bin := binIndex(math.Sqrt(kxy+kz*kz), binWidth, nBins)
						if bin < 0 {
							continue
						}

						va := rowA[k]
						vb := rowB[k]
						cross := real(va)*real(vb) + imag(va)*imag(vb)
						weight := foldWeight(k, n)
						power[bin] += weight * cross * norm
						count[bin] += weight
					}
				}
			}

			powerParts[w] = power
			countParts[w] = count
		}(w, lo, hi)
	}
	wg.Wait()

	power := make([]float64, nBins)
	count := make([]float64, nBins)
	for w := 0; w < workers; w++ {
		if powerParts[w] == nil {
			continue
		}
		floats.Add(power, powerParts[w])
		floats.Add(count, countParts[w])
	}

	table := make(Table, 0, nBins)
	for bin := 0; bin < nBins; bin++ {
		if count[bin] == 0 {
			continue
		}
		table = append(table, Bin{
			K:     (float64(bin) + 0.5) * binWidth,
			Power: power[bin] / count[bin],
			Count: count[bin],
		})
	}
	if len(table) == 0 {
		return nil, ErrEmptySpectrum
	}
	return table, nil
}

// Auto computes the auto-power spectrum of s. Identical to Cross(s, s, nBins).
func Auto(s *fourier.Spectrum, nBins int) (Table, error) {
	return Cross(s, s, nBins)
}

// Power returns |F|² for every stored frequency cell, in storage order.
func Power(s *fourier.Spectrum) []float64 {
	if s == nil || len(s.Data) == 0 {
		return nil
	}

	re := make([]float64, len(s.Data))
	im := make([]float64, len(s.Data))
	for i, c := range s.Data {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(s.Data))
	vecmath.Power(out, re, im)
	return out
}

// TotalPower returns the fold-weighted, normalized sum of |F|² over the
// full frequency grid: boxSize³/n⁶ · Σ|F|². By Parseval's theorem for the
// unnormalized transform this equals boxSize³/n³ · Σf² over the input
// samples.
func TotalPower(s *fourier.Spectrum) float64 {
	if s == nil || s.N == 0 {
		return 0
	}

	n := s.N
	half := s.HalfLen()
	power := Power(s)

	total := 0.0
	for idx, v := range power {
		total += foldWeight(idx%half, n) * v
	}
	return total * math.Pow(s.BoxSize, 3) / math.Pow(float64(n), 6)
}

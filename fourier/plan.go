package fourier

import (
	"errors"
	"fmt"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-powerspec/grid"
)

// Errors returned by plan construction and transforms.
var (
	ErrUnsupportedSize = errors.New("fourier: unsupported grid size")
	ErrSizeMismatch    = errors.New("fourier: field does not match plan size")
	ErrNilField        = errors.New("fourier: nil field")
)

// Spectrum holds the frequency-space amplitudes of a real field on an n³
// grid. Hermitian symmetry of the real-input transform makes half of the
// third axis redundant, so only n/2+1 bins are stored along it: the
// amplitude for logical index (i, j, k) lives at (i*n+j)*(n/2+1) + k.
type Spectrum struct {
	N       int
	BoxSize float64
	Data    []complex128
}

// HalfLen returns the stored length n/2+1 of the third axis.
func (s *Spectrum) HalfLen() int {
	return s.N/2 + 1
}

// At returns the amplitude at logical index (i, j, k).
func (s *Spectrum) At(i, j, k int) complex128 {
	return s.Data[(i*s.N+j)*s.HalfLen()+k]
}

// Plan performs forward real-to-complex 3D transforms for one grid size.
// The 1D backend plan is created once and reused across Transform calls.
// A Plan is not safe for concurrent use; each goroutine needs its own.
type Plan struct {
	n    int
	half int
	line *algofft.Plan[complex128]
	buf  []complex128
}

// NewPlan creates a transform plan for n×n×n real input. n must be even
// (the half-spectrum layout needs a Nyquist plane) and a size the FFT
// backend supports.
func NewPlan(n int) (*Plan, error) {
	if n <= 0 || n%2 != 0 {
		return nil, fmt.Errorf("%w: n=%d (need even n > 0)", ErrUnsupportedSize, n)
	}

	line, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fourier: creating FFT plan for n=%d: %w", n, err)
	}

	return &Plan{
		n:    n,
		half: n/2 + 1,
		line: line,
		buf:  make([]complex128, n),
	}, nil
}

// N returns the grid size the plan transforms.
func (p *Plan) N() int {
	return p.n
}

// Transform computes the unnormalized forward DFT of field, keeping the
// non-redundant half of the third axis. The input field is read-only.
func (p *Plan) Transform(f *grid.Field) (*Spectrum, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if f.N != p.n {
		return nil, fmt.Errorf("%w: field n=%d, plan n=%d", ErrSizeMismatch, f.N, p.n)
	}
	if len(f.Data) != p.n*p.n*p.n {
		return nil, fmt.Errorf("%w: %d samples for n=%d", grid.ErrInvalidGridSize, len(f.Data), f.N)
	}

	n := p.n
	half := p.half
	out := make([]complex128, n*n*half)

	// Third axis: each contiguous real line is packed into the complex
	// scratch line, transformed, and only bins 0..n/2 kept.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			src := f.Data[(i*n+j)*n : (i*n+j+1)*n]
			for m, v := range src {
				p.buf[m] = complex(v, 0)
			}
			if err := p.line.Forward(p.buf, p.buf); err != nil {
				return nil, fmt.Errorf("fourier: z-axis transform at (%d,%d): %w", i, j, err)
			}
			copy(out[(i*n+j)*half:(i*n+j)*half+half], p.buf[:half])
		}
	}

	// Second axis: stride half between consecutive j for fixed (i, k).
	for i := 0; i < n; i++ {
		for k := 0; k < half; k++ {
			seg := out[i*n*half+k:]
			if err := p.line.ForwardStrided(seg, seg, half); err != nil {
				return nil, fmt.Errorf("fourier: y-axis transform at (%d,%d): %w", i, k, err)
			}
		}
	}

	// First axis: stride n·half between consecutive i for fixed (j, k).
	for j := 0; j < n; j++ {
		for k := 0; k < half; k++ {
			seg := out[j*half+k:]
			if err := p.line.ForwardStrided(seg, seg, n*half); err != nil {
				return nil, fmt.Errorf("fourier: x-axis transform at (%d,%d): %w", j, k, err)
			}
		}
	}

	return &Spectrum{N: n, BoxSize: f.BoxSize, Data: out}, nil
}

// Transform creates a one-shot plan for the field's size and runs it.
// Callers transforming several fields of the same size should create a
// Plan once and reuse it.
func Transform(f *grid.Field) (*Spectrum, error) {
	if f == nil {
		return nil, ErrNilField
	}

	p, err := NewPlan(f.N)
	if err != nil {
		return nil, err
	}
	return p.Transform(f)
}

package grid

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Errors returned by field construction and statistics.
var (
	ErrInvalidGridSize = errors.New("grid: invalid grid size")
	ErrInvalidBoxSize  = errors.New("grid: box size must be > 0")
	ErrZeroMean        = errors.New("grid: zero mean, density contrast undefined")
)

// Field is a real scalar field sampled on an n×n×n grid covering a cubic
// volume of physical side BoxSize. Samples are stored row-major: the value
// at grid coordinates (i, j, k) lives at index i*n*n + j*n + k.
//
// A Field is constructed once and treated as immutable afterwards. Units of
// BoxSize and Data are the caller's responsibility; nothing here rescales.
type Field struct {
	N       int
	BoxSize float64
	Data    []float64
}

// New validates the grid parameters and wraps the samples in a Field.
// The sample slice is not copied.
func New(n int, boxSize float64, data []float64) (*Field, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidGridSize, n)
	}
	if boxSize <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidBoxSize, boxSize)
	}
	if len(data) != n*n*n {
		return nil, fmt.Errorf("%w: %d samples for n=%d (want %d)", ErrInvalidGridSize, len(data), n, n*n*n)
	}

	return &Field{N: n, BoxSize: boxSize, Data: data}, nil
}

// At returns the sample at grid coordinates (i, j, k).
func (f *Field) At(i, j, k int) float64 {
	return f.Data[(i*f.N+j)*f.N+k]
}

// Mean returns the arithmetic mean of all samples.
func (f *Field) Mean() float64 {
	return stat.Mean(f.Data, nil)
}

// Contrast returns a new field holding the density contrast
// delta = (x - mean) / mean. The grid tooling stores density fields in
// this convention before correlation.
func (f *Field) Contrast() (*Field, error) {
	mean := f.Mean()
	if mean == 0 {
		return nil, ErrZeroMean
	}

	out := make([]float64, len(f.Data))
	for i, v := range f.Data {
		out[i] = (v - mean) / mean
	}

	return &Field{N: f.N, BoxSize: f.BoxSize, Data: out}, nil
}

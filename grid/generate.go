package grid

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic synthetic fields from a shared grid
// geometry. Useful for validation runs and tests.
type Generator struct {
	n       int
	boxSize float64
	seed    int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured field generator for an n-cell grid
// covering a box of side boxSize.
func NewGenerator(n int, boxSize float64, opts ...Option) *Generator {
	g := &Generator{n: n, boxSize: boxSize, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Constant generates a field with every sample equal to value.
func (g *Generator) Constant(value float64) (*Field, error) {
	data := make([]float64, g.n*g.n*g.n)
	for i := range data {
		data[i] = value
	}
	return New(g.n, g.boxSize, data)
}

// PlaneWave generates amplitude·cos(2π(mx·i + my·j + mz·k)/n), a single
// Fourier mode with integer wavevector multiples (mx, my, mz).
func (g *Generator) PlaneWave(mx, my, mz int, amplitude float64) (*Field, error) {
	n := g.n
	data := make([]float64, n*n*n)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				phase := step * float64(mx*i+my*j+mz*k)
				data[(i*n+j)*n+k] = amplitude * math.Cos(phase)
			}
		}
	}
	return New(n, g.boxSize, data)
}

// DiagonalSinusoid generates sin(θ·π/2) with θ = (i+j+k)/n · boxSize/wavelength,
// a sinusoid running along the grid diagonal. Handy as a mock density field
// with a single controllable length scale.
func (g *Generator) DiagonalSinusoid(wavelength float64) (*Field, error) {
	if wavelength <= 0 {
		return nil, fmt.Errorf("grid: sinusoid wavelength must be > 0: %g", wavelength)
	}

	n := g.n
	data := make([]float64, n*n*n)
	scale := g.boxSize / wavelength
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				theta := float64(i+j+k) / float64(n) * scale
				data[(i*n+j)*n+k] = math.Sin(theta * math.Pi / 2)
			}
		}
	}
	return New(n, g.boxSize, data)
}

// WhiteNoise generates deterministic uniform noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64) (*Field, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("grid: noise amplitude must be >= 0: %g", amplitude)
	}

	data := make([]float64, g.n*g.n*g.n)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return New(g.n, g.boxSize, data)
}

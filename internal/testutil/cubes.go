package testutil

import (
	"math"
	"math/rand"
)

// ConstantCube returns n³ samples all equal to value, row-major.
func ConstantCube(n int, value float64) []float64 {
	out := make([]float64, n*n*n)
	for i := range out {
		out[i] = value
	}
	return out
}

// PlaneWaveCube returns amp·cos(2π(mx·i + my·j + mz·k)/n) samples in
// row-major order.
func PlaneWaveCube(n, mx, my, mz int, amp float64) []float64 {
	out := make([]float64, n*n*n)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				out[(i*n+j)*n+k] = amp * math.Cos(step*float64(mx*i+my*j+mz*k))
			}
		}
	}
	return out
}

// NoiseCube returns n³ uniform samples in [-amp, amp] from a fixed seed.
func NoiseCube(n int, seed int64, amp float64) []float64 {
	out := make([]float64, n*n*n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amp
	}
	return out
}

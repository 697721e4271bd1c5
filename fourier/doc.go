// Package fourier provides the forward real-to-complex 3D discrete Fourier
// transform of a grid field, together with the frequency-grid geometry of
// its output (index folding, wavevectors, Nyquist wavenumber).
//
// The package does not implement the FFT itself. One-dimensional transforms
// are delegated to the algo-fft backend and assembled into a separable 3D
// transform by passes over the three axes. The forward transform is
// unnormalized; spectrum consumers apply the physical normalization.
package fourier

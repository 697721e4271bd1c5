// Package spectrum turns frequency-space fields into one-dimensional
// cross- and auto-power spectra P(k), radially binned by wavenumber
// magnitude.
//
// The cross-power of two transformed fields F1, F2 at a frequency cell is
// Re(F1·conj(F2)), normalized by boxSize³/n⁶ to match the discretized
// Fourier-transform-to-continuum convention (the backend forward transform
// is unnormalized). Because only the non-redundant half of the third axis
// is stored, interior cells carry Hermitian fold weight 2 and the kz=0 and
// Nyquist planes weight 1, so the binned sums represent the full n³ grid.
package spectrum

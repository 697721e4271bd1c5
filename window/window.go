// Package window deconvolves the frequency-space smoothing introduced by
// the mass-assignment scheme (NGP or CIC) used to deposit point data onto
// the input grids.
//
// Both kernels approach unity as k → 0 and fall towards zero at the folding
// boundary, where the correction becomes ill-conditioned. Cells whose kernel
// magnitude falls below the configured floor are skipped (left unmodified)
// by default; see Options.
package window

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-powerspec/fourier"
)

// Errors returned by window correction.
var (
	ErrUnknownScheme        = errors.New("window: unknown assignment scheme")
	ErrDegenerateCorrection = errors.New("window: degenerate window correction")
	ErrNilSpectrum          = errors.New("window: nil spectrum")
)

// Scheme identifies the mass-assignment scheme whose smoothing kernel is
// deconvolved.
type Scheme int

const (
	// SchemeNone leaves the spectrum unmodified.
	SchemeNone Scheme = iota

	// SchemeNGP deconvolves nearest-grid-point assignment:
	// W = sinc(ux)·sinc(uy)·sinc(uz).
	SchemeNGP

	// SchemeCIC deconvolves cloud-in-cell assignment:
	// W = sinc²(ux)·sinc²(uy)·sinc²(uz).
	SchemeCIC
)

// String returns the canonical scheme name.
func (s Scheme) String() string {
	switch s {
	case SchemeNone:
		return "none"
	case SchemeNGP:
		return "ngp"
	case SchemeCIC:
		return "cic"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// ParseScheme maps a configuration or CLI name to a Scheme. The empty
// string and "none" both select SchemeNone.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return SchemeNone, nil
	case "ngp":
		return SchemeNGP, nil
	case "cic":
		return SchemeCIC, nil
	default:
		return SchemeNone, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
}

// Options configures degenerate-kernel handling during correction.
type Options struct {
	// Floor is the kernel magnitude below which the correction is considered
	// ill-conditioned. Cells below the floor are left unmodified and counted
	// unless Strict is set.
	Floor float64

	// Strict turns a sub-floor kernel into ErrDegenerateCorrection instead
	// of a skip.
	Strict bool
}

// DefaultOptions returns the default correction options.
func DefaultOptions() Options {
	return Options{Floor: 1e-12}
}

// Correct divides every amplitude of s by the assignment kernel of the given
// scheme, in place, and returns the number of cells skipped because the
// kernel magnitude fell below opts.Floor.
//
// The per-axis kernel argument is u = π·k_axis/k_nyquist. sinc(0) = 1, so
// the large-scale modes are left essentially untouched.
func Correct(s *fourier.Spectrum, scheme Scheme, opts Options) (int, error) {
	if s == nil {
		return 0, ErrNilSpectrum
	}
	switch scheme {
	case SchemeNone:
		return 0, nil
	case SchemeNGP, SchemeCIC:
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownScheme, int(scheme))
	}
	if opts.Floor <= 0 {
		opts.Floor = DefaultOptions().Floor
	}

	n := s.N
	half := s.HalfLen()
	kNyquist := fourier.Nyquist(n, s.BoxSize)

	// The kernel is separable, so evaluate each axis once. full[m] serves
	// both folded axes; the third axis only needs the non-negative half.
	full := make([]float64, n)
	for m := range full {
		kAxis := 2 * math.Pi / s.BoxSize * float64(fourier.FoldIndex(m, n))
		full[m] = sinc(math.Pi * kAxis / kNyquist)
	}
	if scheme == SchemeCIC {
		for m := range full {
			full[m] *= full[m]
		}
	}
	zAxis := full[:half]

	skipped := 0
	for i := 0; i < n; i++ {
		wi := full[i]
		for j := 0; j < n; j++ {
			wij := wi * full[j]
			row := s.Data[(i*n+j)*half : (i*n+j+1)*half]
			for k := 0; k < half; k++ {
				w := wij * zAxis[k]
				if math.Abs(w) < opts.Floor {
					if opts.Strict {
						return skipped, fmt.Errorf("%w: |W|=%g at (%d,%d,%d)", ErrDegenerateCorrection, math.Abs(w), i, j, k)
					}
					skipped++
					continue
				}
				row[k] /= complex(w, 0)
			}
		}
	}

	return skipped, nil
}

// sinc(x) = sin(x)/x with sinc(0) = 1.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

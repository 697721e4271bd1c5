package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-powerspec/fourier"
	"github.com/cwbudde/algo-powerspec/grid"
	"github.com/cwbudde/algo-powerspec/internal/testutil"
)

func transformCube(t *testing.T, n int, boxSize float64, data []float64) *fourier.Spectrum {
	t.Helper()
	f, err := grid.New(n, boxSize, data)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	s, err := fourier.Transform(f)
	if err != nil {
		t.Fatalf("fourier.Transform: %v", err)
	}
	return s
}

func TestFoldWeight(t *testing.T) {
	n := 8
	for k := 0; k < n/2+1; k++ {
		want := 2.0
		if k == 0 || k == n/2 {
			want = 1
		}
		if got := foldWeight(k, n); got != want {
			t.Fatalf("foldWeight(%d, %d) = %v, want %v", k, n, got, want)
		}
	}
}

func TestFoldWeightCoversFullGrid(t *testing.T) {
	// The weighted number of stored cells must equal n³ for the half-grid to
	// represent the full frequency grid.
	for _, n := range []int{2, 4, 8} {
		total := 0.0
		for k := 0; k < n/2+1; k++ {
			total += foldWeight(k, n)
		}
		if total != float64(n) {
			t.Fatalf("n=%d: weighted third-axis length = %v, want %d", n, total, n)
		}
	}
}

func TestBinIndex(t *testing.T) {
	tests := []struct {
		mag  float64
		want int
	}{
		{0, -1},
		{-1, -1},
		{0.5, 0},
		{0.999, 0},
		{1.0, 1}, // half-open bins: a boundary starts the next bin
		{3.999, 3},
		{4.0, 3}, // final bin closed at the top
		{4.1, -1},
	}
	for _, tt := range tests {
		if got := binIndex(tt.mag, 1.0, 4); got != tt.want {
			t.Fatalf("binIndex(%v) = %d, want %d", tt.mag, got, tt.want)
		}
	}
}

func TestCrossValidation(t *testing.T) {
	a := transformCube(t, 8, 8, testutil.NoiseCube(8, 1, 1.0))
	b := transformCube(t, 4, 8, testutil.NoiseCube(4, 2, 1.0))
	c := transformCube(t, 8, 16, testutil.NoiseCube(8, 3, 1.0))

	if _, err := Cross(a, b, 4); !errors.Is(err, ErrGridMismatch) {
		t.Fatalf("different n: err = %v, want ErrGridMismatch", err)
	}
	if _, err := Cross(a, c, 4); !errors.Is(err, ErrGridMismatch) {
		t.Fatalf("different box: err = %v, want ErrGridMismatch", err)
	}
	if _, err := Cross(a, a, 0); !errors.Is(err, ErrInvalidBinCount) {
		t.Fatalf("zero bins: err = %v, want ErrInvalidBinCount", err)
	}
	if _, err := Cross(nil, a, 4); !errors.Is(err, ErrNilSpectrum) {
		t.Fatalf("nil input: err = %v, want ErrNilSpectrum", err)
	}
}

func TestCrossSymmetry(t *testing.T) {
	n := 8
	a := transformCube(t, n, 8, testutil.NoiseCube(n, 4, 1.0))
	b := transformCube(t, n, 8, testutil.NoiseCube(n, 5, 1.0))

	ab, err := Cross(a, b, 6)
	if err != nil {
		t.Fatalf("Cross(a, b): %v", err)
	}
	ba, err := Cross(b, a, 6)
	if err != nil {
		t.Fatalf("Cross(b, a): %v", err)
	}

	if len(ab) != len(ba) {
		t.Fatalf("table lengths differ: %d vs %d", len(ab), len(ba))
	}
	for i := range ab {
		if ab[i] != ba[i] {
			t.Fatalf("bin %d: %+v != %+v", i, ab[i], ba[i])
		}
	}
}

func TestAutoNonNegative(t *testing.T) {
	n := 8
	s := transformCube(t, n, 8, testutil.NoiseCube(n, 6, 1.0))

	table, err := Auto(s, 5)
	if err != nil {
		t.Fatalf("Auto: %v", err)
	}
	for _, b := range table {
		if b.Power < 0 {
			t.Fatalf("negative auto power %v at k=%v", b.Power, b.K)
		}
		if b.Count <= 0 {
			t.Fatalf("non-positive count %v at k=%v", b.Count, b.K)
		}
	}
}

func TestAutoMatchesCrossWithItself(t *testing.T) {
	n := 8
	s := transformCube(t, n, 8, testutil.NoiseCube(n, 7, 1.0))

	auto, err := Auto(s, 4)
	if err != nil {
		t.Fatalf("Auto: %v", err)
	}
	cross, err := Cross(s, s, 4)
	if err != nil {
		t.Fatalf("Cross: %v", err)
	}
	if len(auto) != len(cross) {
		t.Fatalf("table lengths differ")
	}
	for i := range auto {
		if auto[i] != cross[i] {
			t.Fatalf("bin %d: %+v != %+v", i, auto[i], cross[i])
		}
	}
}

func TestParsevalConsistency(t *testing.T) {
	// The fold-weighted |F|² sum over the frequency grid must equal the
	// squared-sample sum scaled by boxSize³/n³ (unnormalized transform).
	n := 8
	boxSize := 5.0
	data := testutil.NoiseCube(n, 8, 1.0)
	s := transformCube(t, n, boxSize, data)

	sumSq := 0.0
	for _, v := range data {
		sumSq += v * v
	}
	want := sumSq * math.Pow(boxSize, 3) / float64(n*n*n)

	got := TotalPower(s)
	testutil.RequireNear(t, got, want, 1e-9*math.Abs(want))
}

func TestConstantFieldHasNoFluctuationPower(t *testing.T) {
	n := 8
	s := transformCube(t, n, 8, testutil.ConstantCube(n, 3.0))

	table, err := Auto(s, 4)
	if err != nil {
		t.Fatalf("Auto: %v", err)
	}
	// The k=0 mode is excluded, and a constant field fluctuates nowhere.
	for _, b := range table {
		if math.Abs(b.Power) > 1e-12 {
			t.Fatalf("constant field leaked power %v into k=%v", b.Power, b.K)
		}
	}
}

func TestSinusoidPowerConcentration(t *testing.T) {
	// A single plane-wave mode with |k| = 2π/8 must land in the first of
	// four bins over (0, sqrt(3)·π]; every other bin stays near zero.
	n := 8
	boxSize := 8.0
	s := transformCube(t, n, boxSize, testutil.PlaneWaveCube(n, 1, 0, 0, 1.0))

	table, err := Auto(s, 4)
	if err != nil {
		t.Fatalf("Auto: %v", err)
	}

	kMode := 2 * math.Pi / boxSize
	binWidth := math.Sqrt(3) * fourier.Nyquist(n, boxSize) / 4
	modeBin := int(kMode / binWidth)
	if modeBin != 0 {
		t.Fatalf("test setup: mode bin = %d, want 0", modeBin)
	}

	peak := 0.0
	peakK := 0.0
	for _, b := range table {
		if b.Power > peak {
			peak = b.Power
			peakK = b.K
		}
	}
	if peak <= 0 {
		t.Fatal("no power found")
	}
	wantCenter := (float64(modeBin) + 0.5) * binWidth
	testutil.RequireNear(t, peakK, wantCenter, 1e-12)

	for _, b := range table {
		if b.K == peakK {
			continue
		}
		if math.Abs(b.Power) > 1e-10*peak {
			t.Fatalf("power %v leaked into bin k=%v", b.Power, b.K)
		}
	}
}

func TestCrossOfOrthogonalModesVanishes(t *testing.T) {
	// Two disjoint single modes share no frequency cell, so their cross
	// spectrum is zero everywhere.
	n := 8
	a := transformCube(t, n, 8, testutil.PlaneWaveCube(n, 1, 0, 0, 1.0))
	b := transformCube(t, n, 8, testutil.PlaneWaveCube(n, 0, 2, 0, 1.0))

	table, err := Cross(a, b, 4)
	if err != nil {
		t.Fatalf("Cross: %v", err)
	}
	for _, bin := range table {
		if math.Abs(bin.Power) > 1e-10 {
			t.Fatalf("orthogonal modes produced power %v at k=%v", bin.Power, bin.K)
		}
	}
}

func TestPowerMatchesAmplitudes(t *testing.T) {
	n := 4
	s := transformCube(t, n, 4, testutil.NoiseCube(n, 10, 1.0))

	pw := Power(s)
	if len(pw) != len(s.Data) {
		t.Fatalf("length mismatch: %d vs %d", len(pw), len(s.Data))
	}
	for i, c := range s.Data {
		want := real(c)*real(c) + imag(c)*imag(c)
		if math.Abs(pw[i]-want) > 1e-9*(want+1) {
			t.Fatalf("index %d: got %v, want %v", i, pw[i], want)
		}
	}
}

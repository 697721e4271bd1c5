package grid

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-powerspec/internal/testutil"
)

func TestGeneratorConstant(t *testing.T) {
	g := NewGenerator(4, 10)
	f, err := g.Constant(3.5)
	if err != nil {
		t.Fatalf("Constant: %v", err)
	}
	for i, v := range f.Data {
		if v != 3.5 {
			t.Fatalf("index %d: got %v, want 3.5", i, v)
		}
	}
}

func TestGeneratorPlaneWave(t *testing.T) {
	n := 8
	g := NewGenerator(n, 8)
	f, err := g.PlaneWave(1, 0, 0, 2.0)
	if err != nil {
		t.Fatalf("PlaneWave: %v", err)
	}

	for i := 0; i < n; i++ {
		want := 2 * math.Cos(2*math.Pi*float64(i)/float64(n))
		if math.Abs(f.At(i, 3, 5)-want) > 1e-12 {
			t.Fatalf("i=%d: got %v, want %v", i, f.At(i, 3, 5), want)
		}
	}

	// A single non-zero mode has zero mean.
	testutil.RequireNear(t, f.Mean(), 0, 1e-12)
}

func TestGeneratorDiagonalSinusoid(t *testing.T) {
	n := 8
	boxSize := 50.0
	wavelength := 5.0
	g := NewGenerator(n, boxSize)
	f, err := g.DiagonalSinusoid(wavelength)
	if err != nil {
		t.Fatalf("DiagonalSinusoid: %v", err)
	}

	theta := float64(1+2+3) / float64(n) * boxSize / wavelength
	testutil.RequireNear(t, f.At(1, 2, 3), math.Sin(theta*math.Pi/2), 1e-12)

	// Depends only on i+j+k.
	testutil.RequireNear(t, f.At(3, 2, 1), f.At(1, 2, 3), 1e-15)

	if _, err := g.DiagonalSinusoid(0); err == nil {
		t.Fatal("expected error for zero wavelength")
	}
}

func TestGeneratorWhiteNoise(t *testing.T) {
	g1 := NewGenerator(4, 1, WithSeed(42))
	g2 := NewGenerator(4, 1, WithSeed(42))

	f1, err := g1.WhiteNoise(0.5)
	if err != nil {
		t.Fatalf("WhiteNoise: %v", err)
	}
	f2, err := g2.WhiteNoise(0.5)
	if err != nil {
		t.Fatalf("WhiteNoise: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, f1.Data, f2.Data, 0)

	for i, v := range f1.Data {
		if v < -0.5 || v > 0.5 {
			t.Fatalf("index %d: %v outside [-0.5, 0.5]", i, v)
		}
	}

	if _, err := g1.WhiteNoise(-1); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}

package spectrum

import (
	"math"
	"testing"
)

func TestPowerAndMagnitude(t *testing.T) {
	in := []complex128{complex(3, 4), complex(0, 0), complex(-1, 1)}

	pow := Power(in)
	mag := Magnitude(in)

	wantPow := []float64{25, 0, 2}
	for i := range wantPow {
		if math.Abs(pow[i]-wantPow[i]) > 1e-12 {
			t.Fatalf("Power[%d]=%v, want %v", i, pow[i], wantPow[i])
		}

		if math.Abs(mag[i]-math.Sqrt(wantPow[i])) > 1e-12 {
			t.Fatalf("Magnitude[%d]=%v, want %v", i, mag[i], math.Sqrt(wantPow[i]))
		}
	}
}

func TestPowerEmpty(t *testing.T) {
	if out := Power(nil); out != nil {
		t.Fatalf("Power(nil)=%v, want nil", out)
	}

	if out := Magnitude(nil); out != nil {
		t.Fatalf("Magnitude(nil)=%v, want nil", out)
	}
}

func TestPowerInto(t *testing.T) {
	in := []complex128{complex(1, 2), complex(2, 2)}
	dst := make([]float64, 2)

	PowerInto(dst, in)

	if math.Abs(dst[0]-5) > 1e-12 || math.Abs(dst[1]-8) > 1e-12 {
		t.Fatalf("PowerInto = %v, want [5 8]", dst)
	}

	// Mismatched destination is a no-op.
	short := []float64{-1}
	PowerInto(short, in)
	if short[0] != -1 {
		t.Fatalf("PowerInto wrote to mismatched destination: %v", short)
	}
}

func TestFromParts(t *testing.T) {
	re := []float64{3, 0}
	im := []float64{4, 2}
	dst := make([]float64, 2)

	PowerFromParts(dst, re, im)
	if dst[0] != 25 || dst[1] != 4 {
		t.Fatalf("PowerFromParts = %v, want [25 4]", dst)
	}

	MagnitudeFromParts(dst, re, im)
	if dst[0] != 5 || dst[1] != 2 {
		t.Fatalf("MagnitudeFromParts = %v, want [5 2]", dst)
	}
}

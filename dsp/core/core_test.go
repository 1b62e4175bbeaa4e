package core

import (
	"math"
	"testing"
)

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 4, 16)

	out := EnsureLen(buf, 8)
	if len(out) != 8 || cap(out) != 16 {
		t.Fatalf("len=%d cap=%d, want len=8 cap=16", len(out), cap(out))
	}

	grown := EnsureLen(buf, 32)
	if len(grown) != 32 {
		t.Fatalf("len=%d, want 32", len(grown))
	}

	if got := EnsureLen(buf, 0); len(got) != 0 {
		t.Fatalf("len=%d, want 0", len(got))
	}
}

func TestZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d]=%v after Zero", i, v)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Fatalf("Clamp(5,0,1)=%v", got)
	}
	if got := Clamp(-1, 0, 1); got != 0 {
		t.Fatalf("Clamp(-1,0,1)=%v", got)
	}
	// Swapped bounds are reordered.
	if got := Clamp(0.5, 1, 0); got != 0.5 {
		t.Fatalf("Clamp(0.5,1,0)=%v", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 0) {
		t.Fatal("expected equality within default epsilon")
	}
	if NearlyEqual(1.0, 1.1, 1e-6) {
		t.Fatal("expected inequality")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatal("expected zero equality")
	}
}

func TestDBConversions(t *testing.T) {
	if got := LinearPowerToDB(0.5); math.Abs(got-(-3.0103)) > 1e-3 {
		t.Fatalf("LinearPowerToDB(0.5)=%v", got)
	}

	if got := DBPowerToLinear(-10); math.Abs(got-0.1) > 1e-12 {
		t.Fatalf("DBPowerToLinear(-10)=%v", got)
	}

	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("LinearPowerToDB(0) should be -Inf")
	}

	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("LinearPowerToDB(-1) should be NaN")
	}

	if got := LinearToDB(10); math.Abs(got-20) > 1e-12 {
		t.Fatalf("LinearToDB(10)=%v", got)
	}
}

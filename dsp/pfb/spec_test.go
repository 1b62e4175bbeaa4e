package pfb

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-pfb/dsp/core"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name  string
		nchan int
		ntaps int
		opts  []Option
	}{
		{"zero nchan", 0, 4, nil},
		{"negative nchan", -1, 4, nil},
		{"zero ntaps", 16, 0, nil},
		{"width above one", 16, 4, []Option{WithWidth(1.5)}},
		{"negative width", 16, 4, []Option{WithWidth(-0.1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.nchan, tt.ntaps, tt.opts...)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("err=%v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	spec, err := New(16, 8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if spec.Width != 1.0 {
		t.Errorf("Width=%v, want 1.0", spec.Width)
	}

	if spec.Window.Name() != "hamming" {
		t.Errorf("Window=%q, want hamming", spec.Window.Name())
	}

	if spec.LPF.Name() != "sinc" {
		t.Errorf("LPF=%q, want sinc", spec.LPF.Name())
	}

	if spec.Bug {
		t.Error("Bug set by default")
	}

	if spec.NumCoefficients() != 128 {
		t.Errorf("NumCoefficients=%d, want 128", spec.NumCoefficients())
	}
}

func TestConstructorFormsAgree(t *testing.T) {
	a, err := New(64, 4, WithWidth(0.91), WithWindow(Hanning), WithBug())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	b, err := FromConfig(Config{NChan: 64, NTaps: 4, Width: 0.91, Window: Hanning, Bug: true})
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}

	if a.String() != b.String() {
		t.Fatalf("forms disagree:\n  %s\n  %s", a, b)
	}

	ca, err := a.Coefficients()
	if err != nil {
		t.Fatalf("Coefficients: %v", err)
	}

	cb, err := b.Coefficients()
	if err != nil {
		t.Fatalf("Coefficients: %v", err)
	}

	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("coefficient %d differs: %v vs %v", i, ca[i], cb[i])
		}
	}
}

func TestSpecString(t *testing.T) {
	spec, err := New(16, 8, WithBug())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := "nchan=16, ntaps=8, width=1, window=hamming, lpf=sinc, bug=true"
	if got := spec.String(); got != want {
		t.Fatalf("String()=%q, want %q", got, want)
	}
}

func TestCustomFunctionsPluggable(t *testing.T) {
	flat := NewWindow("flat", func(n int) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = 1
		}
		return out
	})

	one := NewPrototype("one", func(x float64) float64 { return 1 })

	spec, err := New(4, 2, WithWindow(flat), WithLPF(one))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	coefs, err := spec.Coefficients()
	if err != nil {
		t.Fatalf("Coefficients: %v", err)
	}

	// Flat window times unit prototype normalizes to 1/n everywhere.
	for i, v := range coefs {
		if v != 0.125 {
			t.Fatalf("coefficient %d = %v, want 0.125", i, v)
		}
	}

	if spec.String() != "nchan=4, ntaps=2, width=1, window=flat, lpf=one, bug=false" {
		t.Fatalf("String()=%q", spec.String())
	}
}

func TestBuiltInWindows(t *testing.T) {
	if Blackman.Name() != "blackman" {
		t.Fatalf("Name()=%q, want blackman", Blackman.Name())
	}

	coeffs := Blackman.Coefficients(5)
	if len(coeffs) != 5 {
		t.Fatalf("len=%d, want 5", len(coeffs))
	}

	// Three-term blackman endpoints are 0.42 - 0.5 + 0.08 = 0.
	if !core.NearlyEqual(coeffs[0], 0, 1e-15) || !core.NearlyEqual(coeffs[4], 0, 1e-15) {
		t.Fatalf("endpoints %v, %v, want 0", coeffs[0], coeffs[4])
	}

	kaiser := KaiserWindow(8)
	if kaiser.Name() != "kaiser(8)" {
		t.Fatalf("Name()=%q, want kaiser(8)", kaiser.Name())
	}

	kc := kaiser.Coefficients(9)
	if len(kc) != 9 {
		t.Fatalf("len=%d, want 9", len(kc))
	}

	// Kaiser peaks at the center and decays toward the edges.
	if kc[4] != 1 || kc[0] >= kc[4] || kc[8] >= kc[4] {
		t.Fatalf("kaiser shape %v", kc)
	}

	spec, err := New(8, 4, WithWindow(kaiser))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := spec.Coefficients(); err != nil {
		t.Fatalf("Coefficients: %v", err)
	}
}

func TestAnonymousCustomNames(t *testing.T) {
	w := NewWindow("", func(n int) []float64 { return make([]float64, n) })
	if w.Name() != "custom" {
		t.Fatalf("Name()=%q, want custom", w.Name())
	}

	p := NewPrototype("", func(x float64) float64 { return x })
	if p.Name() != "custom" {
		t.Fatalf("Name()=%q, want custom", p.Name())
	}
}

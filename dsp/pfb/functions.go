package pfb

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pfb/dsp/window"
)

// Window is a named taper generator mapping a length n to n real
// coefficients. The name is what [Spec.String] renders; the zero value is
// replaced by [Hamming] wherever a Spec is evaluated.
type Window struct {
	name string
	fn   func(n int) []float64
}

// NewWindow wraps a custom taper function under the given name.
func NewWindow(name string, fn func(n int) []float64) Window {
	if name == "" {
		name = "custom"
	}

	return Window{name: name, fn: fn}
}

// Name returns the window's display name.
func (w Window) Name() string { return w.name }

// Coefficients evaluates the taper at length n.
func (w Window) Coefficients(n int) []float64 {
	if w.fn == nil {
		return nil
	}

	return w.fn(n)
}

func (w Window) isZero() bool { return w.fn == nil }

// Prototype is a named low-pass prototype function evaluated at normalized
// frequency offsets. The zero value is replaced by [Sinc] wherever a Spec
// is evaluated.
type Prototype struct {
	name string
	fn   func(x float64) float64
}

// NewPrototype wraps a custom low-pass prototype under the given name.
func NewPrototype(name string, fn func(x float64) float64) Prototype {
	if name == "" {
		name = "custom"
	}

	return Prototype{name: name, fn: fn}
}

// Name returns the prototype's display name.
func (p Prototype) Name() string { return p.name }

// Eval evaluates the prototype at offset x.
func (p Prototype) Eval(x float64) float64 {
	if p.fn == nil {
		return 0
	}

	return p.fn(x)
}

func (p Prototype) isZero() bool { return p.fn == nil }

// Built-in tapers and prototypes.
var (
	// Hamming is the 0.54 + 0.46*cos(pi*t) taper over t in [-1, 1].
	Hamming = Window{name: "hamming", fn: func(n int) []float64 {
		coeffs, err := window.Hamming(n)
		if err != nil {
			return nil
		}
		return coeffs
	}}

	// Hanning is the 0.5*(1 + cos(pi*t)) taper over t in [-1, 1].
	Hanning = Window{name: "hanning", fn: func(n int) []float64 {
		coeffs, err := window.Hann(n)
		if err != nil {
			return nil
		}
		return coeffs
	}}

	// Blackman is the three-term 0.42/0.5/0.08 cosine taper.
	Blackman = Window{name: "blackman", fn: func(n int) []float64 {
		coeffs, err := window.Blackman(n)
		if err != nil {
			return nil
		}
		return coeffs
	}}

	// Boxcar is the all-ones taper.
	Boxcar = Window{name: "boxcar", fn: func(n int) []float64 {
		return window.Generate(window.TypeRectangular, n)
	}}

	// Sinc is the normalized sinc prototype sin(pi*x)/(pi*x).
	Sinc = Prototype{name: "sinc", fn: sinc}
)

// KaiserWindow builds a Kaiser taper with the given beta as a named
// window, suitable for [WithWindow].
func KaiserWindow(beta float64) Window {
	return Window{name: fmt.Sprintf("kaiser(%g)", beta), fn: func(n int) []float64 {
		coeffs, err := window.Kaiser(n, beta)
		if err != nil {
			return nil
		}
		return coeffs
	}}
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

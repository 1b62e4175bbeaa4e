package pfb

import "fmt"

// Spec is an immutable description of a critically-sampled polyphase
// filterbank design. Specs have value semantics: copy freely, never share
// mutable state.
//
// A zero Width, Window, or LPF field is interpreted as the default
// (1.0, [Hamming], [Sinc]) so that Config literals and stored presets
// need only list what they change.
type Spec struct {
	// NChan is the total number of frequency channels, including the
	// conjugate-symmetric half of a real-input design.
	NChan int

	// NTaps is the number of overlapped analysis windows.
	NTaps int

	// Width is the relative position, as a fraction of channel width,
	// where the prototype reaches -6 dB. Must lie in (0, 1].
	Width float64

	// Window tapers the prototype samples.
	Window Window

	// LPF is the low-pass prototype sampled to build the tap shape.
	LPF Prototype

	// Bug, when set, omits the half-sample centering offset from the
	// coefficient-index-to-time mapping, reproducing a defect shipped in
	// some deployed firmware. It is reproduced, never corrected.
	Bug bool
}

// Config is the all-keyword construction form of a [Spec].
type Config struct {
	NChan  int
	NTaps  int
	Width  float64
	Window Window
	LPF    Prototype
	Bug    bool
}

// Option configures optional Spec fields in [New].
type Option func(*Spec)

// WithWidth sets the -6 dB roll-off position as a fraction of channel
// width.
func WithWidth(w float64) Option {
	return func(s *Spec) { s.Width = w }
}

// WithWindow sets the taper window.
func WithWindow(w Window) Option {
	return func(s *Spec) { s.Window = w }
}

// WithLPF sets the low-pass prototype.
func WithLPF(p Prototype) Option {
	return func(s *Spec) { s.LPF = p }
}

// WithBug enables the half-sample centering defect.
func WithBug() Option {
	return func(s *Spec) { s.Bug = true }
}

// New builds a validated Spec from the required channel and tap counts
// plus options. Defaults: width 1.0, hamming window, sinc prototype, no
// bug.
func New(nchan, ntaps int, opts ...Option) (Spec, error) {
	s := Spec{NChan: nchan, NTaps: ntaps}

	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return s.normalized()
}

// FromConfig builds a validated Spec from an all-keyword Config. It
// produces the same internal representation as [New].
func FromConfig(cfg Config) (Spec, error) {
	s := Spec{
		NChan:  cfg.NChan,
		NTaps:  cfg.NTaps,
		Width:  cfg.Width,
		Window: cfg.Window,
		LPF:    cfg.LPF,
		Bug:    cfg.Bug,
	}

	return s.normalized()
}

// normalized fills defaulted fields and validates ranges.
func (s Spec) normalized() (Spec, error) {
	if s.NChan < 1 {
		return Spec{}, fmt.Errorf("%w: nchan must be >= 1: %d", ErrInvalidParameter, s.NChan)
	}

	if s.NTaps < 1 {
		return Spec{}, fmt.Errorf("%w: ntaps must be >= 1: %d", ErrInvalidParameter, s.NTaps)
	}

	if s.Width == 0 {
		s.Width = 1.0
	}

	if s.Width < 0 || s.Width > 1 {
		return Spec{}, fmt.Errorf("%w: width must be in (0, 1]: %g", ErrInvalidParameter, s.Width)
	}

	if s.Window.isZero() {
		s.Window = Hamming
	}

	if s.LPF.isZero() {
		s.LPF = Sinc
	}

	return s, nil
}

// NumCoefficients returns nchan*ntaps, the length of the coefficient
// vector this spec synthesizes.
func (s Spec) NumCoefficients() int {
	return s.NChan * s.NTaps
}

// String renders every field in stable name=value form.
func (s Spec) String() string {
	norm, err := s.normalized()
	if err != nil {
		norm = s
	}

	win := norm.Window.Name()
	if win == "" {
		win = "custom"
	}

	lpf := norm.LPF.Name()
	if lpf == "" {
		lpf = "custom"
	}

	return fmt.Sprintf("nchan=%d, ntaps=%d, width=%g, window=%s, lpf=%s, bug=%t",
		norm.NChan, norm.NTaps, norm.Width, win, lpf, norm.Bug)
}

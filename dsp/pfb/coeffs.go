package pfb

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-pfb/dsp/core"
	"github.com/cwbudde/algo-pfb/dsp/window"
)

// CoeffOption configures coefficient synthesis.
type CoeffOption func(*coeffConfig)

type coeffConfig struct {
	normalize bool
}

func defaultCoeffConfig() coeffConfig {
	return coeffConfig{normalize: true}
}

// WithoutNormalization leaves the synthesized coefficients unscaled
// instead of rescaling them to unity DC gain.
func WithoutNormalization() CoeffOption {
	return func(c *coeffConfig) { c.normalize = false }
}

// Coefficients synthesizes the Spec's tap-weight vector of length
// nchan*ntaps. By default the vector is rescaled so its sum is exactly 1
// (unity DC gain).
func (s Spec) Coefficients(opts ...CoeffOption) ([]float64, error) {
	norm, err := s.normalized()
	if err != nil {
		return nil, err
	}

	out := make([]float64, norm.NumCoefficients())
	if err := norm.synthesize(out, opts); err != nil {
		return nil, err
	}

	return out, nil
}

// CoefficientsInto synthesizes the coefficient vector into dst, zeroing
// any remainder past nchan*ntaps. It fails with [ErrSizeMismatch] before
// writing when dst is too short.
func (s Spec) CoefficientsInto(dst []float64, opts ...CoeffOption) error {
	norm, err := s.normalized()
	if err != nil {
		return err
	}

	n := norm.NumCoefficients()
	if len(dst) < n {
		return fmt.Errorf("%w: have %d, need %d", ErrSizeMismatch, len(dst), n)
	}

	if err := norm.synthesize(dst[:n], opts); err != nil {
		return err
	}

	core.Zero(dst[n:])

	return nil
}

// synthesize fills dst (length nchan*ntaps) for an already-normalized
// spec.
func (s Spec) synthesize(dst []float64, opts []CoeffOption) error {
	cfg := defaultCoeffConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(dst)

	taper := s.Window.Coefficients(n)
	if len(taper) != n {
		return fmt.Errorf("%w: window %q returned %d coefficients, want %d",
			ErrInvalidParameter, s.Window.Name(), len(taper), n)
	}

	// Half-sample centering offset, omitted when reproducing the defect.
	offset := 0.5
	if s.Bug {
		offset = 0
	}

	halfSpan := float64(s.NTaps) / 2
	for i := range dst {
		x := s.Width * ((float64(i)+offset)/float64(s.NChan) - halfSpan)
		dst[i] = s.LPF.Eval(x)
	}

	if err := window.ApplyCoefficientsInPlace(dst, taper); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	if !cfg.normalize {
		return nil
	}

	sum := 0.0
	for _, v := range dst {
		sum += v
	}

	if sum == 0 {
		return fmt.Errorf("pfb: zero-sum coefficients cannot be normalized (%s)", s)
	}

	vecmath.ScaleBlock(dst, dst, 1/sum)

	return nil
}

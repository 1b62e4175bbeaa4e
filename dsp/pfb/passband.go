package pfb

import (
	"fmt"

	"github.com/cwbudde/algo-pfb/dsp/spectrum"
)

// Passband computes the aliased, decimated power response of one coarse
// channel from the coefficient vector coefs, sampled at nfine
// fine-frequency points across the channel's bandwidth.
//
// The result is normalized to the channel-center power and returned in
// natural frequency order: index 0 is the most negative offset and the
// unity-power reference bin sits at index nfine/2 (floor for odd nfine).
//
// The nchan x nfine analysis matrix must hold every tap, so
// nchan*nfine >= len(coefs); otherwise [ErrResolutionTooLow] is returned.
func Passband(coefs []float64, nchan, nfine int) ([]float64, error) {
	if nchan < 1 {
		return nil, fmt.Errorf("%w: nchan must be >= 1: %d", ErrInvalidParameter, nchan)
	}

	if nfine < 1 {
		return nil, fmt.Errorf("%w: nfine must be >= 1: %d", ErrInvalidParameter, nfine)
	}

	if len(coefs) == 0 {
		return nil, fmt.Errorf("%w: empty coefficient vector", ErrInvalidParameter)
	}

	if nchan*nfine < len(coefs) {
		return nil, fmt.Errorf("%w: nchan*nfine = %d < %d taps", ErrResolutionTooLow, nchan*nfine, len(coefs))
	}

	// Polyphase decomposition: tap t's nchan samples become column t, the
	// remaining nfine-ntaps slow-time slots stay zero.
	matrix := make([]float64, nchan*nfine)
	for i, v := range coefs {
		matrix[(i%nchan)*nfine+i/nchan] = v
	}

	bins, err := spectrum.RealFFT2(matrix, nchan, nfine)
	if err != nil {
		return nil, err
	}

	halfRows := nchan/2 + 1

	// Rows 1..interiorTop are the ones whose negative-frequency mirror is
	// not already present in the reduced transform (DC mirrors onto
	// itself, as does the Nyquist row of an even nchan).
	interiorTop := nchan - 1 - nchan/2

	resp := make([]float64, nfine)
	rowPow := make([]float64, nfine)

	for k := 0; k < halfRows; k++ {
		spectrum.PowerInto(rowPow, bins[k*nfine:(k+1)*nfine])

		for m := range resp {
			resp[m] += rowPow[m]
		}

		if k < 1 || k > interiorTop {
			continue
		}

		// The aliased image from the mirrored row lands reversed in fine
		// frequency: fine-bin m collects the interior power at bin
		// (nfine-m) mod nfine.
		resp[0] += rowPow[0]
		for m := 1; m < nfine; m++ {
			resp[m] += rowPow[nfine-m]
		}
	}

	// Normalize to channel-center (pre-shift DC) power.
	ref := resp[0]
	if ref == 0 {
		return nil, fmt.Errorf("pfb: zero power at channel center")
	}

	for m := range resp {
		resp[m] /= ref
	}

	// Rotate into natural frequency order: the reference bin moves to
	// index nfine/2.
	shift := nfine / 2
	out := make([]float64, nfine)
	for m := range resp {
		out[(m+shift)%nfine] = resp[m]
	}

	return out, nil
}

// Passband synthesizes the Spec's coefficients with default normalization
// and computes the channel response at nfine points.
func (s Spec) Passband(nfine int) ([]float64, error) {
	norm, err := s.normalized()
	if err != nil {
		return nil, err
	}

	coefs, err := norm.Coefficients()
	if err != nil {
		return nil, err
	}

	return Passband(coefs, norm.NChan, nfine)
}

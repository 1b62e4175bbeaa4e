package window

import (
	"math"

	"github.com/cwbudde/algo-pfb/dsp/core"
)

// Analysis holds numerically computed spectral properties of a window.
//
// For a channelizer prototype the highest sidelobe bounds the leakage from
// distant coarse channels, while the main lobe width trades passband
// flatness against adjacent-channel rejection.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first null (minimum) position in bins.
	FirstMinimumBins float64
}

// Analyze computes spectral properties of the given window coefficients
// using numerical DFT evaluation.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	dcRef := dftMagSq(coeffs, 0)
	if dcRef == 0 {
		return Analysis{}
	}

	sum := 0.0
	sumSq := 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	firstMin := searchFirstMinimum(coeffs, n)

	return Analysis{
		CoherentGain:      sum / float64(n),
		ENBW:              float64(n) * sumSq / (sum * sum),
		Bandwidth3dB:      searchBandwidth(coeffs, dcRef),
		HighestSidelobedB: searchHighestSidelobe(coeffs, dcRef, firstMin, n),
		FirstMinimumBins:  firstMin,
	}
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalised frequency [0,1).
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq
	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}
	return re*re + im*im
}

// searchBandwidth finds the 3 dB (half-power) main lobe width in bins by
// bisection on the DFT magnitude response.
func searchBandwidth(coeffs []float64, dcRef float64) float64 {
	invRef := 1.0 / dcRef

	lo := 0.0
	hi := 0.5
	for i := 0; i < 80; i++ {
		mid := (lo + hi) / 2
		if dftMagSq(coeffs, mid)*invRef > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}

	// Bandwidth is two-sided: from -f to +f.
	return 2 * lo * float64(len(coeffs))
}

// searchFirstMinimum finds the first spectral null position in bins by
// scanning outward from DC for a turn-around, then refining with a
// golden-section search.
func searchFirstMinimum(coeffs []float64, n int) float64 {
	nf := float64(n)
	step := 1.0 / (nf * 8)

	dcVal := dftMagSq(coeffs, 0)
	prev := dcVal
	coarseMinFreq := step
	// Require descent to 10% of DC before accepting a turn-around, so a
	// wide main-lobe plateau is not mistaken for a null.
	threshold := dcVal * 0.1

	for freq := step; freq < 0.5; freq += step {
		val := dftMagSq(coeffs, freq)
		if prev < threshold && val > prev {
			coarseMinFreq = freq - step
			break
		}
		prev = val
	}

	a := math.Max(0, coarseMinFreq-2*step)
	b := math.Min(0.5, coarseMinFreq+2*step)

	const phi = 0.6180339887498949 // (sqrt(5)-1)/2
	c := b - phi*(b-a)
	d := a + phi*(b-a)
	for i := 0; i < 80; i++ {
		if dftMagSq(coeffs, c) < dftMagSq(coeffs, d) {
			b = d
		} else {
			a = c
		}
		c = b - phi*(b-a)
		d = a + phi*(b-a)
	}

	return (a + b) / 2 * nf
}

// searchHighestSidelobe finds the peak sidelobe level in dB relative to DC.
func searchHighestSidelobe(coeffs []float64, dcRef, firstMinBins float64, n int) float64 {
	nf := float64(n)
	startFreq := firstMinBins / nf
	step := 1.0 / (nf * 8)

	peakVal := 0.0
	peakFreq := startFreq

	for freq := startFreq; freq < 0.5; freq += step {
		val := dftMagSq(coeffs, freq)
		if val > peakVal {
			peakVal = val
			peakFreq = freq
		}
	}

	// Refine around the coarse peak with a finer step.
	fineStep := step / 32
	refinedPeak := peakVal
	for freq := peakFreq - step; freq <= peakFreq+step; freq += fineStep {
		if freq < 0 {
			continue
		}
		if val := dftMagSq(coeffs, freq); val > refinedPeak {
			refinedPeak = val
		}
	}

	if refinedPeak <= 0 || dcRef <= 0 {
		return -math.Inf(1)
	}
	return core.LinearPowerToDB(refinedPeak / dcRef)
}

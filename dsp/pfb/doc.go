// Package pfb models the frequency-domain behavior of critically-sampled
// polyphase filterbanks.
//
// A [Spec] describes a filterbank design: channel count, tap count,
// roll-off width, taper window, low-pass prototype, and a flag reproducing
// a known half-sample centering defect present in some deployed firmware.
// [Spec.Coefficients] synthesizes the tap-weight vector, and [Passband]
// computes the aliased, decimated power response of one coarse channel at
// a requested fine-frequency resolution.
//
// Basic usage:
//
//	spec, err := pfb.New(16, 8)
//	if err != nil { ... }
//	resp, err := spec.Passband(128)
//
// Designs of known deployed instruments are available through [Preset].
// The returned response is in natural frequency order: index 0 is the most
// negative fine-frequency offset and the channel-center reference bin
// (power 1.0) sits at index nfine/2.
package pfb

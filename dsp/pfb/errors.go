package pfb

import "errors"

// Errors returned by filterbank construction and analysis.
var (
	// ErrInvalidParameter reports a Spec field outside its valid range.
	ErrInvalidParameter = errors.New("pfb: invalid parameter")

	// ErrSizeMismatch reports a destination buffer shorter than the
	// coefficient count the design requires.
	ErrSizeMismatch = errors.New("pfb: destination buffer too small")

	// ErrResolutionTooLow reports a passband request whose nchan*nfine
	// matrix cannot hold every filter tap.
	ErrResolutionTooLow = errors.New("pfb: fine resolution too low for tap count")
)

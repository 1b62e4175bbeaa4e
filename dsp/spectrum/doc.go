// Package spectrum provides frequency-domain reductions and the batched
// real-input 2D transform used for polyphase filterbank analysis.
//
// [Power] and [Magnitude] convert complex spectra to real-valued arrays
// using SIMD-accelerated kernels. [RealFFT2] computes a two-dimensional
// spectral transform of a real matrix, reduced along the first axis by
// conjugate symmetry. The transform fans out across worker goroutines;
// the process-wide worker count is read and set with [Workers] and
// [SetWorkers].
package spectrum

package spectrum

import "runtime"

// workerCount is the process-wide transform worker limit. It is read at
// the start of each transform; mutating it while a transform is in flight
// is a caller-side race, matching the usual FFT-library contract.
var workerCount = runtime.NumCPU()

// Workers returns the number of worker goroutines batched transforms may
// use. The default is the host's available core count.
func Workers() int {
	return workerCount
}

// SetWorkers sets the number of worker goroutines batched transforms may
// use. Values below 1 are clamped to 1. Callers must not change the
// setting while a transform is executing.
func SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	workerCount = n
}

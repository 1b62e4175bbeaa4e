package spectrum

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// RealFFT2 computes the two-dimensional spectral transform of a real-valued
// rows x cols matrix stored row-major in src.
//
// The transform is reduced along the row (first) axis by conjugate symmetry
// and full along the column (second) axis, so the result is a
// (rows/2+1) x cols row-major complex matrix. Both forward passes are
// unnormalized.
//
// The column and row batches fan out across up to [Workers] goroutines,
// each owning its own transform plan. Power-of-two axis lengths go through
// algo-fft plans; all other lengths use gonum's arbitrary-size transforms.
func RealFFT2(src []float64, rows, cols int) ([]complex128, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("spectrum: matrix dimensions must be >= 1: %dx%d", rows, cols)
	}

	if len(src) != rows*cols {
		return nil, fmt.Errorf("spectrum: matrix size mismatch: have %d values, want %d", len(src), rows*cols)
	}

	halfRows := rows/2 + 1
	out := make([]complex128, halfRows*cols)

	// Pass 1: real transform down each of the cols columns (length rows),
	// keeping the non-negative-frequency half.
	err := parallelRange(cols, func(lo, hi int) error {
		ct, err := newColumnTransformer(rows)
		if err != nil {
			return err
		}

		for c := lo; c < hi; c++ {
			for r := 0; r < rows; r++ {
				ct.realIn[r] = src[r*cols+c]
			}

			half, err := ct.transform()
			if err != nil {
				return err
			}

			for k := 0; k < halfRows; k++ {
				out[k*cols+c] = half[k]
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Pass 2: full complex transform along each of the halfRows rows
	// (length cols), in place.
	err = parallelRange(halfRows, func(lo, hi int) error {
		rt, err := newRowTransformer(cols)
		if err != nil {
			return err
		}

		for k := lo; k < hi; k++ {
			row := out[k*cols : (k+1)*cols]
			if err := rt.transform(row); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// columnTransformer performs a length-n real-to-complex transform, keeping
// the n/2+1 non-negative-frequency bins.
type columnTransformer struct {
	realIn []float64

	// power-of-two path
	plan       *algofft.Plan[complex128]
	complexIn  []complex128
	complexOut []complex128

	// general path
	fft     *fourier.FFT
	halfOut []complex128
}

func newColumnTransformer(n int) (*columnTransformer, error) {
	ct := &columnTransformer{realIn: make([]float64, n)}

	if isPowerOfTwo(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("spectrum: NewPlan64(%d): %w", n, err)
		}

		ct.plan = plan
		ct.complexIn = make([]complex128, n)
		ct.complexOut = make([]complex128, n)

		return ct, nil
	}

	ct.fft = fourier.NewFFT(n)
	ct.halfOut = make([]complex128, n/2+1)

	return ct, nil
}

func (ct *columnTransformer) transform() ([]complex128, error) {
	if ct.plan != nil {
		for i, v := range ct.realIn {
			ct.complexIn[i] = complex(v, 0)
		}

		if err := ct.plan.Forward(ct.complexOut, ct.complexIn); err != nil {
			return nil, fmt.Errorf("spectrum: forward transform: %w", err)
		}

		return ct.complexOut[:len(ct.realIn)/2+1], nil
	}

	return ct.fft.Coefficients(ct.halfOut, ct.realIn), nil
}

// rowTransformer performs a length-n complex transform in place.
type rowTransformer struct {
	plan    *algofft.Plan[complex128]
	fft     *fourier.CmplxFFT
	scratch []complex128
}

func newRowTransformer(n int) (*rowTransformer, error) {
	rt := &rowTransformer{scratch: make([]complex128, n)}

	if isPowerOfTwo(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("spectrum: NewPlan64(%d): %w", n, err)
		}

		rt.plan = plan

		return rt, nil
	}

	rt.fft = fourier.NewCmplxFFT(n)

	return rt, nil
}

func (rt *rowTransformer) transform(row []complex128) error {
	if rt.plan != nil {
		if err := rt.plan.Forward(rt.scratch, row); err != nil {
			return fmt.Errorf("spectrum: forward transform: %w", err)
		}

		copy(row, rt.scratch)

		return nil
	}

	copy(rt.scratch, row)
	rt.fft.Coefficients(row, rt.scratch)

	return nil
}

// parallelRange splits [0, n) into contiguous chunks across up to Workers()
// goroutines and runs fn on each chunk, returning the first error.
func parallelRange(n int, fn func(lo, hi int) error) error {
	workers := Workers()
	if workers > n {
		workers = n
	}

	if workers <= 1 {
		return fn(0, n)
	}

	chunk := (n + workers - 1) / workers
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			errs[w] = fn(lo, hi)
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

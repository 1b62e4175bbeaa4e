package pfb_test

import (
	"fmt"

	"github.com/cwbudde/algo-pfb/dsp/pfb"
)

func ExampleNew() {
	spec, err := pfb.New(16, 8, pfb.WithWidth(0.91))
	if err != nil {
		panic(err)
	}

	fmt.Println(spec)
	// Output:
	// nchan=16, ntaps=8, width=0.91, window=hamming, lpf=sinc, bug=false
}

func ExampleSpec_Coefficients() {
	spec, err := pfb.New(4, 2)
	if err != nil {
		panic(err)
	}

	coefs, err := spec.Coefficients()
	if err != nil {
		panic(err)
	}

	sum := 0.0
	for _, v := range coefs {
		sum += v
	}

	fmt.Printf("%d taps, sum %.3f\n", len(coefs), sum)
	// Output:
	// 8 taps, sum 1.000
}

func ExampleSpec_Passband() {
	spec, err := pfb.New(8, 4)
	if err != nil {
		panic(err)
	}

	resp, err := spec.Passband(16)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d bins, center %.1f\n", len(resp), resp[8])
	// Output:
	// 16 bins, center 1.0
}

func ExamplePresetNames() {
	for _, name := range pfb.PresetNames() {
		fmt.Println(name)
	}
	// Output:
	// chime
	// guppi
}

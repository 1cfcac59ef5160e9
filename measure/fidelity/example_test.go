package fidelity_test

import (
	"fmt"

	"github.com/cwbudde/algo-resample/dsp/interp"
	"github.com/cwbudde/algo-resample/dsp/resample"
	"github.com/cwbudde/algo-resample/measure/fidelity"
)

func ExampleMeasure() {
	res, err := fidelity.Measure(fidelity.Config{
		SourceRate: 48000,
		TargetRate: 48000,
		ToneFreq:   1000,
	}, resample.WithKernel(interp.ModeCubic))
	if err != nil {
		panic(err)
	}

	fmt.Printf("tone %.1f Hz, clean: %v\n", res.ToneFreq, res.SINAD > 100)
	// Output:
	// tone 1002.0 Hz, clean: true
}

//go:build !fastmath

package fidelity

import "github.com/cwbudde/algo-resample/dsp/core"

// powerToDB converts a positive power ratio to dB using standard library math.
func powerToDB(ratio float64) float64 {
	return core.LinearPowerToDB(ratio)
}

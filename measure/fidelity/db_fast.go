//go:build fastmath

package fidelity

import "github.com/meko-christian/algo-approx"

// ln10 is the natural logarithm of 10.
const ln10 = 2.302585092994045684017991454684

// powerToDB converts a positive power ratio to dB using fast approximation.
func powerToDB(ratio float64) float64 {
	return 10 * approx.FastLog(ratio) / ln10
}

package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Ramp returns start, start+1, ... as length samples.
func Ramp(start float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = start + float32(i)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float32 {
	out := make([]float32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Chunk splits x into consecutive pieces whose sizes cycle through sizes.
// Zero sizes produce empty chunks. Without a positive size x is returned whole.
func Chunk(x []float32, sizes ...int) [][]float32 {
	positive := false
	for _, n := range sizes {
		positive = positive || n > 0
	}
	if !positive {
		return [][]float32{x}
	}

	var out [][]float32
	for i, k := 0, 0; i < len(x); k++ {
		n := min(max(sizes[k%len(sizes)], 0), len(x)-i)
		out = append(out, x[i:i+n])
		i += n
	}
	return out
}

package time

import "math"

// Stats holds time-domain level statistics of a float32 signal.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Max            float64
	Min            float64
	Peak           float64 // max(|max|, |min|)
	Peak_dB        float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	ZeroCrossings  int
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// Calculate computes the statistics of signal in one pass.
func Calculate(signal []float32) Stats {
	s := NewStreamingStats()
	s.Update(signal)
	return s.Result()
}

// StreamingStats accumulates statistics across blocks of samples, so a
// resampled stream can be metered chunk by chunk.
type StreamingStats struct {
	n             int
	sum           float64
	sumSq         float64
	maxVal        float64
	minVal        float64
	zeroCrossings int
	lastSample    float64
}

// NewStreamingStats creates a new StreamingStats accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds a block of samples to the running statistics.
func (s *StreamingStats) Update(samples []float32) {
	for _, v := range samples {
		x := float64(v)
		if s.n == 0 {
			s.maxVal, s.minVal = x, x
		} else {
			s.maxVal = max(s.maxVal, x)
			s.minVal = min(s.minVal, x)
			if s.lastSample*x < 0 {
				s.zeroCrossings++
			}
		}

		s.n++
		s.sum += x
		s.sumSq += x * x
		s.lastSample = x
	}
}

// Result computes the final statistics from accumulated data.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return Stats{
			RMS_dB:         math.Inf(-1),
			Peak_dB:        math.Inf(-1),
			CrestFactor_dB: math.Inf(-1),
		}
	}

	nf := float64(s.n)
	rms := math.Sqrt(s.sumSq / nf)
	peak := math.Max(math.Abs(s.maxVal), math.Abs(s.minVal))

	var crest, crestdB float64
	if rms > 0 {
		crest = peak / rms
		crestdB = ampTodB(crest)
	}

	return Stats{
		Length:         s.n,
		DC:             s.sum / nf,
		RMS:            rms,
		RMS_dB:         ampTodB(rms),
		Max:            s.maxVal,
		Min:            s.minVal,
		Peak:           peak,
		Peak_dB:        ampTodB(peak),
		CrestFactor:    crest,
		CrestFactor_dB: crestdB,
		ZeroCrossings:  s.zeroCrossings,
	}
}


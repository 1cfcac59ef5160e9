package signal

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-resample/dsp/core"
)

var errNoSamples = errors.New("signal: samples must be > 0")

// Generator creates deterministic float32 test signals at the configured
// sample rate.
type Generator struct {
	cfg core.StreamConfig
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.StreamOption) *Generator {
	return &Generator{cfg: core.ApplyStreamOptions(opts...)}
}

// Sine generates a sine wave starting at phase zero.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float32, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: %d", errNoSamples, samples)
	}
	if !core.PositiveFinite(g.cfg.SampleRate) {
		return nil, fmt.Errorf("signal: sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	out := make([]float32, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out, nil
}

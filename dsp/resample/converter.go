package resample

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-resample/dsp/interp"
)

var errNilSource = errors.New("resample: nil source")

// Source yields input samples one at a time. Implementations must not block;
// an exhausted source returns silence.
type Source interface {
	Next() float32
}

// SourceFunc adapts a function to [Source].
type SourceFunc func() float32

// Next calls f.
func (f SourceFunc) Next() float32 { return f() }

// Converter pulls samples from a Source and yields them at a new rate as one
// uninterrupted stream. By default it starts on a silent window and emits
// every position. With [WithPhaseCarry] it drops the same two leading
// positions as a phase-carrying [Resampler], so reading N samples equals the
// first N samples of pushing the same input through Process.
type Converter struct {
	src    Source
	kernel interp.Kernel

	step  float64
	pos   float64
	lead  int
	prime int
}

// NewConverter creates a Converter reading from src at srcHz and producing
// samples at dstHz.
func NewConverter(src Source, srcHz, dstHz float64, opts ...Option) (*Converter, error) {
	if src == nil {
		return nil, errNilSource
	}

	step, err := stepFor(srcHz, dstHz)
	if err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)
	k, err := cfg.build()
	if err != nil {
		return nil, fmt.Errorf("resample: build kernel: %w", err)
	}

	c := &Converter{src: src, kernel: k, step: step}
	if cfg.carry {
		c.prime = primingOutputs
	}
	c.Reset()

	return c, nil
}

// Next returns the next output sample.
func (c *Converter) Next() float32 {
	for {
		for c.pos >= 1 {
			c.kernel.Push(c.src.Next())
			c.pos--
		}

		if c.lead > 0 {
			c.lead--
			c.pos += c.step
			continue
		}

		v := c.kernel.Interpolate(c.pos)
		c.pos += c.step
		return v
	}
}

// Read fills dst with output samples and returns len(dst).
func (c *Converter) Read(dst []float32) int {
	for i := range dst {
		dst[i] = c.Next()
	}
	return len(dst)
}

// SetRates changes the conversion ratio. The read phase is kept, so the
// change takes effect at the next output sample.
func (c *Converter) SetRates(srcHz, dstHz float64) error {
	step, err := stepFor(srcHz, dstHz)
	if err != nil {
		return err
	}
	c.step = step
	return nil
}

// Reset clears the kernel window and restarts priming. The source is untouched.
func (c *Converter) Reset() {
	c.kernel.Reset()
	c.pos = 0
	c.lead = c.prime
}

// Kernel returns the interpolation kernel.
func (c *Converter) Kernel() interp.Kernel {
	return c.kernel
}

package interp

import "github.com/cwbudde/algo-resample/dsp/delay"

const cubicTaps = 4

// Cubic is the 4-tap Hermite kernel. It interpolates between the second and
// third window samples.
type Cubic struct {
	line *delay.Line
}

// NewCubic returns a Hermite kernel with a silent window.
func NewCubic() *Cubic {
	line, _ := delay.New(cubicTaps)
	return &Cubic{line: line}
}

// Taps returns 4.
func (c *Cubic) Taps() int { return cubicTaps }

// Latency returns 2.
func (c *Cubic) Latency() int { return 2 }

// Push ingests x into the window.
func (c *Cubic) Push(x float32) {
	c.line.Write(x)
}

// Interpolate evaluates the Hermite polynomial through the window.
func (c *Cubic) Interpolate(t float64) float32 {
	return float32(Hermite4(t,
		float64(c.line.At(0)),
		float64(c.line.At(1)),
		float64(c.line.At(2)),
		float64(c.line.At(3)),
	))
}

// Window copies the window, oldest first.
func (c *Cubic) Window(dst []float32) []float32 {
	return c.line.Snapshot(dst)
}

// Load replaces the window.
func (c *Cubic) Load(w []float32) {
	c.line.Load(w)
}

// Reset zeroes the window.
func (c *Cubic) Reset() {
	c.line.Reset()
}

package interp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTaps is returned when a kernel is configured with fewer than two taps.
var ErrInvalidTaps = errors.New("interp: kernel needs at least 2 taps")

// Kernel interpolates between samples held in its window.
type Kernel interface {
	// Taps returns the window size K.
	Taps() int
	// Latency returns how many samples the interpolation origin trails the newest sample.
	Latency() int
	// Push ingests the newest sample and discards the oldest.
	Push(x float32)
	// Interpolate returns the value at fraction t past the window origin.
	Interpolate(t float64) float32
	// Window copies the K window samples, oldest first, into dst.
	Window(dst []float32) []float32
	// Load replaces the window with w, oldest first, padding with zeros, and
	// restarts the kernel as Reset does.
	Load(w []float32)
	// Reset zeroes the window.
	Reset()
}

// Mode selects a kernel implementation.
type Mode int

const (
	// ModeLinear selects the 2-tap linear kernel.
	ModeLinear Mode = iota
	// ModeCubic selects the 4-tap Hermite kernel.
	ModeCubic
	// ModeSinc selects the windowed-sinc kernel.
	ModeSinc
)

func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeCubic:
		return "cubic"
	case ModeSinc:
		return "sinc"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode resolves "linear", "cubic" or "sinc".
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear":
		return ModeLinear, nil
	case "cubic", "hermite":
		return ModeCubic, nil
	case "sinc":
		return ModeSinc, nil
	default:
		return ModeLinear, fmt.Errorf("interp: unknown mode %q", name)
	}
}

// New builds a kernel for mode. Options only affect [ModeSinc].
func New(mode Mode, opts ...Option) (Kernel, error) {
	switch mode {
	case ModeLinear:
		return NewLinear(), nil
	case ModeCubic:
		return NewCubic(), nil
	case ModeSinc:
		return NewSinc(opts...)
	default:
		return nil, fmt.Errorf("interp: unknown mode %d", int(mode))
	}
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

package resample

import (
	"github.com/cwbudde/algo-resample/dsp/interp"
	"github.com/cwbudde/algo-resample/dsp/window"
)

type config struct {
	mode       interp.Mode
	kernelOpts []interp.Option
	kernel     interp.Kernel
	carry      bool
}

// Option configures a Resampler, Converter or Bank.
type Option func(*config)

func defaultConfig() config {
	return config{mode: interp.ModeSinc}
}

// WithKernel selects the interpolation kernel. The default is an 8-tap sinc.
func WithKernel(mode interp.Mode) Option {
	return func(cfg *config) {
		cfg.mode = mode
	}
}

// WithTaps sets the sinc kernel width.
func WithTaps(n int) Option {
	return func(cfg *config) {
		cfg.kernelOpts = append(cfg.kernelOpts, interp.WithTaps(n))
	}
}

// WithWindow sets the taper of the sinc kernel.
func WithWindow(t window.Type) Option {
	return func(cfg *config) {
		cfg.kernelOpts = append(cfg.kernelOpts, interp.WithWindow(t))
	}
}

// WithPhaseCarry keeps the read cursor and kernel window running across
// Process calls instead of rebuilding them per call. Chunked output then
// equals whole-signal output.
func WithPhaseCarry() Option {
	return func(cfg *config) {
		cfg.carry = true
	}
}

// WithKernelInstance uses k instead of building a kernel from the mode.
// The caller hands over ownership of k.
func WithKernelInstance(k interp.Kernel) Option {
	return func(cfg *config) {
		if k != nil {
			cfg.kernel = k
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (c config) build() (interp.Kernel, error) {
	if c.kernel != nil {
		return c.kernel, nil
	}
	if c.mode == interp.ModeSinc && !c.carry {
		return interp.New(c.mode, append([]interp.Option{interp.WithWarmup()}, c.kernelOpts...)...)
	}
	return interp.New(c.mode, c.kernelOpts...)
}

package interp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-resample/dsp/delay"
	"github.com/cwbudde/algo-resample/dsp/window"
)

// DefaultSincTaps is the window size used when WithTaps is not given.
const DefaultSincTaps = 8

type config struct {
	taps   int
	window window.Type
	alpha  float64
	warmup bool
}

func defaultConfig() config {
	return config{
		taps:   DefaultSincTaps,
		window: window.TypeHann,
		alpha:  -1,
	}
}

// Option configures the sinc kernel.
type Option func(*config)

// WithTaps sets the sinc window size. Odd and even sizes are accepted.
func WithTaps(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.taps = n
		}
	}
}

// WithWindow selects the taper applied to the sinc weights.
func WithWindow(t window.Type) Option {
	return func(cfg *config) {
		cfg.window = t
	}
}

// WithWindowAlpha sets the taper parameter (Kaiser beta, Lanczos lobes).
func WithWindowAlpha(v float64) Option {
	return func(cfg *config) {
		if v >= 0 {
			cfg.alpha = v
		}
	}
}

// WithWarmup makes the interpolation origin start at the oldest window slot
// after Reset or Load and move one slot per Push until it settles at slot N/2.
// While it moves only origin+1 taps are used on each side. Once settled, the
// outermost right tap reads the oldest slot.
func WithWarmup() Option {
	return func(cfg *config) {
		cfg.warmup = true
	}
}

// Sinc is a windowed-sinc kernel over a window of N taps.
//
// The interpolation origin is window index (N-1)/2. Sample i lies at signed
// distance d = (i-origin) - t from the target position and contributes with
// weight sinc(d) * taper(0.5 + d/N).
type Sinc struct {
	line   *delay.Line
	origin int
	center int
	warmup bool
	taper  func(x float64) float64
	kind   window.Type

	weights []float64
	tapers  []float64
	samples []float64
}

// NewSinc returns a windowed-sinc kernel with a silent window.
func NewSinc(opts ...Option) (*Sinc, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.taps < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTaps, cfg.taps)
	}

	line, err := delay.New(cfg.taps)
	if err != nil {
		return nil, err
	}

	var wopts []window.Option
	if cfg.alpha >= 0 {
		wopts = append(wopts, window.WithAlpha(cfg.alpha))
	}

	center := (cfg.taps - 1) / 2
	if cfg.warmup {
		center = cfg.taps / 2
	}

	s := &Sinc{
		line:    line,
		center:  center,
		warmup:  cfg.warmup,
		taper:   window.Evaluator(cfg.window, wopts...),
		kind:    cfg.window,
		weights: make([]float64, cfg.taps),
		tapers:  make([]float64, cfg.taps),
		samples: make([]float64, cfg.taps),
	}
	s.restart()

	return s, nil
}

// Taps returns the window size N.
func (s *Sinc) Taps() int { return s.line.Len() }

// Latency returns N-1-(N-1)/2, or N-1-N/2 once a warm-up kernel has settled.
func (s *Sinc) Latency() int { return s.line.Len() - 1 - s.center }

// Taper returns the window applied to the sinc weights.
func (s *Sinc) Taper() window.Type { return s.kind }

// Push ingests x into the window.
func (s *Sinc) Push(x float32) {
	s.line.Write(x)
	if s.origin < s.center {
		s.origin++
	}
}

// Interpolate returns the weighted sum of the window samples around the origin.
func (s *Sinc) Interpolate(t float64) float32 {
	if s.warmup {
		return s.interpolateWarm(t)
	}

	n := float64(len(s.weights))
	for i := range s.weights {
		d := float64(i-s.origin) - t
		s.weights[i] = sinc(d)
		s.tapers[i] = s.taper(0.5 + d/n)
	}

	vecmath.MulBlockInPlace(s.weights, s.tapers)
	s.line.Widen(s.samples)
	vecmath.MulBlockInPlace(s.weights, s.samples)

	var acc float64
	for _, v := range s.weights {
		acc += v
	}

	return float32(acc)
}

// Window copies the window, oldest first.
func (s *Sinc) Window(dst []float32) []float32 {
	return s.line.Snapshot(dst)
}

// Load replaces the window and restarts the warm-up.
func (s *Sinc) Load(w []float32) {
	s.line.Load(w)
	s.restart()
}

// Reset zeroes the window and restarts the warm-up.
func (s *Sinc) Reset() {
	s.line.Reset()
	s.restart()
}

func (s *Sinc) restart() {
	s.origin = s.center
	if s.warmup {
		s.origin = 0
	}
}

// interpolateWarm sums reach taps on each side of the moving origin. The
// right-hand taps wrap around the window.
func (s *Sinc) interpolateWarm(t float64) float32 {
	size := len(s.weights)
	half := size / 2

	reach := half
	switch {
	case s.origin+half >= size:
		reach = size - half
	case s.origin+1 < half:
		reach = s.origin + 1
	}

	n := float64(size)
	m := 0
	for k := range reach {
		for _, i := range [2]int{s.origin - k, s.origin + 1 + k} {
			d := float64(i-s.origin) - t
			s.weights[m] = sinc(d)
			s.tapers[m] = s.taper(0.5 + d/n)
			s.samples[m] = float64(s.line.At(i % size))
			m++
		}
	}

	vecmath.MulBlockInPlace(s.weights[:m], s.tapers[:m])
	vecmath.MulBlockInPlace(s.weights[:m], s.samples[:m])

	var acc float64
	for _, v := range s.weights[:m] {
		acc += v
	}

	return float32(acc)
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

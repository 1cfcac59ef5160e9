// Package window provides taper functions for windowed-sinc kernels and
// spectral analysis.
//
// A taper can be evaluated at any normalized position with [At], which is
// what interpolation kernels need, or sampled into a coefficient block with
// [Generate] and applied to a signal with [Apply].
package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
	TypeKaiser
	TypeLanczos
	TypeWelch
)

var (
	hannCoeffs            = []float64{0.5, -0.5}
	hammingCoeffs         = []float64{0.54, -0.46}
	blackmanCoeffs        = []float64{0.42, -0.5, 0.08}
	blackmanHarris4Coeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
)

var names = map[Type]string{
	TypeRectangular:         "rectangular",
	TypeHann:                "hann",
	TypeHamming:             "hamming",
	TypeBlackman:            "blackman",
	TypeBlackmanHarris4Term: "blackman-harris",
	TypeKaiser:              "kaiser",
	TypeLanczos:             "lanczos",
	TypeWelch:               "welch",
}

// String returns the lower-case window name.
func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("window(%d)", int(t))
}

// Parse resolves a window name as printed by [Type.String].
func Parse(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range names {
		if n == name {
			return t, nil
		}
	}
	return TypeRectangular, fmt.Errorf("%w: %q", errUnknownType, name)
}

// Option configures window evaluation.
type Option func(*config)

type config struct {
	alpha    float64
	periodic bool
}

func defaultConfig() config {
	return config{alpha: 1}
}

// WithAlpha configures the beta parameter of Kaiser or the lobe count of Lanczos.
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.alpha = v
		}
	}
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
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

// At evaluates window t at normalized position x, where 0 and 1 are the
// window edges and 0.5 its center. Positions outside [0,1] are clamped.
func At(t Type, x float64, opts ...Option) float64 {
	return evalWindow(t, x, applyOptions(opts))
}

// Evaluator returns a function evaluating window t at normalized positions
// with the options resolved once.
func Evaluator(t Type, opts ...Option) func(x float64) float64 {
	cfg := applyOptions(opts)
	return func(x float64) float64 {
		return evalWindow(t, x, cfg)
	}
}

// Generate returns window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := applyOptions(opts)

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length, cfg.periodic), cfg)
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	vecmath.MulBlockInPlace(buf, coeffs)
}

// CoherentGain returns sum(w)/N for coefficients produced by [Generate].
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs)), nil
}

func evalWindow(t Type, x float64, cfg config) float64 {
	if x < 0 {
		x = 0
	}

	if x > 1 {
		x = 1
	}

	switch t {
	case TypeRectangular:
		return 1
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case TypeBlackmanHarris4Term:
		return cosineFromCoeffs(x, blackmanHarris4Coeffs)
	case TypeKaiser:
		return kaiserAt(x, cfg.alpha)
	case TypeLanczos:
		return sinc((2*x - 1) * cfg.alpha)
	case TypeWelch:
		d := x - 0.5
		return 1 - 4*d*d
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0.5
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

// besselI0 returns a numerical approximation of the modified Bessel function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}

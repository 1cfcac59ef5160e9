package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-resample/dsp/core"
	"github.com/cwbudde/algo-resample/dsp/interp"
)

var (
	// ErrInvalidRate indicates a non-positive or non-finite sample rate.
	ErrInvalidRate = errors.New("resample: invalid sample rate")
	// ErrInvalidChannels indicates a channel count below one.
	ErrInvalidChannels = errors.New("resample: invalid channel count")
)

// primingOutputs is the number of leading output positions dropped: on every
// call by default, once per stream with WithPhaseCarry.
const primingOutputs = 2

// maxRatio bounds srcHz/dstHz in both directions so the read cursor always
// moves.
const maxRatio = 1 << 16

// State reports whether a Resampler has seen input yet.
type State int

const (
	// StateCold means no Process call happened since construction or Reset.
	StateCold State = iota
	// StateWarm means carried history comes from a previous call.
	StateWarm
)

func (s State) String() string {
	if s == StateWarm {
		return "warm"
	}
	return "cold"
}

// Resampler converts contiguous chunks between sample rates, carrying the
// last K-1 input samples across calls.
type Resampler struct {
	kernel  interp.Kernel
	history []float32
	window  []float32
	carry   bool

	pos   float64
	lead  int
	state State
}

// New creates a Resampler in the Cold state.
func New(opts ...Option) (*Resampler, error) {
	cfg := applyOptions(opts)
	k, err := cfg.build()
	if err != nil {
		return nil, fmt.Errorf("resample: build kernel: %w", err)
	}

	r := &Resampler{
		kernel:  k,
		history: make([]float32, k.Taps()-1),
		window:  make([]float32, 0, k.Taps()),
		carry:   cfg.carry,
	}
	r.Reset()

	return r, nil
}

// Resample converts input as a one-shot helper. It runs with
// [WithPhaseCarry] and flushes the kernel latency with silence so the tail of
// input reaches the output.
func Resample(input []float32, srcHz, dstHz float64, opts ...Option) ([]float32, error) {
	r, err := New(append([]Option{WithPhaseCarry()}, opts...)...)
	if err != nil {
		return nil, err
	}

	padded := make([]float32, len(input)+r.kernel.Latency())
	copy(padded, input)

	out := make([]float32, r.PredictOutputLen(len(padded), srcHz, dstHz))
	if _, err := r.Process(padded, out, srcHz, dstHz); err != nil {
		return nil, err
	}

	return out, nil
}

// Process resamples input from srcHz to dstHz into output and returns the
// number of samples written.
//
// By default every call stands on its own. The kernel window is loaded with
// the carried history followed by the first input sample, the read cursor
// starts at zero and the first two positions are dropped. Output is filled
// completely; positions past the end of input read silence.
//
// With [WithPhaseCarry] the read cursor and window continue where the
// previous call stopped, so any chunking of a signal yields the same output.
// Values produced beyond len(output) are dropped, yet still advance the
// stream, and the unwritten tail of output is zero-filled.
//
// Input of any length is accepted. The last K-1 samples seen become the
// carried history.
func (r *Resampler) Process(input, output []float32, srcHz, dstHz float64) (int, error) {
	step, err := stepFor(srcHz, dstHz)
	if err != nil {
		return 0, err
	}

	var written int
	if r.carry {
		written = r.continueStream(input, output, step)
	} else {
		written = r.reseed(input, output, step)
	}

	r.remember(input)
	r.state = StateWarm
	core.Zero(output[written:])

	return written, nil
}

// reseed runs one self-contained conversion starting from the carried history.
func (r *Resampler) reseed(input, output []float32, step float64) int {
	next := min(len(input), 1)
	r.window = append(append(r.window[:0], r.history...), input[:next]...)
	r.kernel.Load(r.window)

	pos := 0.0
	for i := -primingOutputs; i < len(output); i++ {
		for ; pos >= 1; pos-- {
			var x float32
			if next < len(input) {
				x = input[next]
				next++
			}
			r.kernel.Push(x)
		}
		if i >= 0 {
			output[i] = r.kernel.Interpolate(pos)
		}
		pos += step
	}

	return len(output)
}

// continueStream resumes the stream at the carried cursor and stops when the
// cursor needs a sample beyond input.
func (r *Resampler) continueStream(input, output []float32, step float64) int {
	r.seed()

	written := 0
	for i := 0; ; {
		if r.pos >= 1 {
			if i == len(input) {
				break
			}
			r.kernel.Push(input[i])
			i++
			r.pos--
			continue
		}

		switch {
		case r.lead > 0:
			r.lead--
		case written < len(output):
			output[written] = r.kernel.Interpolate(r.pos)
			written++
		}
		r.pos += step
	}

	return written
}

// Drain pushes Latency() samples of silence so the samples still held back
// by the kernel reach output. It is meant for [WithPhaseCarry]; by default the
// call reseeds like any other and only fills output from the history.
func (r *Resampler) Drain(output []float32, srcHz, dstHz float64) (int, error) {
	return r.Process(make([]float32, r.kernel.Latency()), output, srcHz, dstHz)
}

// PredictOutputLen returns how many output samples inputLen input samples
// cover, without changing state. With [WithPhaseCarry] this is exactly what
// the next Process call writes. Otherwise Process fills any output and the
// result is the natural length inputLen*dstHz/srcHz, rounded down. Invalid
// rates yield 0.
func (r *Resampler) PredictOutputLen(inputLen int, srcHz, dstHz float64) int {
	step, err := stepFor(srcHz, dstHz)
	if err != nil || inputLen < 0 {
		return 0
	}
	if !r.carry {
		n := float64(inputLen) / step
		if whole := math.Round(n); math.Abs(n-whole) < 1e-9 {
			return int(whole)
		}
		return int(n)
	}

	pos, lead := r.pos, r.lead
	count := 0
	for i := 0; ; {
		if pos >= 1 {
			if i == inputLen {
				break
			}
			i++
			pos--
			continue
		}
		if lead > 0 {
			lead--
		} else {
			count++
		}
		pos += step
	}

	return count
}

// Reset returns the Resampler to the Cold state.
func (r *Resampler) Reset() {
	core.Zero(r.history)
	r.kernel.Reset()
	r.pos = 0
	r.lead = primingOutputs
	r.state = StateCold
}

// State returns Cold before the first Process call and Warm afterwards.
func (r *Resampler) State() State {
	return r.state
}

// History returns a copy of the carried history, oldest first.
func (r *Resampler) History() []float32 {
	return append([]float32(nil), r.history...)
}

// Kernel returns the interpolation kernel.
func (r *Resampler) Kernel() interp.Kernel {
	return r.kernel
}

// seed rebuilds the kernel window from the carried history. The oldest
// window slot stays silent; it is shifted out by the first input sample
// before any new position is evaluated.
func (r *Resampler) seed() {
	r.kernel.Reset()
	for _, v := range r.history {
		r.kernel.Push(v)
	}
}

func (r *Resampler) remember(input []float32) {
	keep := len(r.history)
	if len(input) >= keep {
		copy(r.history, input[len(input)-keep:])
		return
	}

	shift := len(input)
	copy(r.history, r.history[shift:])
	copy(r.history[keep-shift:], input)
}

func stepFor(srcHz, dstHz float64) (float64, error) {
	if !core.PositiveFinite(srcHz) || !core.PositiveFinite(dstHz) {
		return 0, fmt.Errorf("%w: %v -> %v", ErrInvalidRate, srcHz, dstHz)
	}

	step := srcHz / dstHz
	if !(step >= 1.0/maxRatio && step <= maxRatio) {
		return 0, fmt.Errorf("%w: ratio %v/%v outside 1/%d..%d", ErrInvalidRate, srcHz, dstHz, maxRatio, maxRatio)
	}

	return step, nil
}

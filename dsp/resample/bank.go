package resample

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-resample/dsp/core"
)

var errSharedKernel = errors.New("resample: a kernel instance cannot serve several channels")

// Bank converts interleaved multi-channel frames. Every channel has its own
// Resampler, and therefore its own history and phase.
type Bank struct {
	channels []*Resampler
	in, out  []float32
}

// NewBank creates a Bank with one Resampler per channel.
func NewBank(channels int, opts ...Option) (*Bank, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}
	if channels > 1 && applyOptions(opts).kernel != nil {
		return nil, errSharedKernel
	}

	b := &Bank{channels: make([]*Resampler, channels)}
	for ch := range b.channels {
		r, err := New(opts...)
		if err != nil {
			return nil, err
		}
		b.channels[ch] = r
	}

	return b, nil
}

// Channels returns the channel count.
func (b *Bank) Channels() int {
	return len(b.channels)
}

// Channel returns the Resampler of channel ch, or nil when out of range.
func (b *Bank) Channel(ch int) *Resampler {
	if ch < 0 || ch >= len(b.channels) {
		return nil
	}
	return b.channels[ch]
}

// ProcessInterleaved converts interleaved input frames into interleaved
// output frames and returns the number of frames written. Both slices must
// hold a whole number of frames.
func (b *Bank) ProcessInterleaved(input, output []float32, srcHz, dstHz float64) (int, error) {
	n := len(b.channels)
	if len(input)%n != 0 || len(output)%n != 0 {
		return 0, fmt.Errorf("%w: buffers of %d and %d samples are not whole %d-channel frames",
			ErrInvalidChannels, len(input), len(output), n)
	}
	if _, err := stepFor(srcHz, dstHz); err != nil {
		return 0, err
	}

	inFrames, outFrames := len(input)/n, len(output)/n
	b.in = core.EnsureLen(b.in, inFrames)
	b.out = core.EnsureLen(b.out, outFrames)

	frames := 0
	for ch, r := range b.channels {
		for i := range inFrames {
			b.in[i] = input[i*n+ch]
		}

		written, err := r.Process(b.in, b.out, srcHz, dstHz)
		if err != nil {
			return 0, fmt.Errorf("resample: channel %d: %w", ch, err)
		}
		frames = written

		for i := range outFrames {
			output[i*n+ch] = b.out[i]
		}
	}

	return frames, nil
}

// Reset returns every channel to the Cold state.
func (b *Bank) Reset() {
	for _, r := range b.channels {
		r.Reset()
	}
}

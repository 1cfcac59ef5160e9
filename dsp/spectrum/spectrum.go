package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-resample/dsp/core"
	"github.com/cwbudde/algo-resample/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidSize is returned for FFT sizes that are not a power of two >= 2.
var ErrInvalidSize = errors.New("spectrum: FFT size must be a power of two")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	buf.data = core.EnsureLen(buf.data, 2*n)
	return buf.data[:n], buf.data[n:], buf
}

// Power returns |X[k]|^2 for each complex spectrum bin. Scratch buffers are
// pooled internally, so in steady state this allocates only the output slice.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	scratchPool.Put(buf)
	return out
}

// Analyzer computes windowed one-sided power spectra of a fixed size.
// It reuses its buffers and is not safe for concurrent use.
type Analyzer struct {
	size    int
	coeffs  []float64
	forward func(dst, src []complex128) error

	frame []float64
	in    []complex128
	out   []complex128
}

// NewAnalyzer plans an FFT of size points with the periodic form of window t.
func NewAnalyzer(size int, t window.Type, opts ...window.Option) (*Analyzer, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	opts = append([]window.Option{window.WithPeriodic()}, opts...)
	return &Analyzer{
		size:    size,
		coeffs:  window.Generate(t, size, opts...),
		forward: plan.Forward,
		in:      make([]complex128, size),
		out:     make([]complex128, size),
	}, nil
}

// Size returns the FFT size.
func (a *Analyzer) Size() int { return a.size }

// Bins returns the number of one-sided bins, Size()/2+1.
func (a *Analyzer) Bins() int { return a.size/2 + 1 }

// Power windows the first Size() samples of frame and writes the one-sided
// power spectrum into dst, which is grown as needed. Shorter frames are
// zero-padded.
func (a *Analyzer) Power(dst []float64, frame []float32) ([]float64, error) {
	a.frame = core.Widen(a.frame, frame[:min(len(frame), a.size)])
	a.frame = append(a.frame, make([]float64, a.size-len(a.frame))...)
	vecmath.MulBlockInPlace(a.frame, a.coeffs)

	for i, v := range a.frame {
		a.in[i] = complex(v, 0)
	}
	if err := a.forward(a.out, a.in); err != nil {
		return nil, fmt.Errorf("spectrum: fft: %w", err)
	}

	bins := a.Bins()
	dst = core.EnsureLen(dst, bins)
	re, im, buf := getScratch(bins)
	for i := range bins {
		re[i] = real(a.out[i])
		im[i] = imag(a.out[i])
	}
	vecmath.Power(dst, re, im)
	scratchPool.Put(buf)

	return dst, nil
}

// BinFrequency returns the centre frequency of bin k.
func BinFrequency(k, size int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(size)
}

// NearestBin returns the bin closest to freqHz.
func NearestBin(freqHz float64, size int, sampleRate float64) int {
	return int(math.Round(freqHz * float64(size) / sampleRate))
}

package fidelity

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-resample/dsp/core"
	"github.com/cwbudde/algo-resample/dsp/resample"
	"github.com/cwbudde/algo-resample/dsp/signal"
	"github.com/cwbudde/algo-resample/dsp/spectrum"
	"github.com/cwbudde/algo-resample/dsp/window"
	timestats "github.com/cwbudde/algo-resample/stats/time"
)

const (
	defaultToneHz     = 1000.0
	defaultAmplitude  = 0.5
	defaultFFTSize    = 8192
	defaultCapture    = 2
	settleOutputs     = 256
	spareInputSamples = 64
)

var (
	// ErrInvalidConfig is returned for unusable rates or sizes.
	ErrInvalidConfig = errors.New("fidelity: invalid config")
	// ErrShortSignal is returned when fewer than FFTSize samples are available.
	ErrShortSignal = errors.New("fidelity: signal shorter than FFT size")
)

// Config holds measurement parameters. Zero fields take defaults.
type Config struct {
	SourceRate float64
	TargetRate float64
	// ToneFreq is snapped to the nearest FFT bin centre at TargetRate.
	ToneFreq  float64
	Amplitude float64
	// FFTSize must be a power of two; zero selects 8192.
	FFTSize int
	// WindowType zero (rectangular) selects a periodic Hann window.
	WindowType window.Type
	// CaptureBins is the half-width of the tone's main lobe in bins.
	CaptureBins int
	// BlockSize is the chunk size Measure feeds the resampler; zero selects 1024.
	BlockSize int
}

// Result holds a tone analysis.
type Result struct {
	ToneFreq    float64
	SignalPower float64
	NoisePower  float64
	// SINAD is the signal to noise-and-distortion ratio in dB.
	SINAD float64
	// PeakSpurDB is the strongest non-tone bin relative to the tone peak, in dB.
	PeakSpurDB float64
	// GainDB is the output RMS relative to the input tone RMS. Only Measure sets it.
	GainDB float64
	// PeakDB is the peak absolute sample of the analysed output in dBFS.
	PeakDB float64
}

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.ToneFreq == 0 {
		cfg.ToneFreq = defaultToneHz
	}
	if cfg.Amplitude == 0 {
		cfg.Amplitude = defaultAmplitude
	}
	if cfg.FFTSize == 0 {
		cfg.FFTSize = defaultFFTSize
	}
	if cfg.WindowType == window.TypeRectangular {
		cfg.WindowType = window.TypeHann
	}
	if cfg.CaptureBins <= 0 {
		cfg.CaptureBins = defaultCapture
	}

	switch {
	case !core.PositiveFinite(cfg.TargetRate):
		return cfg, fmt.Errorf("%w: target rate %v", ErrInvalidConfig, cfg.TargetRate)
	case cfg.FFTSize < 16 || cfg.FFTSize&(cfg.FFTSize-1) != 0:
		return cfg, fmt.Errorf("%w: FFT size %d", ErrInvalidConfig, cfg.FFTSize)
	case !core.PositiveFinite(cfg.ToneFreq) || cfg.ToneFreq >= cfg.TargetRate/2:
		return cfg, fmt.Errorf("%w: tone %v Hz at %v Hz", ErrInvalidConfig, cfg.ToneFreq, cfg.TargetRate)
	}

	binHz := cfg.TargetRate / float64(cfg.FFTSize)
	bin := max(math.Round(cfg.ToneFreq/binHz), float64(cfg.CaptureBins+1))
	cfg.ToneFreq = bin * binHz

	return cfg, nil
}

// Measure resamples a sine with a Resampler built from opts and analyses
// the settled output. The Resampler carries its phase across blocks, so the
// result does not depend on cfg.BlockSize.
func Measure(cfg Config, opts ...resample.Option) (Result, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return Result{}, err
	}
	if !core.PositiveFinite(cfg.SourceRate) {
		return Result{}, fmt.Errorf("%w: source rate %v", ErrInvalidConfig, cfg.SourceRate)
	}
	if cfg.ToneFreq >= cfg.SourceRate/2 {
		return Result{}, fmt.Errorf("%w: tone %v Hz above source Nyquist", ErrInvalidConfig, cfg.ToneFreq)
	}

	r, err := resample.New(append([]resample.Option{resample.WithPhaseCarry()}, opts...)...)
	if err != nil {
		return Result{}, err
	}

	want := settleOutputs + cfg.FFTSize
	n := int(math.Ceil(float64(want)*cfg.SourceRate/cfg.TargetRate)) + r.Kernel().Taps() + spareInputSamples

	stream := core.ApplyStreamOptions(
		core.WithSampleRate(cfg.SourceRate),
		core.WithBlockSize(cfg.BlockSize),
	)
	in, err := signal.NewGenerator(core.WithSampleRate(stream.SampleRate)).Sine(cfg.ToneFreq, cfg.Amplitude, n)
	if err != nil {
		return Result{}, err
	}

	meter := timestats.NewStreamingStats()
	out := make([]float32, 0, r.PredictOutputLen(n, cfg.SourceRate, cfg.TargetRate))
	stream.Blocks(n, func(start, end int) {
		if err != nil {
			return
		}
		k := r.PredictOutputLen(end-start, cfg.SourceRate, cfg.TargetRate)
		prev := len(out)
		var w int
		w, err = r.Process(in[start:end], out[prev:prev+k], cfg.SourceRate, cfg.TargetRate)
		out = out[:prev+w]

		if lo, hi := max(prev, settleOutputs), min(len(out), want); lo < hi {
			meter.Update(out[lo:hi])
		}
	})
	if err != nil {
		return Result{}, err
	}
	written := len(out)
	if written < want {
		return Result{}, fmt.Errorf("%w: %d of %d samples", ErrShortSignal, written, want)
	}

	res, err := analyze(out[settleOutputs:want], cfg)
	if err != nil {
		return Result{}, err
	}
	level := meter.Result()
	res.GainDB = 20 * math.Log10(level.RMS/(cfg.Amplitude/math.Sqrt2))
	res.PeakDB = level.Peak_dB

	return res, nil
}

// AnalyzeSignal analyses the first FFTSize samples, taken at cfg.TargetRate.
// SourceRate is ignored.
func AnalyzeSignal(samples []float32, cfg Config) (Result, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return Result{}, err
	}
	if len(samples) < cfg.FFTSize {
		return Result{}, fmt.Errorf("%w: %d < %d", ErrShortSignal, len(samples), cfg.FFTSize)
	}

	res, err := analyze(samples[:cfg.FFTSize], cfg)
	if err != nil {
		return Result{}, err
	}
	res.PeakDB = timestats.Calculate(samples[:cfg.FFTSize]).Peak_dB

	return res, nil
}

func analyze(samples []float32, cfg Config) (Result, error) {
	a, err := spectrum.NewAnalyzer(cfg.FFTSize, cfg.WindowType)
	if err != nil {
		return Result{}, fmt.Errorf("fidelity: %w", err)
	}
	power, err := a.Power(nil, samples)
	if err != nil {
		return Result{}, err
	}

	tone := spectrum.NearestBin(cfg.ToneFreq, cfg.FFTSize, cfg.TargetRate)
	lo, hi := tone-cfg.CaptureBins, tone+cfg.CaptureBins

	var sig, noise, spur float64
	for i := 1; i < len(power); i++ {
		if i >= lo && i <= hi {
			sig += power[i]
			continue
		}
		noise += power[i]
		spur = max(spur, power[i])
	}

	return Result{
		ToneFreq:    spectrum.BinFrequency(tone, cfg.FFTSize, cfg.TargetRate),
		SignalPower: sig,
		NoisePower:  noise,
		SINAD:       ratioDB(sig, noise),
		PeakSpurDB:  ratioDB(spur, power[tone]),
	}, nil
}

// ratioDB returns 10*log10(num/den), +Inf when den is zero.
func ratioDB(num, den float64) float64 {
	switch {
	case den <= 0:
		return math.Inf(1)
	case num <= 0:
		return math.Inf(-1)
	}
	return powerToDB(num / den)
}

package core

// StreamConfig describes how a sample stream is delivered: its rate, the
// block size callers feed per call and the channel count of interleaved data.
type StreamConfig struct {
	SampleRate float64
	BlockSize  int
	Channels   int
}

// StreamOption mutates a StreamConfig.
type StreamOption func(*StreamConfig)

// DefaultStreamConfig returns mono 48 kHz delivered in 1024-sample blocks.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		SampleRate: 48000,
		BlockSize:  1024,
		Channels:   1,
	}
}

// WithSampleRate sets the stream sample rate.
func WithSampleRate(sampleRate float64) StreamOption {
	return func(cfg *StreamConfig) {
		if PositiveFinite(sampleRate) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the number of frames delivered per call.
func WithBlockSize(blockSize int) StreamOption {
	return func(cfg *StreamConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// WithChannels sets the interleaved channel count.
func WithChannels(channels int) StreamOption {
	return func(cfg *StreamConfig) {
		if channels > 0 {
			cfg.Channels = channels
		}
	}
}

// ApplyStreamOptions applies zero or more options to the default config.
func ApplyStreamOptions(opts ...StreamOption) StreamConfig {
	cfg := DefaultStreamConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Blocks splits n samples into consecutive [start, end) ranges of at most
// BlockSize*Channels samples, calling fn for each.
func (c StreamConfig) Blocks(n int, fn func(start, end int)) {
	size := c.BlockSize * max(c.Channels, 1)
	if size <= 0 {
		size = n
	}
	for start := 0; start < n; start += size {
		fn(start, min(n, start+size))
	}
}

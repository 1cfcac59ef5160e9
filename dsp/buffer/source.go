package buffer

type sourceConfig struct {
	fill float32
}

// SourceOption configures a Source.
type SourceOption func(*sourceConfig)

// WithFill sets the value substituted for missing samples. The default is 0.
func WithFill(v float32) SourceOption {
	return func(cfg *sourceConfig) {
		cfg.fill = v
	}
}

// Source reads a Consumer as an endless stream: an empty queue yields the
// fill value instead of blocking. It satisfies resample.Source.
type Source struct {
	c         *Consumer
	fill      float32
	underruns uint64
}

// NewSource wraps c. The Source takes over the consumer role of c.
func NewSource(c *Consumer, opts ...SourceOption) *Source {
	var cfg sourceConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Source{c: c, fill: cfg.fill}
}

// Next pops the next sample, or returns the fill value when the queue is empty.
func (s *Source) Next() float32 {
	if x, ok := s.c.Pop(); ok {
		return x
	}
	s.underruns++
	return s.fill
}

// Underruns returns how many fill values Next has substituted.
func (s *Source) Underruns() uint64 {
	return s.underruns
}

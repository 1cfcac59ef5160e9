package interp

// Linear is the 2-tap kernel. Its window is the previous sample a and the
// newest sample b.
type Linear struct {
	a, b float32
}

// NewLinear returns a linear kernel with a silent window.
func NewLinear() *Linear {
	return &Linear{}
}

// Taps returns 2.
func (l *Linear) Taps() int { return 2 }

// Latency returns 1.
func (l *Linear) Latency() int { return 1 }

// Push shifts the window by one sample.
func (l *Linear) Push(x float32) {
	l.a, l.b = l.b, x
}

// Interpolate returns a + t*(b-a); t=0 yields a exactly.
func (l *Linear) Interpolate(t float64) float32 {
	a := float64(l.a)
	return float32(a + t*(float64(l.b)-a))
}

// Window returns [a, b].
func (l *Linear) Window(dst []float32) []float32 {
	return append(dst[:0], l.a, l.b)
}

// Load sets the window to w[0] and w[1].
func (l *Linear) Load(w []float32) {
	l.a, l.b = 0, 0
	if len(w) > 0 {
		l.a = w[0]
	}
	if len(w) > 1 {
		l.b = w[1]
	}
}

// Reset zeroes the window.
func (l *Linear) Reset() {
	l.a, l.b = 0, 0
}

// Package delay provides a fixed-size circular sample line. Interpolation
// kernels use it as their window: the line always holds exactly Len samples,
// writing one drops the oldest.
package delay

import "fmt"

// Line is a circular delay line of float32 samples.
type Line struct {
	buffer   []float32
	writePos int
}

// New returns a zero-filled delay line of fixed size.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	return &Line{buffer: make([]float32, size)}, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Write writes one sample and returns the oldest sample it replaced.
func (d *Line) Write(sample float32) float32 {
	old := d.buffer[d.writePos]
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
	return old
}

// Read reads an integer delay in samples; delay 1 is the most recent write.
func (d *Line) Read(delay int) float32 {
	size := len(d.buffer)
	if size == 0 {
		return 0
	}
	readPos := ((d.writePos-delay)%size + size) % size
	return d.buffer[readPos]
}

// At returns the i-th sample counted from the oldest (0) to the newest (Len-1).
func (d *Line) At(i int) float32 {
	return d.Read(len(d.buffer) - i)
}

// Snapshot copies the line into dst ordered oldest first and returns it.
// dst is grown when its capacity is too small.
func (d *Line) Snapshot(dst []float32) []float32 {
	if cap(dst) < len(d.buffer) {
		dst = make([]float32, len(d.buffer))
	}
	dst = dst[:len(d.buffer)]
	n := copy(dst, d.buffer[d.writePos:])
	copy(dst[n:], d.buffer[:d.writePos])
	return dst
}

// Widen writes the line into dst as float64, oldest first. dst must hold Len values.
func (d *Line) Widen(dst []float64) {
	n := 0
	for _, v := range d.buffer[d.writePos:] {
		dst[n] = float64(v)
		n++
	}
	for _, v := range d.buffer[:d.writePos] {
		dst[n] = float64(v)
		n++
	}
}

// Load replaces the line contents with src, oldest first. Missing values are
// zero and values beyond Len are ignored.
func (d *Line) Load(src []float32) {
	n := copy(d.buffer, src)
	for i := n; i < len(d.buffer); i++ {
		d.buffer[i] = 0
	}
	d.writePos = 0
}

// Reset clears line state.
func (d *Line) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
	d.writePos = 0
}

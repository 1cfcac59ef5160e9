package buffer

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

var (
	// ErrFull is returned when the producer writes to a full queue.
	ErrFull = errors.New("buffer: queue full")
	// ErrInvalidCapacity is returned by NewRing for a capacity below one.
	ErrInvalidCapacity = errors.New("buffer: invalid capacity")
)

// noCopy makes go vet's copylocks check flag copied handles.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// ring is the storage shared by one Producer and one Consumer. head counts
// samples popped and tail counts samples pushed; both only grow.
type ring struct {
	slots []float32

	_    cpu.CacheLinePad
	head atomic.Uint64
	_    cpu.CacheLinePad
	tail atomic.Uint64
	_    cpu.CacheLinePad
}

func (r *ring) len() int {
	return int(r.tail.Load() - r.head.Load())
}

// Producer is the writing end of a ring. It must be used by one goroutine.
type Producer struct {
	_ noCopy
	r *ring
}

// Consumer is the reading end of a ring. It must be used by one goroutine.
type Consumer struct {
	_ noCopy
	r *ring
}

// NewRing allocates a queue holding up to capacity samples.
func NewRing(capacity int) (*Producer, *Consumer, error) {
	if capacity < 1 {
		return nil, nil, ErrInvalidCapacity
	}

	r := &ring{slots: make([]float32, capacity)}
	return &Producer{r: r}, &Consumer{r: r}, nil
}

// Push enqueues x, or returns ErrFull and leaves the queue unchanged.
func (p *Producer) Push(x float32) error {
	r := p.r
	tail := r.tail.Load()
	if tail-r.head.Load() == uint64(len(r.slots)) {
		return ErrFull
	}

	r.slots[tail%uint64(len(r.slots))] = x
	r.tail.Store(tail + 1)

	return nil
}

// Write enqueues as much of src as fits and returns the count. The error is
// ErrFull when src was truncated.
func (p *Producer) Write(src []float32) (int, error) {
	r := p.r
	size := uint64(len(r.slots))
	tail := r.tail.Load()
	n := min(len(src), int(size-(tail-r.head.Load())))

	for i := range n {
		r.slots[(tail+uint64(i))%size] = src[i]
	}
	r.tail.Store(tail + uint64(n))

	if n < len(src) {
		return n, ErrFull
	}
	return n, nil
}

// Len returns the number of queued samples.
func (p *Producer) Len() int { return p.r.len() }

// Cap returns the queue capacity.
func (p *Producer) Cap() int { return len(p.r.slots) }

// Free returns how many samples can be pushed before the queue is full.
func (p *Producer) Free() int { return len(p.r.slots) - p.r.len() }

// Pop dequeues the oldest sample. It reports false when the queue is empty.
func (c *Consumer) Pop() (float32, bool) {
	r := c.r
	head := r.head.Load()
	if head == r.tail.Load() {
		return 0, false
	}

	x := r.slots[head%uint64(len(r.slots))]
	r.head.Store(head + 1)

	return x, true
}

// Read dequeues up to len(dst) samples into dst and returns the count.
func (c *Consumer) Read(dst []float32) int {
	r := c.r
	size := uint64(len(r.slots))
	head := r.head.Load()
	n := min(len(dst), int(r.tail.Load()-head))

	for i := range n {
		dst[i] = r.slots[(head+uint64(i))%size]
	}
	r.head.Store(head + uint64(n))

	return n
}

// Len returns the number of queued samples.
func (c *Consumer) Len() int { return c.r.len() }

// Cap returns the queue capacity.
func (c *Consumer) Cap() int { return len(c.r.slots) }

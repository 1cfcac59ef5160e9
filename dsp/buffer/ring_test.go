package buffer

import (
	"errors"
	"sync"
	"testing"
)

func mustRing(t *testing.T, capacity int) (*Producer, *Consumer) {
	t.Helper()
	p, c, err := NewRing(capacity)
	if err != nil {
		t.Fatalf("NewRing(%d) error = %v", capacity, err)
	}
	return p, c
}

func TestNewRingInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		if _, _, err := NewRing(capacity); !errors.Is(err, ErrInvalidCapacity) {
			t.Fatalf("NewRing(%d) error = %v, want ErrInvalidCapacity", capacity, err)
		}
	}
}

func TestPushPopFIFO(t *testing.T) {
	p, c := mustRing(t, 3)

	for _, v := range []float32{1, 2, 3} {
		if err := p.Push(v); err != nil {
			t.Fatalf("Push(%v) error = %v", v, err)
		}
	}
	if err := p.Push(4); !errors.Is(err, ErrFull) {
		t.Fatalf("Push on full queue error = %v, want ErrFull", err)
	}
	if p.Len() != 3 || p.Free() != 0 || p.Cap() != 3 {
		t.Fatalf("Len/Free/Cap = %d/%d/%d, want 3/0/3", p.Len(), p.Free(), p.Cap())
	}

	for _, want := range []float32{1, 2, 3} {
		got, ok := c.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() = %v, %v; want %v, true", got, ok, want)
		}
	}
	if _, ok := c.Pop(); ok {
		t.Fatal("Pop() on empty queue reported a sample")
	}
}

func TestWrapAround(t *testing.T) {
	p, c := mustRing(t, 4)

	next := float32(0)
	want := float32(0)
	for round := range 50 {
		for range round%4 + 1 {
			if err := p.Push(next); err != nil {
				t.Fatalf("round %d: Push() error = %v", round, err)
			}
			next++
		}
		for c.Len() > 0 {
			got, _ := c.Pop()
			if got != want {
				t.Fatalf("round %d: Pop() = %v, want %v", round, got, want)
			}
			want++
		}
	}
}

func TestWriteTruncates(t *testing.T) {
	p, c := mustRing(t, 4)

	n, err := p.Write([]float32{1, 2, 3, 4, 5, 6})
	if n != 4 || !errors.Is(err, ErrFull) {
		t.Fatalf("Write() = %d, %v; want 4, ErrFull", n, err)
	}

	dst := make([]float32, 3)
	if got := c.Read(dst); got != 3 {
		t.Fatalf("Read() = %d, want 3", got)
	}
	if dst[0] != 1 || dst[1] != 2 || dst[2] != 3 {
		t.Fatalf("Read() data = %v", dst)
	}

	n, err = p.Write([]float32{7, 8})
	if n != 2 || err != nil {
		t.Fatalf("Write() = %d, %v; want 2, nil", n, err)
	}

	dst = make([]float32, 8)
	got := c.Read(dst)
	if got != 3 || dst[0] != 4 || dst[1] != 7 || dst[2] != 8 {
		t.Fatalf("Read() = %d %v, want 3 [4 7 8 ...]", got, dst)
	}
	if c.Len() != 0 || c.Cap() != 4 {
		t.Fatalf("Len/Cap = %d/%d, want 0/4", c.Len(), c.Cap())
	}
}

func TestFullQueueUnchanged(t *testing.T) {
	p, c := mustRing(t, 2)
	_, _ = p.Write([]float32{5, 6})

	if err := p.Push(7); !errors.Is(err, ErrFull) {
		t.Fatalf("Push() error = %v, want ErrFull", err)
	}
	if n, err := p.Write([]float32{7}); n != 0 || !errors.Is(err, ErrFull) {
		t.Fatalf("Write() = %d, %v; want 0, ErrFull", n, err)
	}

	dst := make([]float32, 2)
	c.Read(dst)
	if dst[0] != 5 || dst[1] != 6 {
		t.Fatalf("queue = %v, want [5 6]", dst)
	}
}

func TestConcurrentProducerConsumer(t *testing.T) {
	const total = 100000
	p, c := mustRing(t, 64)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		block := make([]float32, 17)
		for sent := 0; sent < total; {
			n := min(len(block), total-sent)
			for i := range n {
				block[i] = float32(sent + i)
			}
			written, _ := p.Write(block[:n])
			sent += written
		}
	}()

	got := 0
	dst := make([]float32, 23)
	for got < total {
		n := c.Read(dst)
		for i := range n {
			if dst[i] != float32(got) {
				t.Errorf("sample %d = %v", got, dst[i])
				wg.Wait()
				return
			}
			got++
		}
	}
	wg.Wait()
}

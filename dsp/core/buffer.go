package core

// Float is the set of sample types handled by the slice helpers.
type Float interface {
	~float32 | ~float64
}

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen[T Float](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// Zero sets all values in buf to 0.
func Zero[T Float](buf []T) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto[T Float](dst, src []T) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}

// Widen converts float32 samples to float64 into dst, which is grown as needed.
func Widen(dst []float64, src []float32) []float64 {
	dst = EnsureLen(dst, len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}

// Narrow converts float64 values to float32 samples into dst, which is grown as needed.
func Narrow(dst []float32, src []float64) []float32 {
	dst = EnsureLen(dst, len(src))
	for i, v := range src {
		dst[i] = float32(v)
	}
	return dst
}
